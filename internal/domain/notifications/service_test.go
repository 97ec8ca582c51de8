package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"child-immunization-tracker/internal/domain/schedule"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byUser map[string]map[string]Record

	// hideExisting simula una carrera: Exists dice que no, pero Create choca.
	hideExisting bool
	failCreate   error
	creates      int
}

func newTestRepo() *testRepo {
	return &testRepo{byUser: map[string]map[string]Record{}}
}

func (r *testRepo) Exists(_ context.Context, userID, id string) (bool, error) {
	if r.hideExisting {
		return false, nil
	}
	_, ok := r.byUser[userID][id]
	return ok, nil
}

func (r *testRepo) Create(_ context.Context, rec Record) error {
	r.creates++
	if r.failCreate != nil {
		return r.failCreate
	}
	if r.byUser[rec.UserID] == nil {
		r.byUser[rec.UserID] = map[string]Record{}
	}
	if _, ok := r.byUser[rec.UserID][rec.ID]; ok {
		return ErrConflict
	}
	r.byUser[rec.UserID][rec.ID] = rec
	return nil
}

func (r *testRepo) MarkRead(_ context.Context, userID, id string) error {
	rec, ok := r.byUser[userID][id]
	if !ok {
		return ErrNotFound
	}
	rec.Read = true
	r.byUser[userID][id] = rec
	return nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string) ([]Record, error) {
	out := make([]Record, 0, len(r.byUser[userID]))
	for _, rec := range r.byUser[userID] {
		out = append(out, rec)
	}
	return out, nil
}

type testPublisher struct {
	topics []string
}

func (p *testPublisher) Publish(_ context.Context, topic, _ string, _ any) {
	p.topics = append(p.topics, topic)
}

func newTestService(t *testing.T, today string) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo)
	d := mustDate(t, today)
	svc.now = func() time.Time { return d.Add(9 * time.Hour) }
	return svc, repo
}

func sampleSchedules(t *testing.T) []ChildSchedule {
	return []ChildSchedule{
		{
			Child: ChildRef{ID: "c1", Name: "Ana"},
			Events: []schedule.Event{
				ev(t, "BCG", "2024-06-01", schedule.StatusDue),
				ev(t, "OPV - 1", "2024-06-12", schedule.StatusDue),
				ev(t, "MMR - 1", "2024-12-01", schedule.StatusDue),
			},
		},
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Sync_IsIdempotent(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-10")
	pub := &testPublisher{}
	svc.WithPublisher(pub)

	first, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t))
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 created, got %d", len(first))
	}
	if len(pub.topics) != 2 || pub.topics[0] != "users/parent-1/notifications" {
		t.Fatalf("unexpected publishes: %+v", pub.topics)
	}

	second, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t))
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected nothing created on second sync, got %+v", second)
	}
	if len(repo.byUser["parent-1"]) != 2 {
		t.Fatalf("expected 2 stored, got %d", len(repo.byUser["parent-1"]))
	}
}

func TestService_Sync_ConflictIsTreatedAsAlreadyCreated(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-10")

	if _, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t)); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	repo.hideExisting = true
	got, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t))
	if err != nil {
		t.Fatalf("expected conflicts to be skipped, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected nothing created, got %+v", got)
	}
}

func TestService_Sync_PropagatesStoreError(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-10")
	boom := errors.New("boom")
	repo.failCreate = boom

	_, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected to stop after first failure, got %d creates", repo.creates)
	}
}

func TestService_Sync_RequiresUser(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-10")
	if _, err := svc.Sync(context.Background(), " ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_List_SortedNewestFirstWithUnreadCount(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-10")
	base := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	repo.byUser["u1"] = map[string]Record{
		"a": {ID: "a", UserID: "u1", CreatedAt: base},
		"b": {ID: "b", UserID: "u1", CreatedAt: base.Add(2 * time.Hour), Read: true},
		"c": {ID: "c", UserID: "u1", CreatedAt: base.Add(time.Hour)},
	}

	items, unread, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if unread != 2 {
		t.Fatalf("expected 2 unread, got %d", unread)
	}
	order := []string{items[0].ID, items[1].ID, items[2].ID}
	if order[0] != "b" || order[1] != "c" || order[2] != "a" {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestService_MarkRead(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-10")
	pub := &testPublisher{}
	svc.WithPublisher(pub)

	if _, err := svc.Sync(context.Background(), "parent-1", sampleSchedules(t)); err != nil {
		t.Fatalf("sync: %v", err)
	}
	pub.topics = nil

	if err := svc.MarkRead(context.Background(), "parent-1", "missed-c1-BCG"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !repo.byUser["parent-1"]["missed-c1-BCG"].Read {
		t.Fatalf("expected record to be read")
	}
	if len(pub.topics) != 1 {
		t.Fatalf("expected one publish, got %d", len(pub.topics))
	}

	if err := svc.MarkRead(context.Background(), "parent-1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
