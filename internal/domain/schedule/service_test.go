package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byChild map[string][]Event
	failUpd error
}

func newTestRepo() *testRepo {
	return &testRepo{byChild: map[string][]Event{}}
}

func (r *testRepo) ListByChild(ctx context.Context, childID string) ([]Event, error) {
	out := make([]Event, len(r.byChild[childID]))
	copy(out, r.byChild[childID])
	return out, nil
}

func (r *testRepo) Get(ctx context.Context, childID, name string) (Event, error) {
	for _, e := range r.byChild[childID] {
		if e.Name == name {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

func (r *testRepo) UpdateStatus(ctx context.Context, childID, name string, status Status, givenDate *time.Time) error {
	if r.failUpd != nil {
		return r.failUpd
	}
	for i, e := range r.byChild[childID] {
		if e.Name == name {
			e.Status = status
			e.GivenDate = givenDate
			r.byChild[childID][i] = e
			return nil
		}
	}
	return ErrNotFound
}

type recordedPublish struct {
	topic, kind string
}

type testPublisher struct {
	got []recordedPublish
}

func (p *testPublisher) Publish(_ context.Context, topic, kind string, _ any) {
	p.got = append(p.got, recordedPublish{topic: topic, kind: kind})
}

func newTestService(t *testing.T, today string) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo)
	d := mustDate(t, today)
	svc.now = func() time.Time { return d.Add(10 * time.Hour) }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_ListByChild_SortsByDueDateStable(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-01")
	repo.byChild["c1"] = []Event{
		{ChildID: "c1", Name: "late", DueDate: mustDate(t, "2024-03-01"), Status: StatusDue},
		{ChildID: "c1", Name: "first-tie", DueDate: mustDate(t, "2024-01-01"), Status: StatusDue},
		{ChildID: "c1", Name: "second-tie", DueDate: mustDate(t, "2024-01-01"), Status: StatusDue},
	}

	items, err := svc.ListByChild(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByChild returned error: %v", err)
	}
	got := []string{items[0].Name, items[1].Name, items[2].Name}
	want := []string{"first-tie", "second-tie", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestService_ListByChild_RequiresChildID(t *testing.T) {
	svc, _ := newTestService(t, "2024-06-01")
	if _, err := svc.ListByChild(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_View_ClassifiesAndFilters(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-01")
	given := mustDate(t, "2024-01-02")
	repo.byChild["c1"] = []Event{
		{ChildID: "c1", Name: "done", DueDate: mustDate(t, "2024-01-01"), Status: StatusDone, GivenDate: &given},
		{ChildID: "c1", Name: "missed", DueDate: mustDate(t, "2024-02-01"), Status: StatusDue},
		{ChildID: "c1", Name: "due", DueDate: mustDate(t, "2024-06-01"), Status: StatusDue},
	}

	all, err := svc.View(context.Background(), "c1", ListFilter{})
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if all[0].Display != DisplayDone || all[1].Display != DisplayMissed || all[2].Display != DisplayDue {
		t.Fatalf("unexpected classification %#v", all)
	}

	missed, err := svc.View(context.Background(), "c1", ListFilter{Statuses: []DisplayStatus{DisplayMissed}})
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(missed) != 1 || missed[0].Name != "missed" {
		t.Fatalf("expected only missed event, got %#v", missed)
	}
}

func TestService_MarkDone_SetsGivenDateToToday(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-01")
	pub := &testPublisher{}
	svc.WithPublisher(pub)
	repo.byChild["c1"] = []Event{{ChildID: "c1", Name: "BCG", DueDate: mustDate(t, "2024-01-01"), Status: StatusDue}}

	e, err := svc.MarkDone(context.Background(), "c1", "BCG")
	if err != nil {
		t.Fatalf("MarkDone returned error: %v", err)
	}
	if e.Status != StatusDone {
		t.Fatalf("expected Done, got %s", e.Status)
	}
	if e.GivenDate == nil || FormatDate(*e.GivenDate) != "2024-06-01" {
		t.Fatalf("expected given date 2024-06-01, got %v", e.GivenDate)
	}

	stored, _ := repo.Get(context.Background(), "c1", "BCG")
	if stored.Status != StatusDone || stored.GivenDate == nil {
		t.Fatalf("expected repo to persist Done with given date, got %#v", stored)
	}

	if len(pub.got) != 1 || pub.got[0].topic != "children/c1/schedule" {
		t.Fatalf("expected one publish on schedule topic, got %#v", pub.got)
	}
}

func TestService_MarkDone_IsIrreversible(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-01")
	repo.byChild["c1"] = []Event{{ChildID: "c1", Name: "BCG", DueDate: mustDate(t, "2024-01-01"), Status: StatusDue}}

	if _, err := svc.MarkDone(context.Background(), "c1", "BCG"); err != nil {
		t.Fatalf("first MarkDone returned error: %v", err)
	}
	if _, err := svc.MarkDone(context.Background(), "c1", "BCG"); !errors.Is(err, ErrAlreadyDone) {
		t.Fatalf("expected ErrAlreadyDone, got %v", err)
	}
}

func TestService_MarkDone_Errors(t *testing.T) {
	svc, repo := newTestService(t, "2024-06-01")
	repo.byChild["c1"] = []Event{{ChildID: "c1", Name: "BCG", DueDate: mustDate(t, "2024-01-01"), Status: StatusDue}}

	if _, err := svc.MarkDone(context.Background(), "c1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.MarkDone(context.Background(), "c1", "Unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	boom := errors.New("store down")
	repo.failUpd = boom
	if _, err := svc.MarkDone(context.Background(), "c1", "BCG"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
