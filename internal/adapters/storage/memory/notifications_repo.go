package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"child-immunization-tracker/internal/domain/notifications"
)

type notificationRepo struct {
	mu     sync.RWMutex
	byUser map[string]map[string]notifications.Record
}

func NewNotificationRepo() notifications.Repository {
	return &notificationRepo{
		byUser: make(map[string]map[string]notifications.Record),
	}
}

func (r *notificationRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUser[userID][id]
	return ok, nil
}

// Create rechaza IDs repetidos con ErrConflict; nunca pisa un aviso existente.
func (r *notificationRepo) Create(ctx context.Context, rec notifications.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.UserID) == "" || strings.TrimSpace(rec.ID) == "" {
		return errors.New("notification user and id required")
	}

	inbox := r.byUser[rec.UserID]
	if inbox == nil {
		inbox = make(map[string]notifications.Record)
		r.byUser[rec.UserID] = inbox
	}
	if _, exists := inbox[rec.ID]; exists {
		return notifications.ErrConflict
	}
	inbox[rec.ID] = rec
	return nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byUser[userID][id]
	if !ok {
		return notifications.ErrNotFound
	}
	rec.Read = true
	r.byUser[userID][id] = rec
	return nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID string) ([]notifications.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Record, 0, len(r.byUser[userID]))
	for _, rec := range r.byUser[userID] {
		out = append(out, rec)
	}
	return out, nil
}
