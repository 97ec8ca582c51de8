package schedule

import (
	"context"
	"time"
)

type Repository interface {
	ListByChild(ctx context.Context, childID string) ([]Event, error)
	Get(ctx context.Context, childID, name string) (Event, error)
	UpdateStatus(ctx context.Context, childID, name string, status Status, givenDate *time.Time) error
}

type ListFilter struct {
	Statuses []DisplayStatus
}
