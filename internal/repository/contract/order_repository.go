package contract

import (
	"context"

	"warehouse-chat-be/internal/model"
)

// StatusCount is the result row of a grouped order-status count
type StatusCount struct {
	StatusId int
	Count    int64
}

type OrderRepository interface {
	// CountByStatus counts orders with a single status id
	CountByStatus(ctx context.Context, statusId int) (int64, error)
	// CountGroupedByStatus returns one row per status id, ascending by status id
	CountGroupedByStatus(ctx context.Context) ([]StatusCount, error)
	// FindByIdentifier looks up one order by order id or lookup code.
	// Returns (nil, nil) when no order matches.
	FindByIdentifier(ctx context.Context, identifier string) (*model.TestDataOrder, error)
}
