package repository

import (
	"context"
	"errors"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders. Orders are never updated or deleted.
type OrderRepository interface {
	// Create inserts a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads an order joined with the placer (and placer profile) and the target baker profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns orders placed by userID, newest first, joined with the baker profile.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListByBaker returns orders addressed to the baker profile, newest first, joined with the placer.
	ListByBaker(ctx context.Context, bakerProfileID uuid.UUID) ([]*entity.Order, error)
}
