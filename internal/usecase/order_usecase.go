package usecase

import (
	"context"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place an order with a baker.
// Zero values count as missing.
type PlaceOrderInput struct {
	BakerID     uuid.UUID
	PastryType  string
	Quantity    int
	TotalAmount float64
}

// OrderUsecase defines order placement and retrieval.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, principal entity.Principal, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, principal entity.Principal, view entity.OrderView) ([]*entity.Order, error)
}
