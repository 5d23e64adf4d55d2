package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every order is created with.
const OrderStatusPending = "pending"

// Order is a customer's request to an approved baker for a pastry item.
// Orders are immutable once placed.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID // The customer who placed the order.
	BakerID     uuid.UUID // The target baker Profile (not the baker's user ID).
	PastryType  string
	Quantity    int
	TotalAmount float64
	Status      string
	User        *User    // Placer, with Profile when loaded for the baker's view.
	Baker       *Profile // Target profile, loaded for the customer's view.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderView selects which side of the orders a caller is listing.
type OrderView string

const (
	// OrderViewPlaced lists orders the caller placed as a customer.
	OrderViewPlaced OrderView = "placed"
	// OrderViewReceived lists orders addressed to the caller's baker profile.
	OrderViewReceived OrderView = "received"
)

// ParseOrderView maps the ?type= query value; anything but "received" means "placed".
func ParseOrderView(raw string) OrderView {
	if OrderView(raw) == OrderViewReceived {
		return OrderViewReceived
	}

	return OrderViewPlaced
}
