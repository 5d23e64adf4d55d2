package postgres

import (
	"context"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository bound to db (or a transaction).
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts a new order and copies generated values back onto it.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidBaker.WrapMessage("order references a missing user or profile")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("quantity and total amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.Status = orderM.Status
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID loads an order joined with the placer (and placer profile) and the target profile.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Baker").
		Where("orders.id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns orders placed by userID with the target baker profile, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "Baker", "orders.user_id = ?", userID)
}

// ListByBaker returns orders addressed to the profile with the placer and placer profile, newest first.
func (repo *orderRepository) ListByBaker(ctx context.Context, bakerProfileID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "User.Profile", "orders.baker_id = ?", bakerProfileID)
}

func (repo *orderRepository) list(ctx context.Context, preload, query string, arg any) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload(preload).
		Where(query, arg).
		Order("orders.created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(ordersM))
	for _, o := range ordersM {
		orders = append(orders, toOrderDomain(o))
	}

	return orders, nil
}
