package impl

import (
	"context"
	"math"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	mockRepo "bakery/internal/mocks/repository"
	mockService "bakery/internal/mocks/service"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	profileRepo *mockRepo.MockProfileRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := orderServiceFixtures{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	fixtures.service = NewOrderService(OrderServiceParams{
		ProfileRepo: fixtures.profileRepo,
		OrderRepo:   fixtures.orderRepo,
		Publisher:   fixtures.publisher,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := principalOf(entity.RoleUser)
	baker := bakerProfile(entity.BakerStatusApproved.Ptr())
	orderID := uuid.New()

	var created *entity.Order
	fx.profileRepo.EXPECT().FindByID(ctx, baker.ID).Return(baker, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID
			created = order

			return nil
		})
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
		return created, nil
	})
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(event *service.MarketplaceEvent) bool {
		return event.Type == service.EventOrderPlaced &&
			event.OrderPlaced.OrderID == orderID.String() &&
			event.OrderPlaced.BakerUserID == baker.UserID.String() &&
			event.OrderPlaced.Quantity == 3
	})).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, customer, &usecase.PlaceOrderInput{
		BakerID:     baker.ID,
		PastryType:  " Croissant ",
		Quantity:    3,
		TotalAmount: 7.5,
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, customer.UserID, order.UserID)
	assert.Equal(t, baker.ID, order.BakerID)
	assert.Equal(t, "Croissant", order.PastryType)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	baker := bakerProfile(entity.BakerStatusApproved.Ptr())

	fx.profileRepo.EXPECT().FindByID(ctx, baker.ID).Return(baker, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.Order{}, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.PlaceOrder(ctx, principalOf(entity.RoleUser), &usecase.PlaceOrderInput{
		BakerID: baker.ID, PastryType: "Bagel", Quantity: 1, TotalAmount: 2,
	})

	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_MissingFields(t *testing.T) {
	valid := usecase.PlaceOrderInput{BakerID: uuid.New(), PastryType: "Tart", Quantity: 1, TotalAmount: 4}

	tests := []struct {
		name   string
		mutate func(in *usecase.PlaceOrderInput)
	}{
		{name: "baker", mutate: func(in *usecase.PlaceOrderInput) { in.BakerID = uuid.Nil }},
		{name: "pastry type", mutate: func(in *usecase.PlaceOrderInput) { in.PastryType = "  " }},
		{name: "zero quantity", mutate: func(in *usecase.PlaceOrderInput) { in.Quantity = 0 }},
		{name: "negative amount", mutate: func(in *usecase.PlaceOrderInput) { in.TotalAmount = -1 }},
		{name: "NaN amount", mutate: func(in *usecase.PlaceOrderInput) { in.TotalAmount = math.NaN() }},
		{name: "infinite amount", mutate: func(in *usecase.PlaceOrderInput) { in.TotalAmount = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			input := valid
			tt.mutate(&input)

			_, err := fx.service.PlaceOrder(context.Background(), principalOf(entity.RoleUser), &input)

			assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
		})
	}
}

func TestOrderService_PlaceOrder_RejectsUnorderableBakers(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		findErr error
		wantErr error
	}{
		{name: "unknown profile", findErr: repository.ErrProfileNotFound, wantErr: domainerrors.ErrInvalidBaker},
		{name: "customer profile", profile: customerProfile(), wantErr: domainerrors.ErrInvalidBaker},
		{name: "pending baker", profile: bakerProfile(entity.BakerStatusPending.Ptr()), wantErr: domainerrors.ErrBakerNotApproved},
		{name: "rejected baker", profile: bakerProfile(entity.BakerStatusRejected.Ptr()), wantErr: domainerrors.ErrBakerNotApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			bakerID := uuid.New()
			fx.profileRepo.EXPECT().FindByID(mock.Anything, bakerID).Return(tt.profile, tt.findErr)

			order, err := fx.service.PlaceOrder(context.Background(), principalOf(entity.RoleUser), &usecase.PlaceOrderInput{
				BakerID: bakerID, PastryType: "Tart", Quantity: 2, TotalAmount: 8,
			})

			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.wantErr))
			fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("placed", func(t *testing.T) {
		fx := createTestOrderService(t)
		customer := principalOf(entity.RoleUser)
		orders := []*entity.Order{{ID: uuid.New()}}
		fx.orderRepo.EXPECT().ListByUser(mock.Anything, customer.UserID).Return(orders, nil)

		got, err := fx.service.ListOrders(context.Background(), customer, entity.OrderViewPlaced)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("received", func(t *testing.T) {
		fx := createTestOrderService(t)
		baker := bakerProfile(entity.BakerStatusApproved.Ptr())
		principal := entity.Principal{UserID: baker.UserID, Role: entity.RoleBaker}
		orders := []*entity.Order{{ID: uuid.New(), BakerID: baker.ID}}
		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, baker.UserID).Return(baker, nil)
		fx.orderRepo.EXPECT().ListByBaker(mock.Anything, baker.ID).Return(orders, nil)

		got, err := fx.service.ListOrders(context.Background(), principal, entity.OrderViewReceived)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("received without profile", func(t *testing.T) {
		fx := createTestOrderService(t)
		principal := principalOf(entity.RoleBaker)
		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, principal.UserID).Return(nil, repository.ErrProfileNotFound)

		got, err := fx.service.ListOrders(context.Background(), principal, entity.OrderViewReceived)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}
