package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	e := newTestEcho()
	e.POST("/orders", h.PlaceOrder, as(principal))
	e.GET("/orders", h.ListOrders, as(principal))

	return e, orderUC
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: `3`, want: 3},
		{raw: `12.5`, want: 12.5},
		{raw: `"4"`, want: 4},
		{raw: `" 19.99 "`, want: 19.99},
		{raw: `"a dozen"`, want: 0},
		{raw: `null`, want: 0},
		{raw: `"NaN"`, want: 0},
		{raw: `"Infinity"`, want: 0},
		{raw: `"-Inf"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var n flexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.InDelta(t, tt.want, float64(n), 1e-9)
		})
	}

	var n flexNumber
	assert.Error(t, json.Unmarshal([]byte(`{}`), &n))
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	customer := testPrincipal(entity.RoleUser)
	bakerID := uuid.New()

	t.Run("numeric strings are coerced", func(t *testing.T) {
		e, orderUC := newTestOrderHandler(t, customer)
		orderUC.EXPECT().PlaceOrder(mock.Anything, customer, &usecase.PlaceOrderInput{
			BakerID:     bakerID,
			PastryType:  "croissant",
			Quantity:    6,
			TotalAmount: 18.5,
		}).Return(&entity.Order{
			ID:          uuid.New(),
			UserID:      customer.UserID,
			BakerID:     bakerID,
			PastryType:  "croissant",
			Quantity:    6,
			TotalAmount: 18.5,
			Status:      entity.OrderStatusPending,
			User: &entity.User{
				Email:   customer.Email,
				Profile: &entity.Profile{FirstName: "Cara", LastName: "Customer"},
			},
			Baker: &entity.Profile{FirstName: "Bea", LastName: "Baker", BusinessName: "Bea's Buns", Phone: "555-0100"},
		}, nil).Once()

		rec := doJSON(e, http.MethodPost, "/orders",
			`{"bakerId":"`+bakerID.String()+`","pastryType":"croissant","quantity":"6","totalAmount":"18.50"}`)

		var data struct {
			Order struct {
				Status string `json:"status"`
				User   struct {
					Email   string `json:"email"`
					Profile struct {
						FirstName string `json:"firstName"`
					} `json:"profile"`
				} `json:"user"`
				Baker struct {
					BusinessName string `json:"businessName"`
					Phone        string `json:"phone"`
				} `json:"baker"`
			} `json:"order"`
		}
		assert.Equal(t, http.StatusCreated, rec.Code)
		decodeData(t, rec, &data)
		assert.Equal(t, "pending", data.Order.Status)
		assert.Equal(t, customer.Email, data.Order.User.Email)
		assert.Equal(t, "Cara", data.Order.User.Profile.FirstName)
		assert.Equal(t, "Bea's Buns", data.Order.Baker.BusinessName)
		assert.Equal(t, "555-0100", data.Order.Baker.Phone)
	})

	t.Run("malformed baker id", func(t *testing.T) {
		e, _ := newTestOrderHandler(t, customer)

		rec := doJSON(e, http.MethodPost, "/orders", `{"bakerId":"nope","pastryType":"croissant","quantity":1,"totalAmount":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_BAKER", errorCode(t, rec))
	})

	t.Run("missing fields pass through as zero values", func(t *testing.T) {
		e, orderUC := newTestOrderHandler(t, customer)
		orderUC.EXPECT().PlaceOrder(mock.Anything, customer, &usecase.PlaceOrderInput{PastryType: "croissant"}).
			Return(nil, errors.WithStack(domainerrors.ErrMissingFields.WithDetails(missingOrderFields))).Once()

		rec := doJSON(e, http.MethodPost, "/orders", `{"pastryType":"croissant"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, missingOrderFields, env.Error.Details)
	})

	t.Run("fractional quantity and NaN amount are not coerced", func(t *testing.T) {
		e, orderUC := newTestOrderHandler(t, customer)
		orderUC.EXPECT().PlaceOrder(mock.Anything, customer, &usecase.PlaceOrderInput{
			BakerID:    bakerID,
			PastryType: "croissant",
		}).Return(nil, errors.WithStack(domainerrors.ErrMissingFields.WithDetails(missingOrderFields))).Once()

		rec := doJSON(e, http.MethodPost, "/orders",
			`{"bakerId":"`+bakerID.String()+`","pastryType":"croissant","quantity":1.9,"totalAmount":"NaN"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_FIELDS", errorCode(t, rec))
	})

	t.Run("baker not approved", func(t *testing.T) {
		e, orderUC := newTestOrderHandler(t, customer)
		orderUC.EXPECT().PlaceOrder(mock.Anything, customer, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrBakerNotApproved)).Once()

		rec := doJSON(e, http.MethodPost, "/orders",
			`{"bakerId":"`+bakerID.String()+`","pastryType":"croissant","quantity":1,"totalAmount":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAKER_NOT_APPROVED", errorCode(t, rec))
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	baker := testPrincipal(entity.RoleBaker)

	tests := []struct {
		query string
		view  entity.OrderView
	}{
		{query: "", view: entity.OrderViewPlaced},
		{query: "?type=placed", view: entity.OrderViewPlaced},
		{query: "?type=received", view: entity.OrderViewReceived},
		{query: "?type=anything", view: entity.OrderViewPlaced},
	}

	for _, tt := range tests {
		t.Run(string(tt.view)+tt.query, func(t *testing.T) {
			e, orderUC := newTestOrderHandler(t, baker)
			orderUC.EXPECT().ListOrders(mock.Anything, baker, tt.view).Return([]*entity.Order{}, nil).Once()

			rec := doJSON(e, http.MethodGet, "/orders"+tt.query, "")

			var data struct {
				Orders []json.RawMessage `json:"orders"`
			}
			assert.Equal(t, http.StatusOK, rec.Code)
			decodeData(t, rec, &data)
			assert.NotNil(t, data.Orders)
			assert.Empty(t, data.Orders)
		})
	}
}
