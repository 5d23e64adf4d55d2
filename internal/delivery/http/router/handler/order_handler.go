package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"bakery/internal/delivery/http/response"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/entity"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const missingOrderFields = "Missing required fields: bakerId, pastryType, quantity, totalAmount"

// flexNumber accepts a JSON number or a numeric string, as sent by the mobile clients.
// Unparseable strings and non-finite values ("NaN", "Infinity") decode to zero, which counts as missing.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			value = 0
		}
		*n = flexNumber(value)

		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*n = flexNumber(value)

	return nil
}

type placeOrderRequest struct {
	BakerID     string     `json:"bakerId"`
	PastryType  string     `json:"pastryType"`
	Quantity    flexNumber `json:"quantity"`
	TotalAmount flexNumber `json:"totalAmount"`
}

func (r *placeOrderRequest) toInput() (*usecase.PlaceOrderInput, error) {
	var bakerID uuid.UUID
	if raw := strings.TrimSpace(r.BakerID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.WithStack(domainerrors.ErrInvalidBaker)
		}
		bakerID = id
	}

	// Fractional quantities are not truncated; zero counts as missing.
	quantity := 0
	if q := float64(r.Quantity); q == math.Trunc(q) && q <= math.MaxInt32 && q >= math.MinInt32 {
		quantity = int(q)
	}

	return &usecase.PlaceOrderInput{
		BakerID:     bakerID,
		PastryType:  r.PastryType,
		Quantity:    quantity,
		TotalAmount: float64(r.TotalAmount),
	}, nil
}

type orderResponse struct {
	Order *orderView `json:"order"`
}

type ordersResponse struct {
	Orders []*orderView `json:"orders"`
}

// OrderHandler serves order placement and listing for web and mobile clients.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{uc: params.OrderUC}
}

// PlaceOrder creates an order with an approved baker.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields.WithDetails(missingOrderFields))
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, orderResponse{Order: newOrderView(order)}, "Order created successfully")
}

// ListOrders lists the caller's placed orders, or received ones with ?type=received.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), principal, entity.ParseOrderView(c.QueryParam("type")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ordersResponse{Orders: newOrderViews(orders)}, "Orders retrieved successfully")
}
