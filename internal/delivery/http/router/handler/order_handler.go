package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc      usecase.OrderUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, storage service.ImageStorage, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

type createOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required"`
}

type updateOrderRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int       `json:"quantity"`
	Status    *string    `json:"status"`
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders, h.storage), "Orders retrieved successfully")
}

// Get returns a single order owned by the caller.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order, h.storage), "Order retrieved successfully")
}

// Create places an order for the caller. The total price is computed
// server-side from the product's current price, and the status starts
// as pending regardless of the request body.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input createOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if input.ProductID == uuid.Nil {
		return response.BadRequest(c, "INVALID_INPUT", "product_id is required")
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order, h.storage), "Order created successfully")
}

// Update applies a partial update to an order owned by the caller.
func (h *OrderHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input updateOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), userID, orderID, usecase.UpdateOrderInput{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Status:    input.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order, h.storage), "Order updated successfully")
}

// Delete removes an order owned by the caller.
func (h *OrderHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), userID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}
