package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"io"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/SergeyBogomolovv/boba-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const msgInvalidOrder = "order data is incomplete or invalid"

type OrderService interface {
	SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	ListOrders(ctx context.Context) []entities.Order
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.Status) (entities.Order, error)
}

type OrderHandler struct {
	logger *slog.Logger
	svc    OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger: logger.With(slog.String("handler", "order")),
		svc:    svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/api/orders", h.SubmitOrder)
	r.Get("/api/orders", h.ListOrders)
	r.Patch("/api/orders/{orderId}/status", h.UpdateOrderStatus)
}

// SubmitOrder принимает новый заказ.
// @Summary      Submit an order
// @Description  Stores a new order. Unknown fields are kept and echoed back; status defaults to "tertunda".
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      object  true  "Order with orderId and a non-empty items array"
// @Success      201    {object}  OrderCreatedResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Missing orderId or items"
// @Router       /api/orders [post]
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var order entities.Order
	if err := utils.DecodeBody(r, &order); err != nil {
		utils.WriteValidationError(w, msgInvalidOrder, err)
		return
	}

	stored, err := h.svc.SubmitOrder(ctx, order)

	if errors.Is(err, entities.ErrInvalidInput) {
		utils.WriteValidationError(w, msgInvalidOrder, err)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to submit order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderCreatedResponse{
		Message:   "order received",
		OrderData: stored,
	}, http.StatusCreated)
}

// ListOrders возвращает все заказы.
// @Summary      List orders
// @Description  Returns every order, most recently received first
// @Tags         orders
// @Produce      json
// @Success      200  {object}  OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.ListOrders(r.Context())

	utils.WriteJSON(w, OrderListResponse{
		Message: "orders retrieved",
		Count:   len(orders),
		Orders:  orders,
	}, http.StatusOK)
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId  path      string               true  "Order ID"
// @Param        body     body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  OrderUpdatedResponse
// @Failure      400      {object}  utils.ErrorResponse "Status outside the allowed set"
// @Failure      404      {object}  utils.ErrorResponse "Order not found"
// @Router       /api/orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	// an empty body is a missing status and is rejected below
	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body, allowed statuses: "+entities.AllowedStatuses(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, orderID, req.Status)

	if errors.Is(err, entities.ErrInvalidStatus) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("orderId", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderUpdatedResponse{
		Message:      fmt.Sprintf("status of order %s updated", orderID),
		UpdatedOrder: order,
	}, http.StatusOK)
}
