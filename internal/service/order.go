package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
)

type OrderRepo interface {
	SaveOrder(o entities.Order)
	ListOrders() []entities.Order
	UpdateStatus(orderID string, status entities.Status, at time.Time) (entities.Order, error)
}

type orderService struct {
	logger   *slog.Logger
	validate *validator.Validate
	repo     OrderRepo
	now      func() time.Time
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, opts ...Option) *orderService {
	o := buildOptions(opts)
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		validate: entities.NewValidator(),
		repo:     repo,
		now:      o.now,
	}
}

type orderRequirements struct {
	OrderID string            `json:"orderId" validate:"required"`
	Items   []json.RawMessage `json:"items" validate:"required,min=1"`
}

// SubmitOrder stamps and stores a new order. Duplicate order ids are accepted.
func (s *orderService) SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	req := orderRequirements{OrderID: order.OrderID, Items: order.Items}
	if err := s.validate.Struct(req); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidInput, err)
	}

	now := s.now()
	order.ReceivedAt = now
	order.LastUpdatedAt = now
	if order.Status == "" {
		order.Status = entities.StatusPending
	}

	s.repo.SaveOrder(order)
	ordersSubmitted.Inc()

	s.logger.InfoContext(ctx, "order received",
		slog.String("order_id", order.OrderID),
		slog.String("status", string(order.Status)),
	)
	return order, nil
}

// ListOrders returns all orders, most recently received first.
func (s *orderService) ListOrders(ctx context.Context) []entities.Order {
	orders := s.repo.ListOrders()
	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return b.ReceivedAt.Compare(a.ReceivedAt)
	})
	return orders
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status entities.Status) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, fmt.Errorf("%w %q, allowed statuses: %s", entities.ErrInvalidStatus, status, entities.AllowedStatuses())
	}

	order, err := s.repo.UpdateStatus(orderID, status, s.now())
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %s", err, orderID)
	}
	orderStatusUpdates.WithLabelValues(string(status)).Inc()

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(status)),
	)
	return order, nil
}
