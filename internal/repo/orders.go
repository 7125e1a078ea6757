package repo

import (
	"sync"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
)

// OrderRepo keeps orders in submission order for the lifetime of the process.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

func (r *OrderRepo) SaveOrder(o entities.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o.Clone())
}

func (r *OrderRepo) ListOrders() []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out
}

// UpdateStatus changes the first order with the given id.
func (r *OrderRepo) UpdateStatus(orderID string, status entities.Status, at time.Time) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].OrderID != orderID {
			continue
		}
		r.orders[i].Status = status
		r.orders[i].LastUpdatedAt = at
		return r.orders[i].Clone(), nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (r *OrderRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
