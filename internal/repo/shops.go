package repo

import (
	"fmt"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
)

// ShopRepo keeps shops in insertion order and hands out ids from a counter
// that only ever grows, so ids of deleted shops are never reused.
type ShopRepo struct {
	mu     sync.RWMutex
	shops  []entities.Shop
	nextID int
}

// NewShopRepo seeds the catalog. The id counter starts right after the
// highest seeded id, or at 1 for an empty catalog.
func NewShopRepo(initial []entities.Shop) (*ShopRepo, error) {
	r := &ShopRepo{
		shops:  make([]entities.Shop, 0, len(initial)),
		nextID: 1,
	}

	seen := make(map[int]struct{}, len(initial))
	for _, s := range initial {
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("duplicate shop id %d", s.ID)
		}
		seen[s.ID] = struct{}{}

		r.shops = append(r.shops, s.Clone())
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r, nil
}

func (r *ShopRepo) ListShops() []entities.Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		out = append(out, s.Clone())
	}
	return out
}

// CreateShop assigns the next id to s and appends it.
func (r *ShopRepo) CreateShop(s entities.Shop) entities.Shop {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.shops = append(r.shops, s.Clone())
	return s.Clone()
}

// UpdateShop replaces the shop with the given id by apply(current).
// apply runs under the write lock and must not call back into the repo.
func (r *ShopRepo) UpdateShop(id int, apply func(current entities.Shop) entities.Shop) (entities.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.Shop{}, entities.ErrShopNotFound
	}

	updated := apply(r.shops[i].Clone())
	updated.ID = id
	r.shops[i] = updated.Clone()
	return updated, nil
}

func (r *ShopRepo) DeleteShop(id int) (entities.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.Shop{}, entities.ErrShopNotFound
	}

	deleted := r.shops[i]
	r.shops = slices.Delete(r.shops, i, i+1)
	return deleted, nil
}

func (r *ShopRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shops)
}

func (r *ShopRepo) indexOf(id int) int {
	return slices.IndexFunc(r.shops, func(s entities.Shop) bool { return s.ID == id })
}
