package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
)

type ShopRepo interface {
	ListShops() []entities.Shop
	CreateShop(s entities.Shop) entities.Shop
	UpdateShop(id int, apply func(current entities.Shop) entities.Shop) (entities.Shop, error)
	DeleteShop(id int) (entities.Shop, error)
}

type shopService struct {
	logger   *slog.Logger
	validate *validator.Validate
	repo     ShopRepo
	now      func() time.Time
}

func NewShopService(logger *slog.Logger, repo ShopRepo, opts ...Option) *shopService {
	o := buildOptions(opts)
	return &shopService{
		logger:   logger.With(slog.String("service", "shop")),
		validate: entities.NewValidator(),
		repo:     repo,
		now:      o.now,
	}
}

func (s *shopService) ListShops(ctx context.Context) []entities.Shop {
	return s.repo.ListShops()
}

func (s *shopService) CreateShop(ctx context.Context, in entities.ShopInput) (entities.Shop, error) {
	if err := s.validateInput(in); err != nil {
		return entities.Shop{}, err
	}

	now := s.now()
	shop := s.repo.CreateShop(entities.Shop{
		Name:           in.Name,
		Position:       in.ShopPosition(),
		WhatsappNumber: in.WhatsappNumber.Or(nil),
		Menu:           in.MenuItems(),
		CreatedAt:      now,
		LastUpdatedAt:  now,
	})
	shopMutations.WithLabelValues("create").Inc()

	s.logger.InfoContext(ctx, "shop created",
		slog.Int("shop_id", shop.ID),
		slog.String("name", shop.Name),
		slog.Float64("lat", shop.Position.Lat()),
		slog.Float64("lng", shop.Position.Lng()),
	)
	return shop, nil
}

// ReplaceShop overwrites name and position. whatsappNumber changes only when
// the key was sent (null clears it). An absent or empty menu keeps the
// current one, so a menu cannot be emptied through this call.
func (s *shopService) ReplaceShop(ctx context.Context, id int, in entities.ShopInput) (entities.Shop, error) {
	if err := s.validateInput(in); err != nil {
		return entities.Shop{}, err
	}

	now := s.now()
	shop, err := s.repo.UpdateShop(id, func(cur entities.Shop) entities.Shop {
		cur.Name = in.Name
		cur.Position = in.ShopPosition()
		cur.WhatsappNumber = in.WhatsappNumber.Or(cur.WhatsappNumber)
		if len(in.Menu) > 0 {
			cur.Menu = in.MenuItems()
		}
		cur.LastUpdatedAt = now
		return cur
	})
	if err != nil {
		return entities.Shop{}, fmt.Errorf("%w: %d", err, id)
	}
	shopMutations.WithLabelValues("replace").Inc()

	s.logger.InfoContext(ctx, "shop updated",
		slog.Int("shop_id", id),
		slog.Float64("lat", shop.Position.Lat()),
		slog.Float64("lng", shop.Position.Lng()),
	)
	return shop, nil
}

func (s *shopService) DeleteShop(ctx context.Context, id int) (entities.Shop, error) {
	shop, err := s.repo.DeleteShop(id)
	if err != nil {
		return entities.Shop{}, fmt.Errorf("%w: %d", err, id)
	}
	shopMutations.WithLabelValues("delete").Inc()

	s.logger.InfoContext(ctx, "shop deleted", slog.Int("shop_id", id))
	return shop, nil
}

func (s *shopService) validateInput(in entities.ShopInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrInvalidInput, err)
	}
	return nil
}
