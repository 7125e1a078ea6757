package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/SergeyBogomolovv/boba-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const msgInvalidShop = "shop data is incomplete or invalid"

type ShopService interface {
	ListShops(ctx context.Context) []entities.Shop
	CreateShop(ctx context.Context, in entities.ShopInput) (entities.Shop, error)
	ReplaceShop(ctx context.Context, id int, in entities.ShopInput) (entities.Shop, error)
	DeleteShop(ctx context.Context, id int) (entities.Shop, error)
}

type ShopHandler struct {
	logger *slog.Logger
	svc    ShopService
}

func NewShopHandler(logger *slog.Logger, svc ShopService) *ShopHandler {
	return &ShopHandler{
		logger: logger.With(slog.String("handler", "shop")),
		svc:    svc,
	}
}

func (h *ShopHandler) Init(r chi.Router) {
	r.Get("/api/shops", h.ListShops)
	r.Post("/api/shops", h.CreateShop)
	r.Put("/api/shops/{shopId}", h.ReplaceShop)
	r.Delete("/api/shops/{shopId}", h.DeleteShop)
}

// ListShops возвращает все магазины.
// @Summary      List shops
// @Description  Returns every shop in insertion order
// @Tags         shops
// @Produce      json
// @Success      200  {array}  entities.Shop
// @Router       /api/shops [get]
func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.svc.ListShops(r.Context()), http.StatusOK)
}

// CreateShop добавляет магазин.
// @Summary      Create a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        shop  body      entities.ShopInput  true  "Shop"
// @Success      201   {object}  ShopResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /api/shops [post]
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entities.ShopInput
	if err := utils.DecodeBody(r, &in); err != nil {
		utils.WriteValidationError(w, msgInvalidShop, err)
		return
	}

	shop, err := h.svc.CreateShop(ctx, in)
	if errors.Is(err, entities.ErrInvalidInput) {
		utils.WriteValidationError(w, msgInvalidShop, err)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create shop", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ShopResponse{Message: "shop created", Shop: shop}, http.StatusCreated)
}

// ReplaceShop обновляет магазин целиком.
// @Summary      Replace a shop
// @Description  Overwrites name and position. whatsappNumber changes only when sent; an absent or empty menu keeps the current menu.
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        shopId  path      int                 true  "Shop ID"
// @Param        shop    body      entities.ShopInput  true  "Shop"
// @Success      200     {object}  ShopResponse
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404     {object}  utils.ErrorResponse "Магазин не найден"
// @Router       /api/shops/{shopId} [put]
func (h *ShopHandler) ReplaceShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.shopID(w, r)
	if !ok {
		return
	}

	var in entities.ShopInput
	if err := utils.DecodeBody(r, &in); err != nil {
		utils.WriteValidationError(w, msgInvalidShop, err)
		return
	}

	shop, err := h.svc.ReplaceShop(ctx, id, in)
	if errors.Is(err, entities.ErrInvalidInput) {
		utils.WriteValidationError(w, msgInvalidShop, err)
		return
	}
	if errors.Is(err, entities.ErrShopNotFound) {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to replace shop", slog.Any("error", err), slog.Int("shopId", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ShopResponse{Message: "shop updated", Shop: shop}, http.StatusOK)
}

// DeleteShop удаляет магазин.
// @Summary      Delete a shop
// @Tags         shops
// @Produce      json
// @Param        shopId  path      int  true  "Shop ID"
// @Success      200     {object}  ShopResponse
// @Failure      404     {object}  utils.ErrorResponse "Магазин не найден"
// @Router       /api/shops/{shopId} [delete]
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.shopID(w, r)
	if !ok {
		return
	}

	shop, err := h.svc.DeleteShop(ctx, id)
	if errors.Is(err, entities.ErrShopNotFound) {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete shop", slog.Any("error", err), slog.Int("shopId", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ShopResponse{Message: "shop deleted", Shop: shop}, http.StatusOK)
}

// shopID parses the path id. A non-numeric id cannot name any shop, so it
// is answered like an unknown one.
func (h *ShopHandler) shopID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "shopId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.WriteError(w, entities.ErrShopNotFound.Error()+": "+raw, http.StatusNotFound)
		return 0, false
	}
	return id, true
}
