package handler

import (
	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
)

// OrderCreatedResponse is returned after an order was accepted
type OrderCreatedResponse struct {
	Message   string         `json:"message"`
	OrderData entities.Order `json:"orderData"`
}

// OrderListResponse lists every stored order, newest first
type OrderListResponse struct {
	Message string           `json:"message"`
	Count   int              `json:"count"`
	Orders  []entities.Order `json:"orders"`
}

// UpdateStatusRequest carries the new order status
type UpdateStatusRequest struct {
	Status entities.Status `json:"status" example:"dikonfirmasi"`
}

// OrderUpdatedResponse is returned after a status change
type OrderUpdatedResponse struct {
	Message      string         `json:"message"`
	UpdatedOrder entities.Order `json:"updatedOrder"`
}

// ShopResponse wraps a single shop
type ShopResponse struct {
	Message string        `json:"message"`
	Shop    entities.Shop `json:"shop"`
}

// LoginRequest holds admin credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse reports whether the credentials matched
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
