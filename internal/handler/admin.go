package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/SergeyBogomolovv/boba-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

type AdminHandler struct {
	logger *slog.Logger
	auth   Authenticator
}

func NewAdminHandler(logger *slog.Logger, auth Authenticator) *AdminHandler {
	return &AdminHandler{
		logger: logger.With(slog.String("handler", "admin")),
		auth:   auth,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Post("/api/admin/login", h.Login)
}

// Login проверяет учетные данные администратора.
// @Summary      Admin login
// @Description  Compares the credentials with the configured admin pair. No session is created.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        creds  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  LoginResponse
// @Failure      400    {object}  LoginResponse
// @Failure      401    {object}  LoginResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// no body means no credentials, which is a plain mismatch
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteJSON(w, LoginResponse{Success: false, Message: "invalid request body"}, http.StatusBadRequest)
		return
	}

	err := h.auth.Authenticate(ctx, req.Username, req.Password)

	if errors.Is(err, entities.ErrUnauthorized) {
		utils.WriteJSON(w, LoginResponse{Success: false, Message: "invalid username or password"}, http.StatusUnauthorized)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to authenticate", slog.Any("error", err))
		utils.WriteJSON(w, LoginResponse{Success: false, Message: "internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, LoginResponse{Success: true, Message: "login successful"}, http.StatusOK)
}
