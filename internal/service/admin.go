package service

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
)

type adminService struct {
	logger   *slog.Logger
	username []byte
	password []byte
}

func NewAdminService(logger *slog.Logger, username, password string) *adminService {
	return &adminService{
		logger:   logger.With(slog.String("service", "admin")),
		username: []byte(username),
		password: []byte(password),
	}
}

// Authenticate checks the pair against the configured credentials. Nothing is
// issued on success; the caller only learns whether the pair matched.
// Without a configured password every attempt is rejected.
func (s *adminService) Authenticate(ctx context.Context, username, password string) error {
	if len(s.password) == 0 {
		adminLogins.WithLabelValues("failure").Inc()
		s.logger.WarnContext(ctx, "admin login attempted without configured credentials")
		return entities.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), s.username) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), s.password) == 1

	if !userOK || !passOK {
		adminLogins.WithLabelValues("failure").Inc()
		s.logger.WarnContext(ctx, "admin login rejected", slog.String("username", username))
		return entities.ErrUnauthorized
	}

	adminLogins.WithLabelValues("success").Inc()
	s.logger.InfoContext(ctx, "admin logged in", slog.String("username", username))
	return nil
}
