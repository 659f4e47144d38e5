package service

import (
	"context"
	"log/slog"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/pkg/slogx"
)

type UsersService struct {
	Store   store.Store
	Metrics metrics.Collector
}

// ListUsers returns all users, newest first. Password hashes never leave the
// store layer's domain type; the HTTP handler projects the safe fields.
func (s *UsersService) ListUsers(ctx context.Context) ([]domain.User, error) {
	log := slogx.FromContext(ctx)

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", slog.Any("error", err))
		return nil, err
	}

	s.Metrics.RecordUsersListed(len(users))
	return users, nil
}
