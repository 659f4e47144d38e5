package service

import (
	"context"
	"testing"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_Empty(t *testing.T) {
	svc := &UsersService{Store: newTestStore(t), Metrics: metrics.Noop{}}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsers_NewestFirst(t *testing.T) {
	svc := &UsersService{Store: newTestStore(t), Metrics: metrics.Noop{}}
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, email := range []string{"first@example.com", "second@example.com", "third@example.com"} {
		require.NoError(t, svc.Store.Users().CreateUser(ctx, domain.User{
			ID:        idx.New(),
			Email:     email,
			Role:      domain.RoleUser,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "third@example.com", users[0].Email)
	assert.Equal(t, "first@example.com", users[2].Email)
}
