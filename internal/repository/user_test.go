package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/eatsy-store/internal/model"
)

func TestUserRepo_GetByEmail(t *testing.T) {
	repo := NewUserRepository(MockUsers(time.Now()))
	ctx := context.Background()

	found, err := repo.GetByEmail(ctx, "admin@eatsy.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, model.RoleAdmin, found.Role)

	missing, err := repo.GetByEmail(ctx, "ADMIN@eatsy.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository(MockUsers(time.Now()))

	found, err := repo.GetByEmail(context.Background(), "cozinha@eatsy.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2", found.ID)

	found.Name = "changed"
	again, _ := repo.GetByEmail(context.Background(), "cozinha@eatsy.com")
	assert.Equal(t, "Cozinha", again.Name)
}

func TestUserRepo_CancelledContext(t *testing.T) {
	repo := NewUserRepository(MockUsers(time.Now()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetByEmail(ctx, "admin@eatsy.com")
	assert.ErrorIs(t, err, context.Canceled)
}
