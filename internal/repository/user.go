package repository

import (
	"context"
	"time"

	"github.com/flicky/eatsy-store/internal/model"
)

// UserRepository looks up the directory of users allowed to log in.
// Lookups return nil, nil when nothing matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type memUserRepo struct {
	byEmail map[string]model.User
}

func NewUserRepository(users []model.User) UserRepository {
	r := &memUserRepo{
		byEmail: make(map[string]model.User, len(users)),
	}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// MockUsers is the fixed demo directory: one account per role.
func MockUsers(now time.Time) []model.User {
	return []model.User{
		{ID: "1", Name: "Cliente Teste", Email: "cliente@eatsy.com", Role: model.RoleCustomer, CreatedAt: now},
		{ID: "2", Name: "Cozinha", Email: "cozinha@eatsy.com", Role: model.RoleKitchen, CreatedAt: now},
		{ID: "3", Name: "Administrador", Email: "admin@eatsy.com", Role: model.RoleAdmin, CreatedAt: now},
	}
}
