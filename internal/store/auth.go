package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/flicky/eatsy-store/internal/latency"
	"github.com/flicky/eatsy-store/internal/model"
)

// Login signs a user in when the email belongs to a known account and the
// password matches the shared secret. Bad credentials are not an error: the
// result is false and an error notification is recorded. The loading flag is
// held for the whole call.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	if err := s.beginLoading(); err != nil {
		s.metrics.ObserveIntent("login", "busy")
		return false, err
	}

	if err := latency.Simulate(ctx, s.clock, s.cfg.LoginDelay); err != nil {
		s.endLoading()
		s.metrics.ObserveIntent("login", "cancelled")
		return false, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.endLoading()
		s.metrics.ObserveIntent("login", "error")
		return false, fmt.Errorf("get user: %w", err)
	}

	if user == nil || bcrypt.CompareHashAndPassword(s.secretHash, []byte(password)) != nil {
		s.endLoading()
		s.Notify("Invalid credentials", model.NotificationError)
		s.metrics.ObserveIntent("login", "rejected")
		s.log.Warn("login rejected", "email", email)
		return false, nil
	}

	s.endLoading(SetUser{User: user})
	s.Notify(fmt.Sprintf("Welcome, %s!", user.Name), model.NotificationSuccess)
	s.metrics.ObserveIntent("login", "ok")
	s.log.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return true, nil
}

// Logout drops the current user and empties the cart.
func (s *Store) Logout() {
	s.Dispatch(SetUser{User: nil}, ClearCart{})
	s.Notify("Logged out successfully", model.NotificationInfo)
	s.metrics.ObserveIntent("logout", "ok")
}

func (s *Store) CurrentUser() *model.User {
	return s.Snapshot().CurrentUser
}
