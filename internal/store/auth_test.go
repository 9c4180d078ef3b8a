package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/eatsy-store/internal/model"
)

func TestLogin_Success(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.Login(context.Background(), "admin@eatsy.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, model.RoleAdmin, snap.CurrentUser.Role)
	assert.False(t, snap.Loading)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, model.NotificationSuccess, snap.Notifications[0].Type)
	assert.Equal(t, "Welcome, Administrador!", snap.Notifications[0].Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.Login(context.Background(), "admin@eatsy.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.False(t, snap.Loading)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, model.NotificationError, snap.Notifications[0].Type)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.Login(context.Background(), "nobody@eatsy.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, s.CurrentUser())
}

func TestLogin_LoadingHeldDuringDelayAndBusyRejected(t *testing.T) {
	s, _ := newTestStore(t, func(e *testEnv) {
		e.clock = clock.New()
		e.cfg.LoginDelay = 100 * time.Millisecond
	})

	var (
		wg  sync.WaitGroup
		ok  bool
		err error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		ok, err = s.Login(context.Background(), "cliente@eatsy.com", "123456")
	}()

	require.Eventually(t, func() bool { return s.Snapshot().Loading }, time.Second, time.Millisecond)

	second, busyErr := s.Login(context.Background(), "admin@eatsy.com", "123456")
	assert.False(t, second)
	assert.ErrorIs(t, busyErr, ErrBusy)

	wg.Wait()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.Snapshot().Loading)
	assert.Equal(t, model.RoleCustomer, s.CurrentUser().Role)
}

func TestLogin_Cancelled(t *testing.T) {
	s, _ := newTestStore(t, func(e *testEnv) { e.cfg.LoginDelay = time.Second })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := s.Login(ctx, "admin@eatsy.com", "123456")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Snapshot().Loading)
	assert.Nil(t, s.CurrentUser())
}

func TestLogout_ClearsUserAndCart(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Login(context.Background(), "cliente@eatsy.com", "123456")
	require.NoError(t, err)
	require.NoError(t, s.AddToCartByID("1", 2, ""))

	s.Logout()

	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Empty(t, snap.Cart)
	last := snap.Notifications[len(snap.Notifications)-1]
	assert.Equal(t, model.NotificationInfo, last.Type)
}
