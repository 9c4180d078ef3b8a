package worker

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expiredLog struct {
	mu  sync.Mutex
	ids []string
}

func (l *expiredLog) record(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = append(l.ids, id)
}

func (l *expiredLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ids...)
}

func newTestExpirer(mock *clock.Mock, rec *expiredLog) *NotificationExpirer {
	return NewNotificationExpirer(mock, 5*time.Second, rec.record, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotificationExpirer_FiresAfterTTL(t *testing.T) {
	mock := clock.NewMock()
	rec := &expiredLog{}
	e := newTestExpirer(mock, rec)

	require.True(t, e.Schedule("n1"))
	mock.Add(4 * time.Second)
	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 1, e.Pending())

	mock.Add(time.Second)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"n1"}, rec.snapshot())
	assert.Equal(t, 0, e.Pending())
}

func TestNotificationExpirer_IndependentTimers(t *testing.T) {
	mock := clock.NewMock()
	rec := &expiredLog{}
	e := newTestExpirer(mock, rec)

	e.Schedule("a")
	mock.Add(3 * time.Second)
	e.Schedule("b")

	mock.Add(2 * time.Second)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"a"}, rec.snapshot())

	mock.Add(3 * time.Second)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, rec.snapshot())
}

func TestNotificationExpirer_Cancel(t *testing.T) {
	mock := clock.NewMock()
	rec := &expiredLog{}
	e := newTestExpirer(mock, rec)

	e.Schedule("n1")
	assert.True(t, e.Cancel("n1"))
	assert.False(t, e.Cancel("n1"))

	mock.Add(10 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestNotificationExpirer_RescheduleReplacesTimer(t *testing.T) {
	mock := clock.NewMock()
	rec := &expiredLog{}
	e := newTestExpirer(mock, rec)

	e.Schedule("n1")
	mock.Add(3 * time.Second)
	e.Schedule("n1")
	mock.Add(3 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	mock.Add(2 * time.Second)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestNotificationExpirer_Stop(t *testing.T) {
	mock := clock.NewMock()
	rec := &expiredLog{}
	e := newTestExpirer(mock, rec)

	e.Schedule("n1")
	e.Stop()
	assert.Equal(t, 0, e.Pending())
	assert.False(t, e.Schedule("n2"))

	mock.Add(time.Minute)
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
