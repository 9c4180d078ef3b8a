package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/benbjohnson/clock"
	"golang.org/x/crypto/bcrypt"

	"github.com/flicky/eatsy-store/internal/config"
	"github.com/flicky/eatsy-store/internal/metrics"
	"github.com/flicky/eatsy-store/internal/payment"
	"github.com/flicky/eatsy-store/internal/repository"
	"github.com/flicky/eatsy-store/internal/worker"
)

var (
	ErrBusy               = errors.New("another request is in flight")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrPaymentFailed      = errors.New("payment failed")
)

// Store owns the application state. All writes go through Reduce under a
// single lock; listeners are notified after every write.
type Store struct {
	users      repository.UserRepository
	payments   payment.Processor
	metrics    *metrics.Metrics
	clock      clock.Clock
	log        *slog.Logger
	cfg        config.StoreConfig
	secretHash []byte
	expirer    *worker.NotificationExpirer

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextSubID int

	// deliverMu orders listener calls by State.Version.
	deliverMu   sync.Mutex
	deliverCond *sync.Cond
	delivered   uint64
}

func New(
	cfg config.StoreConfig,
	users repository.UserRepository,
	seed repository.SeedProvider,
	payments payment.Processor,
	m *metrics.Metrics,
	clk clock.Clock,
	log *slog.Logger,
) (*Store, error) {
	cost := cfg.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.LoginSecret), cost)
	if err != nil {
		return nil, fmt.Errorf("hash login secret: %w", err)
	}

	s := &Store{
		users:      users,
		payments:   payments,
		metrics:    m,
		clock:      clk,
		log:        log,
		cfg:        cfg,
		secretHash: hash,
		state: State{
			Products: seed.Products(),
			Orders:   seed.Orders(),
		},
		listeners: make(map[int]func(State)),
	}
	s.deliverCond = sync.NewCond(&s.deliverMu)
	s.expirer = worker.NewNotificationExpirer(clk, cfg.NotificationTTL, s.expireNotification, log)
	return s, nil
}

// Close cancels pending notification timers.
func (s *Store) Close() {
	s.expirer.Stop()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Dispatch applies the actions atomically, in order, and notifies listeners.
func (s *Store) Dispatch(actions ...Action) {
	s.update(func(st State) (State, bool) {
		for _, a := range actions {
			st = Reduce(st, a)
		}
		return st, true
	})
}

// update runs fn against the current state under the lock. When fn reports a
// change the new state is stored with the next version and listeners get a
// snapshot. Snapshots reach listeners in version order even when writers
// race; listeners must not write to the store.
func (s *Store) update(fn func(State) (State, bool)) {
	s.mu.Lock()
	next, changed := fn(s.state)
	if !changed {
		s.mu.Unlock()
		return
	}
	next.Version = s.state.Version + 1
	s.state = next
	snap := next.Clone()
	listeners := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.metrics.SetActiveNotifications(len(next.Notifications))
	s.mu.Unlock()

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	for s.delivered != snap.Version-1 {
		s.deliverCond.Wait()
	}
	for _, l := range listeners {
		l(snap)
	}
	s.delivered = snap.Version
	s.deliverCond.Broadcast()
}

// beginLoading claims the loading flag for a slow intent.
func (s *Store) beginLoading() error {
	var err error
	s.update(func(st State) (State, bool) {
		if st.Loading {
			err = ErrBusy
			return st, false
		}
		return Reduce(st, SetLoading{Loading: true}), true
	})
	return err
}

func (s *Store) endLoading(extra ...Action) {
	s.Dispatch(append(extra, SetLoading{Loading: false})...)
}
