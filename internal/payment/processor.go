package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"

	"github.com/flicky/eatsy-store/internal/latency"
	"github.com/flicky/eatsy-store/internal/model"
)

var ErrUnsupportedMethod = errors.New("unsupported payment method")

// Processor charges an order total.
type Processor interface {
	Charge(ctx context.Context, amount decimal.Decimal, method model.PaymentMethod) (model.PaymentStatus, error)
}

// Simulated stands in for a card/pix gateway: every charge succeeds after a
// fixed delay.
type Simulated struct {
	clock clock.Clock
	delay time.Duration
}

func NewSimulated(clk clock.Clock, delay time.Duration) *Simulated {
	return &Simulated{clock: clk, delay: delay}
}

func (p *Simulated) Charge(ctx context.Context, amount decimal.Decimal, method model.PaymentMethod) (model.PaymentStatus, error) {
	if !method.Valid() {
		return model.PaymentStatusFailed, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	if amount.IsNegative() {
		return model.PaymentStatusFailed, fmt.Errorf("charge negative amount %s", amount)
	}
	if err := latency.Simulate(ctx, p.clock, p.delay); err != nil {
		return model.PaymentStatusPending, fmt.Errorf("charge: %w", err)
	}
	return model.PaymentStatusCompleted, nil
}
