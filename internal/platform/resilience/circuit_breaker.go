package resilience

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var ErrCircuitOpen = crerr.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// StateChangeFunc observes breaker transitions. It runs with the breaker lock held
// and must not call back into the breaker.
type StateChangeFunc func(name string, from, to CircuitState)

// CircuitBreaker guards one upstream source. Permanent errors (see MarkPermanent)
// do not count as failures: a missing fixture says nothing about source health.
type CircuitBreaker struct {
	mu sync.Mutex

	name             string
	failureThreshold int
	openTimeout      time.Duration
	halfOpenMaxReq   int
	onStateChange    StateChangeFunc

	state               CircuitState
	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
	halfOpenSuccesses   int
	now                 func() time.Time
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig, onStateChange StateChangeFunc) *CircuitBreaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	return &CircuitBreaker{
		name:             name,
		failureThreshold: cfg.FailureThreshold,
		openTimeout:      cfg.OpenTimeout,
		halfOpenMaxReq:   cfg.HalfOpenMaxReq,
		onStateChange:    onStateChange,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
}

// Execute runs fn when the breaker admits the call and records the outcome.
// A nil breaker runs fn unguarded.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if b == nil {
		return fn(ctx)
	}
	if err := b.Allow(); err != nil {
		return crerr.Wrapf(err, "%s", b.name)
	}

	err := fn(ctx)
	switch {
	case err == nil, IsPermanent(err):
		b.RecordSuccess()
	default:
		b.RecordFailure()
	}
	return err
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if b.state == CircuitStateOpen {
		if now.Sub(b.openedAt) < b.openTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitStateHalfOpen)
	}

	if b.state == CircuitStateHalfOpen {
		if b.halfOpenInFlight >= b.halfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.halfOpenInFlight++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures = 0
	case CircuitStateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.halfOpenMaxReq && b.halfOpenInFlight == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.failureThreshold {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		b.transition(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) transition(to CircuitState) {
	from := b.state
	b.state = to
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0

	switch to {
	case CircuitStateClosed:
		b.consecutiveFailures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.now()
	}

	if from != to && b.onStateChange != nil {
		b.onStateChange(b.name, from, to)
	}
}
