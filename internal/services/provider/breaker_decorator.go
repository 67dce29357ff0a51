package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

type client[T any] interface {
	Fetch(ctx context.Context, key string) (T, error)
}

// BreakerClient fails fast once a provider keeps failing.
type BreakerClient[T any] struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client[T]
}

func NewBreakerClient[T any](
	name string,
	cfg BreakerConfig,
	wrapped client[T],
	logger zerolog.Logger,
) *BreakerClient[T] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}
	return &BreakerClient[T]{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

//nolint:ireturn
func (b *BreakerClient[T]) Fetch(ctx context.Context, key string) (T, error) {
	var zero T

	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, key)
	})
	if err != nil {
		return zero, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	res, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}

// 4xx answers and cancelled callers say nothing about provider health.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.ClientError()
	}
	return false
}
