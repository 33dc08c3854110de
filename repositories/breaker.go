package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"

	"github.com/sony/gobreaker"
)

// NewStoreBreaker trips after more than maxFailures consecutive store failures and
// lets a single probe through once timeout has elapsed.
func NewStoreBreaker(name string, maxFailures uint32, timeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > maxFailures
		},
		IsSuccessful: isExpectedOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Warnf("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}

// Domain outcomes and caller cancellations say nothing about the store's health.
func isExpectedOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

func guard(cb *gobreaker.CircuitBreaker, op func() error) error {
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, op()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return err
}
