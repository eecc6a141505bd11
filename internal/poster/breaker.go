// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// breakerName labels the TMDB breaker in logs and metrics.
const breakerName = "tmdb-api"

// newBreaker builds the shared TMDB circuit breaker.
//
// The breaker trips when at least MinRequests lookups were made in the
// current Interval and the failure ratio reaches FailureRatio. While open,
// lookups fail fast with gobreaker.ErrOpenState and the caller falls back
// to the placeholder. After Timeout it lets MaxRequests probes through.
func newBreaker(cfg config.BreakerConfig) *gobreaker.CircuitBreaker[string] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0) // 0 = closed

	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening TMDB circuit")
			}
			return shouldTrip
		},

		IsSuccessful: breakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})
}

// execute runs fn through the breaker when one is configured.
func (f *Fetcher) execute(fn func() (string, error)) (string, error) {
	if f.breaker == nil {
		return fn()
	}

	result, err := f.breaker.Execute(fn)
	switch {
	case isRejected(err):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
	case breakerSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	}
	return result, err
}

// BreakerState reports the TMDB breaker state, or "disabled".
func (f *Fetcher) BreakerState() string {
	if f.breaker == nil {
		return "disabled"
	}
	return stateToString(f.breaker.State())
}

// breakerSuccess reports whether a lookup result leaves the breaker healthy.
// Missing posters (nil error), caller cancellation and per-id 4xx answers
// such as 404 for an unknown movie are not TMDB faults. Transport errors,
// timeouts, undecodable bodies, 5xx and 429 are.
func breakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var fe *fetchError
	if !errors.As(err, &fe) {
		return false
	}
	switch fe.outcome {
	case metrics.PosterOutcomeCanceled:
		return true
	case metrics.PosterOutcomeHTTPStatus:
		return !tmdbFault(fe.status)
	default:
		return false
	}
}

// tmdbFault reports whether an HTTP status signals trouble on TMDB's side
// rather than a problem with the requested id.
func tmdbFault(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
