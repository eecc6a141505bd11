// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Defaults used when the corresponding TMDBConfig field is empty.
const (
	DefaultBaseURL        = "https://api.themoviedb.org/3/movie"
	DefaultImageBaseURL   = "https://image.tmdb.org/t/p"
	DefaultImageSize      = "w500"
	DefaultPlaceholderURL = "https://via.placeholder.com/150"
	DefaultRequestTimeout = 5 * time.Second
)

// maxBodySize caps how much of a TMDB response is decoded.
const maxBodySize = 1 << 20

// movieResponse is the subset of TMDB's movie details we read.
type movieResponse struct {
	PosterPath *string `json:"poster_path"`
}

// fetchError tags a lookup failure with its metrics outcome.
type fetchError struct {
	outcome string
	status  int // HTTP status for PosterOutcomeHTTPStatus
	err     error
}

func (e *fetchError) Error() string { return e.outcome + ": " + e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

// Fetcher resolves TMDB movie ids to poster image URLs.
//
// Every lookup degrades to the placeholder URL on failure, so FetchPosters
// never returns an error. It is safe for concurrent use; the breaker and
// rate limiter are shared across batches.
type Fetcher struct {
	baseURL        string
	imageBaseURL   string
	imageSize      string
	placeholderURL string
	delay          time.Duration
	timeout        time.Duration
	maxConcurrency int

	breaker   *gobreaker.CircuitBreaker[string] // nil when disabled
	limiter   *rate.Limiter                     // nil when RateLimit <= 0
	transport http.RoundTripper                 // nil means one transport per batch
	logger    zerolog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRoundTripper makes every batch share rt instead of creating its own
// transport. rt is not closed by the fetcher.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// NewFetcher creates a Fetcher from TMDB settings.
func NewFetcher(cfg *config.TMDBConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:        strings.TrimRight(orDefault(cfg.BaseURL, DefaultBaseURL), "/"),
		imageBaseURL:   strings.TrimRight(orDefault(cfg.ImageBaseURL, DefaultImageBaseURL), "/"),
		imageSize:      strings.Trim(orDefault(cfg.ImageSize, DefaultImageSize), "/"),
		placeholderURL: orDefault(cfg.PlaceholderURL, DefaultPlaceholderURL),
		delay:          cfg.RequestDelay,
		timeout:        cfg.RequestTimeout,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         logging.WithComponent("poster"),
	}
	if f.timeout <= 0 {
		f.timeout = DefaultRequestTimeout
	}
	if cfg.Breaker.Enabled {
		f.breaker = newBreaker(cfg.Breaker)
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PlaceholderURL returns the fallback image URL.
func (f *Fetcher) PlaceholderURL() string {
	return f.placeholderURL
}

// FetchPosters looks up the poster URL of every id concurrently.
//
// The result has the same length and order as ids. Each element is either
// the poster image URL or the placeholder URL. Duplicate ids are fetched
// independently. An empty ids slice makes no network calls.
func (f *Fetcher) FetchPosters(ctx context.Context, ids []int, apiKey string) []string {
	results := make([]string, len(ids))
	if len(ids) == 0 {
		return results
	}

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	logger := f.logger.With().Str("correlation_id", logging.CorrelationIDFromContext(ctx)).Logger()

	start := time.Now()
	metrics.PosterBatchSize.Observe(float64(len(ids)))
	logger.Debug().Ints("movie_ids", ids).Msg("Fetching posters")

	client, release := f.batchClient()
	defer release()

	var sem chan struct{}
	if f.maxConcurrency > 0 {
		sem = make(chan struct{}, f.maxConcurrency)
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			results[i] = f.fetchOne(ctx, client, sem, id, apiKey, logger)
		}(i, id)
	}
	wg.Wait()

	logger.Debug().
		Int("count", len(ids)).
		Dur("duration", time.Since(start)).
		Msg("Poster batch complete")

	return results
}

// batchClient returns the HTTP client for one batch and its release func.
// Without an injected transport each batch owns a pool that release closes.
func (f *Fetcher) batchClient() (*http.Client, func()) {
	if f.transport != nil {
		return &http.Client{Transport: f.transport}, func() {}
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	return &http.Client{Transport: tr}, tr.CloseIdleConnections
}

// fetchOne resolves a single id. It never fails; errors become the placeholder.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (f *Fetcher) fetchOne(ctx context.Context, client *http.Client, sem chan struct{}, id int, apiKey string, logger zerolog.Logger) string {
	start := time.Now()

	posterPath, err := f.lookupWithPacing(ctx, client, sem, id, apiKey)
	outcome := classify(posterPath, err)
	metrics.RecordPosterFetch(outcome, time.Since(start))

	if outcome == metrics.PosterOutcomeOK {
		return f.imageURL(posterPath)
	}

	event := logger.Warn().Int("movie_id", id).Str("outcome", outcome)
	if err != nil {
		event = event.Str("error", logging.RedactError(err))
	}
	event.Msg("Poster unavailable, using placeholder")

	return f.placeholderURL
}

// lookupWithPacing applies the courtesy delay, the rate limiter and the
// concurrency bound, then performs the lookup through the breaker.
func (f *Fetcher) lookupWithPacing(ctx context.Context, client *http.Client, sem chan struct{}, id int, apiKey string) (string, error) {
	// Fail fast without pacing while the circuit is open
	if f.breaker != nil && f.breaker.State() == gobreaker.StateOpen {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		return "", gobreaker.ErrOpenState
	}

	if err := sleepCtx(ctx, f.delay); err != nil {
		return "", &fetchError{outcome: metrics.PosterOutcomeCanceled, err: err}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", &fetchError{outcome: metrics.PosterOutcomeCanceled, err: err}
		}
	}

	if sem != nil {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
		case <-ctx.Done():
			return "", &fetchError{outcome: metrics.PosterOutcomeCanceled, err: ctx.Err()}
		}
	}

	return f.execute(func() (string, error) {
		return f.lookup(ctx, client, id, apiKey)
	})
}

// lookup performs one TMDB request under its own timeout. It returns the
// poster path, which is empty when TMDB has no poster for the movie.
func (f *Fetcher) lookup(ctx context.Context, client *http.Client, id int, apiKey string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, f.movieURL(id, apiKey), http.NoBody)
	if err != nil {
		return "", &fetchError{outcome: metrics.PosterOutcomeNetwork, err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", &fetchError{outcome: contextOutcome(ctx, reqCtx, metrics.PosterOutcomeNetwork), err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", &fetchError{
			outcome: metrics.PosterOutcomeHTTPStatus,
			status:  resp.StatusCode,
			err:     fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	var body movieResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return "", &fetchError{outcome: contextOutcome(ctx, reqCtx, metrics.PosterOutcomeBadBody), err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if body.PosterPath == nil {
		return "", nil
	}
	return *body.PosterPath, nil
}

// movieURL builds {base}/{id}?api_key={key}.
func (f *Fetcher) movieURL(id int, apiKey string) string {
	return f.baseURL + "/" + strconv.Itoa(id) + "?api_key=" + url.QueryEscape(apiKey)
}

// imageURL builds {image_base}/{size}{poster_path}.
func (f *Fetcher) imageURL(posterPath string) string {
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return f.imageBaseURL + "/" + f.imageSize + posterPath
}

// classify maps a lookup result to its metrics outcome.
func classify(posterPath string, err error) string {
	if err == nil {
		if posterPath == "" {
			return metrics.PosterOutcomeNoPoster
		}
		return metrics.PosterOutcomeOK
	}
	if isRejected(err) {
		return metrics.PosterOutcomeCircuitOpen
	}
	var fe *fetchError
	if errors.As(err, &fe) {
		return fe.outcome
	}
	return metrics.PosterOutcomeNetwork
}

// contextOutcome distinguishes caller cancellation from the per-request
// timeout when a request fails. fallback is used when neither applies.
func contextOutcome(parent, reqCtx context.Context, fallback string) string {
	switch {
	case parent.Err() != nil:
		return metrics.PosterOutcomeCanceled
	case errors.Is(reqCtx.Err(), context.DeadlineExceeded):
		return metrics.PosterOutcomeTimeout
	default:
		return fallback
	}
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
