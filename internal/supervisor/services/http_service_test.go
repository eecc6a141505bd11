// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*CatalogWatchService)(nil)
)

// fakeServer implements HTTPServer. With block set, ListenAndServe waits
// for Shutdown like a real server.
type fakeServer struct {
	listenErr   error
	shutdownErr error
	block       bool

	started   chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
	listens   atomic.Int32
	shutdowns atomic.Int32
}

func newFakeServer(block bool) *fakeServer {
	return &fakeServer{
		block:   block,
		started: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (s *fakeServer) ListenAndServe() error {
	s.listens.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	if s.listenErr != nil {
		return s.listenErr
	}
	if s.block {
		<-s.stop
		return http.ErrServerClosed
	}
	return nil
}

func (s *fakeServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	s.stopOnce.Do(func() { close(s.stop) })
	return s.shutdownErr
}

func serveAsync(ctx context.Context, svc suture.Service) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return errCh
}

func waitErr(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
		return nil
	}
}

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit", 3 * time.Second, 3 * time.Second},
		{"zero defaults", 0, 10 * time.Second},
		{"negative defaults", -time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newFakeServer(false), tt.timeout)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q, want http-server", svc.String())
			}
		})
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(true)
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, svc)

	select {
	case <-srv.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
	cancel()

	if err := waitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if n := srv.listens.Load(); n != 1 {
		t.Errorf("ListenAndServe calls = %d, want 1", n)
	}
	if n := srv.shutdowns.Load(); n != 1 {
		t.Errorf("Shutdown calls = %d, want 1", n)
	}
}

func TestHTTPServerService_Failures(t *testing.T) {
	t.Parallel()

	t.Run("listen error", func(t *testing.T) {
		t.Parallel()
		bindErr := errors.New("bind: address already in use")
		srv := newFakeServer(false)
		srv.listenErr = bindErr

		err := NewHTTPServerService(srv, time.Second).Serve(context.Background())
		if !errors.Is(err, bindErr) {
			t.Errorf("Serve() = %v, want wrapped bind error", err)
		}
	})

	t.Run("shutdown error", func(t *testing.T) {
		t.Parallel()
		shutdownErr := errors.New("drain timeout")
		srv := newFakeServer(true)
		srv.shutdownErr = shutdownErr

		ctx, cancel := context.WithCancel(context.Background())
		errCh := serveAsync(ctx, NewHTTPServerService(srv, time.Second))
		<-srv.started
		cancel()

		if err := waitErr(t, errCh); !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want wrapped shutdown error", err)
		}
	})

	t.Run("server closed elsewhere", func(t *testing.T) {
		t.Parallel()
		srv := newFakeServer(false)
		srv.listenErr = http.ErrServerClosed

		if err := NewHTTPServerService(srv, time.Second).Serve(context.Background()); err != nil {
			t.Errorf("Serve() = %v, want nil for ErrServerClosed", err)
		}
	})
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	srv := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	if got := serverAddr(srv); got != "127.0.0.1:0" {
		t.Errorf("serverAddr() = %q", got)
	}
	if got := serverAddr(newFakeServer(false)); got != "" {
		t.Errorf("serverAddr(fake) = %q, want empty", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := serveAsync(ctx, NewHTTPServerService(srv, time.Second))
	time.Sleep(50 * time.Millisecond)
	cancel()

	if err := waitErr(t, errCh); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}
