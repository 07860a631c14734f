package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

// EventHandler processes one decoded webhook event synchronously.
type EventHandler interface {
	Handle(ctx context.Context, ev event.Event)
}

type Options struct {
	Addr            string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	// WriteTimeout must cover the outbound Slack calls made while handling a request.
	WriteTimeout time.Duration
}

type Server struct {
	opts    Options
	handler http.Handler
	log     *logger.Logger
}

func New(opts Options, events EventHandler, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 30 * time.Second
	}

	mux := http.NewServeMux()
	mux.Handle("/webhook", &webhookHandler{events: events, log: log, maxBody: opts.MaxBodyBytes})
	mux.Handle("/health", healthHandler())
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		opts: opts,
		handler: applyMiddlewares(mux, []Middleware{
			requestLogMiddleware(log),
			recoverMiddleware(log),
		}),
		log: log,
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      s.opts.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Infof("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
