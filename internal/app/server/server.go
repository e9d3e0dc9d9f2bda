package server

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/payroll"
	"github.com/naijatax/paye-calculator/internal/transport/http/handlers"
	"github.com/naijatax/paye-calculator/internal/transport/http/middleware"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type routerOptions struct {
	rateLimit rate.Limit
	burst     int
	proxies   []netip.Prefix
}

type Option func(*routerOptions)

// WithRateLimit throttles /v1 to r requests per second per caller
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(o *routerOptions) {
		o.rateLimit = r
		o.burst = burst
	}
}

// WithTrustedProxies lets rate limiting read client IPs from X-Forwarded-For
// when the request arrives through one of these networks
func WithTrustedProxies(prefixes ...netip.Prefix) Option {
	return func(o *routerOptions) {
		o.proxies = append(o.proxies, prefixes...)
	}
}

// NewRouter wires the API routes over one shared engine and payroll service
func NewRouter(engine *calculation.TaxEngine, svc *payroll.Service, log logrus.FieldLogger, opts ...Option) http.Handler {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Identity)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(o.rateLimit, o.burst, middleware.WithTrustedProxies(o.proxies...)))
		handlers.NewHandler(engine, svc, log).RegisterRoutes(r)
	})
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests
func Run(ctx context.Context, cfg Config, handler http.Handler, log logrus.FieldLogger) error {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("PAYE API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
