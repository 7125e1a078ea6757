package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/config"
	"github.com/SergeyBogomolovv/boba-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
}

func New(logger *slog.Logger, conf config.Config) *application {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return &application{
		logger: logger,
		router: router,
		httpSrv: &http.Server{
			Handler:           router,
			Addr:              net.JoinHostPort(conf.Http.Host, conf.Http.Port),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Consumer is a background intake loop. Consume returns once ctx is done
// or Close has been called.
type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

func (a *application) Handler() http.Handler {
	return a.router
}

const gracefulShutdownTimeout = 5 * time.Second

// Run serves HTTP and runs the consumers until ctx is cancelled, then shuts
// everything down. It returns the first error that stopped the application.
func (a *application) Run(ctx context.Context) error {
	a.logRoutes()

	g, ctx := errgroup.WithContext(ctx)

	for _, c := range a.consumers {
		g.Go(func() error {
			c.Consume(ctx)
			return nil
		})
	}

	g.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.stop()
	})

	a.logger.Info("application started")
	err := g.Wait()
	a.logger.Info("application stopped")
	return err
}

func (a *application) stop() error {
	var errs []error
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close consumer", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shutdown http server", slog.Any("error", err))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *application) logRoutes() {
	err := chi.Walk(a.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		route = strings.Replace(route, "/*/", "/", -1)
		a.logger.Debug("route registered", slog.String("method", method), slog.String("route", route))
		return nil
	})
	if err != nil {
		a.logger.Warn("failed to walk routes", slog.Any("error", err))
	}
}
