package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndersonViniciusReis/acai-app/docs"
	"github.com/AndersonViniciusReis/acai-app/internal/queue"
	"github.com/AndersonViniciusReis/acai-app/internal/ratelimiter"
	"github.com/AndersonViniciusReis/acai-app/internal/service"
	"github.com/AndersonViniciusReis/acai-app/internal/store/mongo"
	"github.com/AndersonViniciusReis/acai-app/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config             config
	logger             *zap.SugaredLogger
	rateLimiter        ratelimiter.Limiter
	storage            *mongo.Storage
	broker             queue.Broker
	catalogService     *service.CatalogService
	cartService        *service.CartService
	orderService       *service.OrderService
	notificationWorker *worker.NotificationWorker
	importWorker       *worker.CatalogImportWorker
}

type config struct {
	addr           string
	env            string
	apiURL         string
	rateLimiter    ratelimiter.Config
	mongo          mongoConfig
	rabbitMQ       rabbitMQConfig
	googleCreds    string
	snapshotDir    string
	whatsappNumber string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", app.getProductsHandler)
			r.Get("/complements", app.getAddOnsHandler)
			r.Post("/import", app.createImportTaskHandler)
			r.Get("/import/{task_id}", app.getImportTaskHandler)
		})

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", app.createCartHandler)
			r.Get("/{session_id}", app.getCartHandler)
			r.Post("/{session_id}/items", app.addCartItemHandler)
			r.Patch("/{session_id}/items/{item_id}", app.updateCartItemHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", app.createOrderHandler)
			r.Get("/", app.listOrdersHandler)
			r.Get("/stats", app.orderStatsHandler)
			r.Get("/export", app.exportOrdersHandler)
			r.Get("/{order_id}", app.getOrderHandler)
			r.Patch("/{order_id}/status", app.updateOrderStatusHandler)
		})

		r.Get("/customers/{phone}/orders", app.customerOrdersHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Açaí dos Sonhos"
	docs.SwaggerInfo.Description = "API for the Açaí dos Sonhos storefront and order dashboard"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.notificationWorker != nil {
		if err := app.notificationWorker.Start(); err != nil {
			return fmt.Errorf("failed to start notification worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start catalog import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.notificationWorker != nil {
			app.notificationWorker.Stop()
		}
		if app.importWorker != nil {
			app.importWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
