package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/cache"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/cart"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/catalog"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/checkout"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/config"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/events"
	h "github.com/shazadkhan123456789/SK-Steel-Furniture/internal/http"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/pending"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/repository"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/submit"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/pkg/logger"
)

func main() {
	cfg := config.Load()
	slogger := logger.New("storefront")

	doc, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	products := doc.Flatten()

	// Catalog repository: embedded sqlite when a db path is set,
	// otherwise the in-memory document.
	var repo repository.CatalogRepository
	if cfg.CatalogDBPath != "" {
		sqliteRepo, err := repository.NewSQLiteRepository(cfg.CatalogDBPath)
		if err != nil {
			log.Fatalf("failed to open catalog database: %v", err)
		}
		if err := sqliteRepo.RunMigrations(cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run catalog migrations: %v", err)
		}
		if err := sqliteRepo.Seed(context.Background(), products); err != nil {
			log.Fatalf("failed to seed catalog: %v", err)
		}
		repo = sqliteRepo
	} else {
		repo = repository.NewMemoryRepository(products)
	}
	defer repo.Close()

	var redisClient *redis.Client
	if cfg.CatalogCache || cfg.CartBackend == config.CartBackendRedis || cfg.PendingBackend == config.PendingBackendRedis {
		if cfg.RedisAddr == "" {
			log.Fatalf("REDIS_ADDR is required for the configured backends")
		}
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	catalogService := catalog.NewService(doc, repo, slogger)
	if cfg.CatalogCache {
		catalogService.SetCache(cache.NewRedisCache(redisClient))
		catalogService.InvalidateCache(context.Background())
	}

	var carts cart.Store
	switch cfg.CartBackend {
	case config.CartBackendRedis:
		carts = cart.NewRedisStore(redisClient, cfg.CartTTL)
	default:
		carts = cart.NewMemoryStore(cfg.CartTTL)
	}
	defer carts.Close()

	var submitter submit.Submitter
	switch cfg.SubmitStrategy {
	case config.StrategyMail:
		submitter = submit.NewMailSubmitter(cfg.OrderEmail, doc.Company.Name)
	case config.StrategyDownload:
		submitter = &submit.DownloadSubmitter{}
	default:
		submitter = submit.NewGitHubSubmitter(submit.GitHubConfig{
			Owner:  cfg.GitHub.Owner,
			Repo:   cfg.GitHub.Repo,
			Branch: cfg.GitHub.Branch,
			Token:  cfg.GitHub.Token,
		})
	}

	checkoutService := checkout.NewService(carts, submitter, slogger)

	var pendingStorage pending.Storage
	switch cfg.PendingBackend {
	case config.PendingBackendMemory:
		pendingStorage = pending.NewMemoryStorage()
	case config.PendingBackendRedis:
		pendingStorage = pending.NewRedisStorage(redisClient)
	}
	if pendingStorage != nil {
		checkoutService.SetPendingStorage(pendingStorage)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer publisher.Close()
		checkoutService.SetPublisher(publisher)
	}

	catalogHandler := h.NewCatalogHandler(catalogService)
	cartHandler := h.NewCartHandler(carts, catalogService)
	checkoutHandler := h.NewCheckoutHandler(checkoutService)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.GetCatalog)
		r.Get("/products", catalogHandler.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		if pendingStorage != nil {
			ordersHandler := h.NewPendingOrdersHandler(pendingStorage)
			r.Get("/orders/pending", ordersHandler.List)
			r.Delete("/orders/pending", ordersHandler.Clear)
		}
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
