package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/okoval/handmade-shop/internal/cart"
	"github.com/okoval/handmade-shop/internal/catalog"
	"github.com/okoval/handmade-shop/internal/checkout"
	"github.com/okoval/handmade-shop/internal/config"
	"github.com/okoval/handmade-shop/internal/database"
	"github.com/okoval/handmade-shop/internal/handlers"
	"github.com/okoval/handmade-shop/internal/logger"
	"github.com/okoval/handmade-shop/internal/notify"
	"github.com/okoval/handmade-shop/internal/routes"
	"github.com/okoval/handmade-shop/internal/shutdown"
	"github.com/okoval/handmade-shop/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: no .env file found, relying on system environment variables.")
	}

	cfg := config.Load()
	logg := logger.New(logger.Options{
		Service: "handmade-shop",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	// --- Storage backend ---
	var store storage.Store
	if cfg.DBDSN != "" {
		db, err := database.OpenDB(cfg.DBDSN)
		if err != nil {
			log.Fatalf("Failed to connect to storage database: %v", err)
		}
		defer db.Close()

		if err := storage.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to prepare storage schema: %v", err)
		}
		store = storage.NewMySQLStore(db, logg)
	} else {
		logg.Warn("DB_DSN is not set; using in-memory storage, carts will not survive a restart")
		store = storage.NewMemoryStore(logg)
	}

	// --- Application wiring ---
	app := &handlers.Handlers{
		Cart:     cart.NewService(store, logg),
		Checkout: checkout.NewService(store, logg),
		Catalog:  catalog.Seed(),
		Toasts:   notify.NewQueue(),
		Suffix:   cfg.CurrencySuffix,
		Log:      logg,
	}

	router := routes.SetupRouter(app)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("storefront listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(drainCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	logg.Info("storefront stopped")
}
