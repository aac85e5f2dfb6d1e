// cmd/gateway/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/cart"
	"github.com/your-org/storefront-gateway/internal/catalog"
	"github.com/your-org/storefront-gateway/internal/config"
	httpserver "github.com/your-org/storefront-gateway/internal/interfaces/http"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/routes"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/order"
	"github.com/your-org/storefront-gateway/internal/pkg/logging"
	"github.com/your-org/storefront-gateway/internal/session"
	"github.com/your-org/storefront-gateway/internal/storage"
	"github.com/your-org/storefront-gateway/internal/wishlist"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open durable storage
	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	hub := notify.NewHub(logger)

	// The transport owns credential attachment and the 401 refresh-retry.
	// The session manager is bound after construction because its own
	// requests flow through a client built on this transport.
	transport := api.NewAuthTransport(cfg, nil, logger)
	client := api.NewClient(cfg, transport, logger)

	sessions := session.NewManager(cfg, client, store, hub, logger)
	transport.BindTokens(sessions)

	cartStore := cart.NewStore(store, hub, logger)
	wishlistStore := wishlist.NewStore(store, cartStore, hub, logger)

	catalogClient := catalog.NewClient(client, logger)
	searcher := catalog.NewSearcher(catalogClient)
	orderClient := order.NewClient(client, logger)

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, &routes.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Hub:      hub,
		Sessions: sessions,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Catalog:  catalogClient,
		Searcher: searcher,
		Orders:   orderClient,
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close storage")
		}
	}

	logger.Info("Server shutdown completed")
}
