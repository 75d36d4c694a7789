// main.go
package main

import (
	"ak-storefront/config"
	"ak-storefront/controllers"
	"ak-storefront/middleware"
	"ak-storefront/routes"
	"ak-storefront/store"
	"ak-storefront/utils"
	"ak-storefront/vault"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Set the JWT secret key
	utils.JwtKey = cfg.JWTSecret

	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatal(err)
	}
	kv := vault.NewStore(backend, log.Default())
	defer func() {
		if err := kv.Close(); err != nil {
			log.Println("Error closing storage:", err)
		}
	}()

	opts := []store.Option{
		store.WithCartPolicy(store.CartPolicy(cfg.CartPolicy)),
		store.WithDeliveryFee(cfg.DeliveryFee, cfg.DeliveryThreshold),
	}
	if cfg.SeedCatalogFile != "" {
		seed, err := store.LoadCatalogFile(cfg.SeedCatalogFile)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, store.WithSeedCatalog(seed))
	}
	shop := store.New(kv, opts...)
	for key, status := range shop.Hydration() {
		if status == vault.Corrupt {
			log.Printf("Stored %s was unreadable, started from defaults", key)
		}
	}

	gate, err := utils.NewAccessGate(cfg.AdminAccessCode)
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.AdminEnabled() {
		log.Println("ADMIN_ACCESS_CODE is not set, the admin console is locked")
	}

	var uploader utils.MediaUploader
	if cfg.CloudinaryURL != "" {
		cld, err := utils.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
		uploader = cld
	}

	notifier := utils.NewNotifier(cfg.EmailProvider, cfg.PostmarkAPIToken, cfg.SendGridAPIKey, cfg.EmailSender)

	// Initialize controllers
	orderController := controllers.NewOrderController(shop, notifier)
	router := mux.NewRouter()
	router.Use(middleware.JSONContentType)
	routes.RegisterRoutes(router, routes.Controllers{
		Health:  controllers.NewHealthController(shop),
		User:    controllers.NewUserController(shop, gate),
		Product: controllers.NewProductController(shop, uploader),
		Cart:    controllers.NewCartController(shop),
		Order:   orderController,
		Shopper: controllers.NewShopperController(shop),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server is running on port %s (storage: %s)\n", cfg.Port, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Error shutting down:", err)
	}
	orderController.Wait()
}

func openBackend(cfg *config.AppConfig) (vault.Backend, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Println("Using in-memory storage, state is lost on restart")
		return vault.NewMemoryBackend(), nil
	case config.DriverMongo:
		client, err := utils.ConnectDB(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return vault.NewMongoBackend(client, cfg.MongoDatabase), nil
	default:
		fb, err := vault.NewFileBackend(cfg.VaultDir)
		if err != nil {
			return nil, err
		}
		return fb, nil
	}
}
