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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/handlers"
	"inventory-backend/internal/idgen"
	"inventory-backend/internal/logger"
	"inventory-backend/internal/repository"
	"inventory-backend/internal/routes"
	"inventory-backend/internal/services"
	"inventory-backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.WithError(err).Fatal("Server stopped with error")
	}
	logg.Info("Server stopped")
}

// run arma las dependencias y sirve HTTP hasta que ctx se cancela
func run(ctx context.Context, cfg *config.Config, logg *logrus.Logger) error {
	ids, err := idgen.NewSnowflake(cfg.NodeID)
	if err != nil {
		return err
	}

	images, err := storage.NewImageStore(cfg.UploadDir, ids)
	if err != nil {
		return err
	}

	var (
		productRepo  services.ProductRepository
		settingsRepo services.SettingsRepository
		ping         func(context.Context) error
	)

	switch cfg.Store {
	case "memory":
		logg.Warn("Using in-memory store, data is lost on restart")
		productRepo = repository.NewMemoryProductRepository()
		settingsRepo = repository.NewMemorySettingsRepository()
	default:
		client, err := database.Connect(ctx, cfg.MongoURI, logg)
		if err != nil {
			return err
		}
		defer database.Disconnect(context.Background(), client, logg)

		db := client.Database(cfg.MongoDB)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			logg.WithError(err).Warn("Failed to ensure indexes")
		}

		productRepo = repository.NewProductRepository(db.Collection(database.ProductsCollection), cfg.RequestTimeout)
		settingsRepo = repository.NewSettingsRepository(db.Collection(database.SettingsCollection), cfg.RequestTimeout)
		ping = pinger(client)
	}

	products := services.NewProductService(productRepo, images, ids,
		services.WithEncodeOnUpdate(cfg.EncodePricesOnUpdate),
		services.WithProductLogger(logg),
	)
	settings := services.NewSettingsService(settingsRepo, logg)

	router := routes.NewRouter(routes.Deps{
		Products:       handlers.NewProductHandler(products, logg),
		Settings:       handlers.NewSettingsHandler(settings, logg),
		Images:         handlers.NewImageHandler(images, logg),
		UploadDir:      images.Dir(),
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Ping:           ping,
		Log:            logg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.WithField("addr", srv.Addr).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func pinger(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return database.Ping(ctx, client)
	}
}
