package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/marketplace-api/docs"
	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/ports"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
	"github.com/jhoicas/marketplace-api/internal/infrastructure/media"
	"github.com/jhoicas/marketplace-api/internal/infrastructure/memory"
	"github.com/jhoicas/marketplace-api/internal/infrastructure/postgres"
	"github.com/jhoicas/marketplace-api/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/marketplace-api/internal/interfaces/http"
	"github.com/jhoicas/marketplace-api/pkg/config"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

// repos agrupa los puertos de persistencia del driver elegido.
type repos struct {
	users        repository.UserRepository
	stores       repository.StoreRepository
	items        repository.ItemRepository
	transactions repository.TransactionRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("media", cfg.Media.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		db := memory.New()
		r = repos{users: db.Users(), stores: db.Stores(), items: db.Items(), transactions: db.Transactions()}
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, postgres.NewTxRunner(pool)); err != nil {
				log.Fatal().Err(err).Msg("crear tablas")
			}
			log.Info().Msg("schema verificado")
		}
		r = repos{
			users:        postgres.NewUserRepository(pool),
			stores:       postgres.NewStoreRepository(pool),
			items:        postgres.NewItemRepository(pool),
			transactions: postgres.NewTransactionRepository(pool),
		}
	}

	var uploader ports.MediaUploader
	appCfg := httpRouter.AppConfig{Name: cfg.App.Name, AllowOrigins: cfg.HTTP.AllowOrigins}
	switch cfg.Media.Driver {
	case config.MediaCloudinary:
		uploader, err = media.NewCloudinaryUploader(cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Cloudinary")
		}
	default:
		uploader, err = media.NewLocalUploader(cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de imágenes")
		}
		appCfg.UploadsDir = cfg.Media.LocalDir
		appCfg.UploadsPath = cfg.Media.PublicURL
	}

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	storeUC := usecase.NewStoreUseCase(r.stores)
	itemUC := usecase.NewItemUseCase(r.items, r.stores, uploader)
	userUC := usecase.NewUserUseCase(r.users, hasher)
	authUC := auth.NewAuthUseCase(r.users, hasher)
	transactionUC := usecase.NewTransactionUseCase(r.transactions)

	app := httpRouter.NewApp(appCfg, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Marketplace API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:       storeUC,
		ItemUC:        itemUC,
		UserUC:        userUC,
		AuthUC:        authUC,
		TransactionUC: transactionUC,
		Logger:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
