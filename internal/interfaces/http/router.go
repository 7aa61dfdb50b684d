package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC       *usecase.StoreUseCase
	ItemUC        *usecase.ItemUseCase
	UserUC        *usecase.UserUseCase
	AuthUC        *auth.AuthUseCase
	TransactionUC *usecase.TransactionUseCase
	Logger        *logger.Logger
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name         string
	AllowOrigins string // "*" o lista separada por comas
	UploadsDir   string // si no está vacío se sirve bajo UploadsPath (driver de medios local)
	UploadsPath  string
}

// NewApp crea la app Fiber con el ErrorHandler de envelope y los middlewares comunes.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		// los valores de query/body se guardan tal cual en los repositorios en memoria
		Immutable:    true,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if cfg.UploadsDir != "" {
		app.Static(cfg.UploadsPath, cfg.UploadsDir)
	}
	return app
}

// Router registra las rutas de la API. Las rutas fijas van antes que las parametrizadas
// (/store/getAll antes de /store/:id, /user/balance/:id antes de /user/:email).
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, "OK", nil)
	})

	// Items
	items := app.Group("/item")
	itemHandler := NewItemHandler(deps.ItemUC, log)
	items.Post("/create", itemHandler.Create)
	items.Put("/", itemHandler.Update)
	items.Get("/", itemHandler.GetAll)
	items.Get("/byId/:id", itemHandler.GetByID)
	items.Get("/byStoreId/:store_id", itemHandler.GetByStoreID)
	items.Delete("/:id", itemHandler.Delete)

	// Stores
	stores := app.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC, log)
	stores.Get("/getAll", storeHandler.GetAll)
	stores.Post("/create", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Users
	users := app.Group("/user")
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC, log)
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Post("/topUp", userHandler.TopUp)
	users.Get("/balance/:id", userHandler.GetBalance)
	users.Get("/:email", userHandler.GetByEmail)
	users.Put("/", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Transactions
	transactions := app.Group("/transaction")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, log)
	transactions.Post("/create", transactionHandler.Create)
	transactions.Post("/pay", transactionHandler.Pay)
	transactions.Delete("/:id", transactionHandler.Delete)
}
