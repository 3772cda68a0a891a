// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "bloomshop/internal/api"
	"bloomshop/internal/api/handler"
	"bloomshop/internal/config"
	"bloomshop/internal/repository"
	"bloomshop/internal/repository/memory"
	"bloomshop/internal/service"
	"bloomshop/internal/util"
)

// Application holds all the initialized components of the application.
// The stores are constructed exactly once here and handed to the layers
// that need them; nothing in the process shares state through globals.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Repositories
	UserRepository   repository.UserRepository
	FlowerRepository repository.FlowerRepository
	// PurchaseRepository is wired up but not reached from any endpoint:
	// the purchase endpoints are mocked and the cart-to-purchase
	// transfer is intentionally left unimplemented.
	PurchaseRepository repository.PurchaseRepository

	// Services
	AuthService    service.AuthService
	CatalogService service.CatalogService
	CartService    service.CartService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance. A default logger
// is attached so initialization failures can still be reported.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize Repositories (all in-memory, process lifetime)
	app.UserRepository = memory.NewUserRepository()
	app.FlowerRepository = memory.NewFlowerRepository()
	app.PurchaseRepository = memory.NewPurchaseRepository()
	app.Logger.Info("Repositories initialized.")

	// 4. Initialize Services
	app.AuthService = service.NewAuthService(app.UserRepository)
	app.CatalogService = service.NewCatalogService(app.FlowerRepository)
	app.CartService = service.NewCartService()
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	catalogHandler := handler.NewCatalogHandler(app.CatalogService, app.Logger)
	cartHandler := handler.NewCartHandler(app.CartService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, catalogHandler, cartHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources. All state is
// in-memory, so there is nothing to flush or close; it is discarded
// with the process.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
