package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"socialposts/internal/database"
	"socialposts/internal/events"
	"socialposts/internal/handlers"
	"socialposts/internal/metrics"
	"socialposts/internal/repositories"
	"socialposts/internal/services"
)

// Deps are the collaborators the HTTP application is built from.
type Deps struct {
	DB *gorm.DB
	// Publisher receives domain events; nil disables publishing.
	Publisher  events.Publisher
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
	BcryptCost int
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Deps) *fiber.App {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	postRepo := repositories.NewGORMPostRepository(deps.DB)
	profileRepo := repositories.NewGORMProfileRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, deps.Publisher, deps.BcryptCost, deps.Logger)
	postService := services.NewPostService(postRepo, userRepo, deps.Publisher, deps.Logger)
	profileService := services.NewProfileService(profileRepo, deps.Publisher, deps.Logger)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, deps.Logger)
	postHandler := handlers.NewPostHandler(postService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, deps.DB)
	})

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.NewErrorHandler(deps.Logger),
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(deps.Metrics.Middleware())

	// --- Routes ---
	healthHandler.RegisterRoutes(app)
	app.Get("/metrics", deps.Metrics.Handler())
	authHandler.RegisterRoutes(app)
	postHandler.RegisterRoutes(app)
	profileHandler.RegisterRoutes(app)

	return app
}
