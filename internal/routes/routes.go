package routes

import (
	"github.com/garagesale/backend/internal/config"
	"github.com/garagesale/backend/internal/handlers"
	"github.com/garagesale/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	imageHandler *handlers.ImageHandler,
	salesHandler *handlers.SalesHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth. create-super-admin takes no token; it refuses once the
	// first super admin exists.
	api.Post("/login", authHandler.Login)
	api.Post("/create-super-admin", authHandler.CreateSuperAdmin)
	api.Post("/create-admin", middleware.JWTProtected(cfg), middleware.SuperAdminRequired(), authHandler.CreateAdmin)

	// Public catalog and purchase.
	api.Get("/images", imageHandler.List)
	api.Post("/images/:id/buy", imageHandler.Buy)

	// Upload requires a valid token; any role may upload.
	// Gates are applied per route, not on a group: group middleware
	// matches by prefix and would shadow the public catalog routes.
	api.Post("/images", middleware.JWTProtected(cfg), imageHandler.Create)

	// Inventory management.
	api.Put("/images/:id/toggle-block", middleware.JWTProtected(cfg), middleware.AdminRequired(), imageHandler.ToggleBlock)
	api.Put("/images/:id/toggle-sold", middleware.JWTProtected(cfg), middleware.AdminRequired(), imageHandler.ToggleSold)
	api.Put("/images/:id/toggle-coming-soon", middleware.JWTProtected(cfg), middleware.SuperAdminRequired(), imageHandler.ToggleComingSoon)
	api.Put("/images/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(), imageHandler.Update)
	api.Delete("/images/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(), imageHandler.Delete)

	// Sales ledger is super-admin only.
	api.Get("/sales", middleware.JWTProtected(cfg), middleware.SuperAdminRequired(), salesHandler.List)
}
