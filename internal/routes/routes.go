package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rentora/rentora-backend/internal/config"
	"github.com/rentora/rentora-backend/internal/handlers"
	"github.com/rentora/rentora-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	propertyHandler *handlers.PropertyHandler,
	bookingHandler *handlers.BookingHandler,
	notificationHandler *handlers.NotificationHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Properties — browsing is public, mutations require auth
	api.Get("/properties", propertyHandler.List)
	api.Get("/properties/:id", propertyHandler.Get)
	api.Post("/properties", middleware.JWTProtected(cfg), propertyHandler.Create)
	api.Put("/properties/:id", middleware.JWTProtected(cfg), propertyHandler.Update)
	api.Delete("/properties/:id", middleware.JWTProtected(cfg), propertyHandler.Delete)

	// Bookings (protected)
	bookings := api.Group("/bookings", middleware.JWTProtected(cfg))
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.ListMine)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Put("/:id/cancel", bookingHandler.Cancel)

	// Notifications (protected)
	notifications := api.Group("/notifications", middleware.JWTProtected(cfg))
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Moderation — user endpoints. Registered with per-route middleware so
	// the admin guard below never touches them (group middleware in Fiber
	// applies by path prefix).
	jwt := middleware.JWTProtected(cfg)
	api.Post("/moderation/report", jwt, moderationHandler.CreateReport)
	api.Post("/moderation/reports/:reportId/appeal", jwt, moderationHandler.SubmitAppeal)

	// Moderation — admin panel (JWT + admin required)
	adm := middleware.AdminRequired(db, cfg)
	api.Get("/moderation/reports", jwt, adm, moderationHandler.ListReports)
	api.Get("/moderation/reports/urgent", jwt, adm, moderationHandler.UrgentReports)
	api.Get("/moderation/reports/user/:userId", jwt, adm, moderationHandler.ReportsAgainstUser)
	api.Put("/moderation/reports/bulk-review", jwt, adm, moderationHandler.BulkReview)
	api.Put("/moderation/reports/:reportId/review", jwt, adm, moderationHandler.ReviewReport)
	api.Put("/moderation/reports/:reportId/appeal/review", jwt, adm, moderationHandler.ReviewAppeal)
	api.Get("/moderation/statistics", jwt, adm, moderationHandler.Statistics)
	api.Post("/moderation/check-content", jwt, adm, moderationHandler.CheckContent)
}
