package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/healthtrackplus/healthtrack-backend/internal/config"
	"github.com/healthtrackplus/healthtrack-backend/internal/handlers"
	"github.com/healthtrackplus/healthtrack-backend/internal/middleware"
	"gorm.io/gorm"
)

// Setup mounts the whole HTTP surface. Guards are declared once per group:
// anonymous account routes, the JWT-protected patient surface, and the
// admin panel with the admin gate stacked on top of JWT.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	recordsHandler *handlers.RecordsHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Account routes, rate-limited harder than the rest: 10 req/min per IP.
	accounts := app.Group("/accounts")
	accounts.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	accounts.Post("/register", authHandler.Register)
	accounts.Post("/register-provider", authHandler.RegisterProvider)
	accounts.Post("/login", authHandler.Login)
	accounts.Post("/refresh", authHandler.Refresh)
	accounts.Post("/forgot-password", authHandler.ForgotPassword)
	accounts.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Patient surface. The guard is applied per route rather than via a
	// catch-all group so the anonymous account routes stay unaffected.
	jwt := middleware.JWTProtected(cfg)
	app.Get("/dashboard", jwt, recordsHandler.Dashboard)
	app.Get("/medicines", jwt, recordsHandler.ListMedicines)
	app.Post("/medicines", jwt, recordsHandler.CreateMedicine)
	app.Get("/health-track", jwt, recordsHandler.ListHealthRecords)
	app.Post("/health-track", jwt, recordsHandler.CreateHealthRecord)
	app.Get("/mental-health", jwt, recordsHandler.ListMentalHealthLogs)
	app.Post("/mental-health", jwt, recordsHandler.CreateMentalHealthLog)
	app.Get("/prescriptions", jwt, recordsHandler.ListPrescriptions)
	app.Post("/prescriptions", jwt, recordsHandler.CreatePrescription)
	app.Get("/lifestyle", jwt, recordsHandler.ListLifestyleLogs)
	app.Post("/lifestyle", jwt, recordsHandler.CreateLifestyleLog)
	app.Get("/insurance", jwt, recordsHandler.ListInsurancePolicies)
	app.Post("/insurance", jwt, recordsHandler.CreateInsurancePolicy)
	app.Get("/past-records", jwt, recordsHandler.PastRecords)
	app.Get("/profile", jwt, recordsHandler.GetProfile)
	app.Put("/profile", jwt, recordsHandler.UpdateProfile)

	// Admin panel (JWT + admin gate; handlers re-check the predicate).
	admin := app.Group("/admin-panel", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.UserDetail)
	admin.Post("/users/:id/approve", adminHandler.ApproveUser)
	admin.Post("/users/:id/reject", adminHandler.RejectUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/providers", adminHandler.ListProviders)
	admin.Get("/health-data", adminHandler.HealthData)
	admin.Get("/reports", adminHandler.Reports)
	admin.Get("/settings", adminHandler.ListSettings)
	admin.Post("/settings", adminHandler.UpsertSetting)
}
