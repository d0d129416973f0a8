package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-service/internal/api/http/handlers"
	"github.com/spec-kit/event-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Guests         *handlers.GuestsHandler
	Vendors        *handlers.VendorsHandler
	Payments       *handlers.PaymentsHandler
	Catalog        *handlers.CatalogHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	CSRF           *auth.CSRFStore
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	// Everything below requires a session; mutations additionally carry the
	// CSRF token header.
	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), auth.CSRFMiddleware(cfg.CSRF))

	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/profile", cfg.Auth.Profile)
	protected.Put("/auth/profile", cfg.Auth.UpdateProfile)
	protected.Post("/auth/password/change", cfg.Auth.ChangePassword)

	events := protected.Group("/events")
	events.Get("", cfg.Events.List)
	events.Post("", cfg.Events.Create)
	events.Get("/:id", cfg.Events.Get)
	events.Put("/:id", cfg.Events.Update)
	events.Delete("/:id", cfg.Events.Delete)
	events.Get("/:id/totals", cfg.Events.Totals)

	// Path the existing list view posts to.
	protected.Post("/event/:id/delete", cfg.Events.Delete)

	events.Get("/:id/guests", cfg.Guests.List)
	events.Post("/:id/guests", cfg.Guests.Add)
	events.Put("/:id/guests/:guestID", cfg.Guests.Update)
	events.Patch("/:id/guests/:guestID/rsvp", cfg.Guests.SetRSVP)
	events.Delete("/:id/guests/:guestID", cfg.Guests.Remove)

	events.Get("/:id/vendors", cfg.Vendors.List)
	events.Post("/:id/vendors", cfg.Vendors.Assign)
	events.Delete("/:id/vendors/:vendorID", cfg.Vendors.Remove)

	events.Get("/:id/payments", cfg.Payments.List)
	events.Post("/:id/payments", cfg.Payments.Record)

	protected.Get("/venues", cfg.Catalog.ListVenues)
	protected.Get("/venues/:id", cfg.Catalog.GetVenue)
	protected.Get("/packages", cfg.Catalog.ListPackages)
	protected.Get("/vendors", cfg.Catalog.ListVendors)

	admin := protected.Group("/admin", auth.RequireAdmin())
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/activity", cfg.Admin.Activity)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Patch("/users/:id/toggle", cfg.Admin.ToggleUser)

	admin.Get("/events", cfg.Events.AdminList)
	admin.Patch("/events/:id/status", cfg.Events.ChangeStatus)

	admin.Get("/venues", cfg.Catalog.AdminListVenues)
	admin.Post("/venues", cfg.Catalog.CreateVenue)
	admin.Put("/venues/:id", cfg.Catalog.UpdateVenue)
	admin.Delete("/venues/:id", cfg.Catalog.DeleteVenue)

	admin.Get("/packages", cfg.Catalog.AdminListPackages)
	admin.Post("/packages", cfg.Catalog.CreatePackage)
	admin.Put("/packages/:id", cfg.Catalog.UpdatePackage)
	admin.Delete("/packages/:id", cfg.Catalog.DeletePackage)

	admin.Get("/vendors", cfg.Catalog.AdminListVendors)
	admin.Post("/vendors", cfg.Catalog.CreateVendor)
	admin.Put("/vendors/:id", cfg.Catalog.UpdateVendor)
	admin.Delete("/vendors/:id", cfg.Catalog.DeleteVendor)
}
