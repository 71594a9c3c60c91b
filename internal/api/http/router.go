package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/api/http/handlers"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Workspaces     *handlers.WorkspacesHandler
	Reports        *handlers.ReportsHandler
	Analytics      *handlers.AnalyticsHandler
	Dashboard      *handlers.DashboardHandler
	Teams          *handlers.TeamsHandler
	Tasks          *handlers.TasksHandler
	Tickets        *handlers.TicketsHandler
	RefData        *handlers.RefDataHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Get("/me", cfg.Users.Me)
	authProtected.Post("/logout", cfg.Users.Logout)
	authProtected.Post("/password/change", cfg.Users.ChangePassword)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	protected.Get("/dashboard", cfg.Dashboard.Overview)

	protected.Get("/workspaces", cfg.Workspaces.ListAccessible)
	protected.Post("/workspaces/sub", auth.RequireRole(domain.RoleOwner), cfg.Workspaces.CreateSub)

	protected.Get("/reports/analytics", cfg.Analytics.ReportAnalytics)
	protected.Post("/reports", cfg.Reports.Create)
	protected.Get("/reports", cfg.Reports.List)
	protected.Get("/reports/:id", cfg.Reports.Get)
	protected.Post("/reports/:id/submit", cfg.Reports.Submit)
	protected.Post("/reports/:id/review", auth.RequireRole(domain.RoleOwner, domain.RoleAdmin), cfg.Reports.StartReview)
	protected.Post("/reports/:id/approve", auth.RequireRole(domain.RoleOwner, domain.RoleAdmin), cfg.Reports.Approve)
	protected.Post("/reports/:id/reject", auth.RequireRole(domain.RoleOwner, domain.RoleAdmin), cfg.Reports.Reject)

	protected.Get("/teams/overview", cfg.Teams.Overview)
	protected.Post("/teams", auth.RequireRole(domain.RoleOwner, domain.RoleAdmin), cfg.Teams.Create)
	protected.Get("/teams", cfg.Teams.List)
	protected.Post("/teams/:id/members", auth.RequireRole(domain.RoleOwner, domain.RoleAdmin), cfg.Teams.AddMember)

	protected.Post("/tasks", cfg.Tasks.Create)
	protected.Get("/tasks", cfg.Tasks.List)
	protected.Post("/tasks/:id/complete", cfg.Tasks.Complete)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Post("/tickets/:id/status", cfg.Tickets.UpdateStatus)

	protected.Get("/departments", cfg.RefData.Departments)
	protected.Get("/templates", cfg.RefData.Templates)
	protected.Get("/branches", cfg.RefData.Branches)
	protected.Get("/regions", cfg.RefData.Regions)
}
