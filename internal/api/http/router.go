package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hiring-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Departments *handlers.DepartmentsHandler
	Jobs        *handlers.JobsHandler
	Employees   *handlers.EmployeesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	departments := app.Group("/departments")
	departments.Post("/", cfg.Departments.Create)
	departments.Get("/", cfg.Departments.List)
	departments.Post("/csv/", cfg.Departments.UploadCSV)
	departments.Get("/:id", cfg.Departments.Get)
	departments.Put("/:id", cfg.Departments.Update)
	departments.Delete("/:id", cfg.Departments.Delete)

	jobs := app.Group("/jobs")
	jobs.Post("/", cfg.Jobs.Create)
	jobs.Get("/", cfg.Jobs.List)
	jobs.Post("/csv/", cfg.Jobs.UploadCSV)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Put("/:id", cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.Jobs.Delete)

	employees := app.Group("/employees")
	employees.Post("/", cfg.Employees.Create)
	employees.Get("/", cfg.Employees.List)
	employees.Post("/csv/", cfg.Employees.UploadCSV)
	// report route must be registered ahead of the :id routes
	employees.Get("/reports/hires/departments/q/:year", cfg.Employees.HiresByQuarter)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)
}
