package handler

import (
	"github.com/gofiber/fiber/v2"

	"promocodeapi/internal/service"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Employees service.EmployeeService
	Roles     service.RoleService
	Exports   service.ExportService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse input, call the service, write the projection.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/api/v1")

	employees := v1.Group("/employees")
	employees.Get("/", ListEmployees(svc.Employees))
	employees.Post("/", CreateEmployee(svc.Employees))
	employees.Put("/", UpdateEmployee(svc.Employees))
	employees.Post("/export", ExportEmployees(svc.Exports))
	employees.Get("/:id", GetEmployee(svc.Employees))
	employees.Put("/:id", UpdateEmployeeByID(svc.Employees))
	employees.Delete("/:id", DeleteEmployee(svc.Employees))

	v1.Get("/roles", ListRoles(svc.Roles))
}
