package routes

import (
	"github.com/gofiber/fiber/v2"

	"oci_kiosk/internal/handlers"
	"oci_kiosk/internal/middleware"
)

func AgendaRoutes(app *fiber.App, deps Deps) {
	agenda := app.Group("/api/agenda")

	agenda.Get("/", handlers.GetAgendasHandler(deps.DB))
	agenda.Get("/active", handlers.GetActiveAgendaHandler(deps.DB))
	agenda.Get("/:id", handlers.GetAgendaHandler(deps.DB))

	agenda.Post("/", middleware.RequireOperator(), handlers.CreateAgendaHandler(deps.DB))
	agenda.Put("/:id", middleware.RequireOperator(), handlers.UpdateAgendaHandler(deps.DB))
	agenda.Delete("/:id", middleware.RequireOperator(), handlers.DeleteAgendaHandler(deps.DB))
}
