package routes

import (
	"github.com/gofiber/fiber/v2"

	"oci_kiosk/internal/handlers"
	"oci_kiosk/internal/middleware"
)

func NodeRoutes(app *fiber.App, deps Deps) {
	nodes := app.Group("/api/nodes")

	nodes.Get("/tree", handlers.GetTreeHandler(deps.DB))
	nodes.Get("/:id", handlers.GetNodeHandler(deps.DB))

	nodes.Post("/", middleware.RequireOperator(), handlers.CreateNodeHandler(deps.DB))
	nodes.Put("/:id", middleware.RequireOperator(), handlers.UpdateNodeHandler(deps.DB))
	nodes.Delete("/:id", middleware.RequireOperator(), handlers.DeleteNodeHandler(deps.DB, deps.Store))
}
