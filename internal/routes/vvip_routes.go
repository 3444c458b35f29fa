package routes

import (
	"github.com/gofiber/fiber/v2"

	"oci_kiosk/internal/handlers"
	"oci_kiosk/internal/middleware"
)

func VVIPRoutes(app *fiber.App, deps Deps) {
	vvips := app.Group("/api/vvips")

	vvips.Get("/", handlers.GetVVIPsHandler(deps.DB))
	vvips.Get("/playing", handlers.GetPlayingVVIPHandler(deps.DB))

	vvips.Post("/", middleware.RequireOperator(), handlers.CreateVVIPHandler(deps.DB))
	vvips.Put("/:id", middleware.RequireOperator(), handlers.UpdateVVIPHandler(deps.DB))
	vvips.Delete("/:id", middleware.RequireOperator(), handlers.DeleteVVIPHandler(deps.DB, deps.Store))
}
