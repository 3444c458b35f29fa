package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/database"
	"oci_kiosk/internal/handlers"
	"oci_kiosk/internal/middleware"
	"oci_kiosk/internal/storage"
)

type Deps struct {
	DB    *mongo.Database
	Store *storage.Store
	Cfg   database.Config
}

// Register wires every API route. Kiosk reads are public; CMS mutations sit
// behind RequireOperator.
func Register(app *fiber.App, deps Deps) {
	app.Post("/api/auth/login", handlers.LoginHandler(deps.Cfg))

	NodeRoutes(app, deps)
	AgendaRoutes(app, deps)
	VVIPRoutes(app, deps)

	app.Get("/api/home", handlers.GetHomeHandler(deps.DB))
	app.Put("/api/home", middleware.RequireOperator(), handlers.UpdateHomeHandler(deps.DB))

	if deps.Store != nil {
		app.Get("/api/subtitles/:key", handlers.GetSubtitleHandler(deps.Store))
		app.Post("/api/uploads", middleware.RequireOperator(), handlers.UploadHandler(deps.Store))
	}
}
