package routes

import (
	"vacancy-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, health *handler.HealthHandler, recommendations *handler.RecommendationHandler) {
	if app == nil {
		return
	}

	if health != nil {
		health.RegisterRoutes(app)
	}

	v1 := app.Group("/api/v1")
	if recommendations != nil {
		recommendations.RegisterRoutes(v1)
	}
}
