package app

import (
	"fmt"
	"strings"

	"vacancy-match/internal/config"
	"vacancy-match/internal/delivery/http/handler"
	"vacancy-match/internal/delivery/http/middleware"
	"vacancy-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(container.Logger)
	f.Use(accessMw.Middleware())

	routes.Register(
		f,
		handler.NewHealthHandler(container.DB),
		handler.NewRecommendationHandler(container.Recommender, container.Stats),
	)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
