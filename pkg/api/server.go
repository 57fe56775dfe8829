package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mvg/pkg/api/routes"
)

func NewApp(upstream routes.Upstream, metrics *Metrics) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())
	webApp.Use(metrics.Middleware())

	webApp.Get("/metrics", metrics.Handler())

	group := webApp.Group("/mvg")

	group.Get("version", routes.APIVersion)

	routes.MVGRouter(group, upstream)

	return webApp
}

func SetupServer(listen string, upstream routes.Upstream) error {
	return NewApp(upstream, NewMetrics()).Listen(listen)
}
