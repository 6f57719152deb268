package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	v1 "github.com/tidewatch/backend/internal/api/v1"
)

const prefixV1 = "/api/v1"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"/sightings", handler.CreateSighting)
	app.Post(prefixV1+"/cleanups", handler.CreateCleanup)
	app.Post(prefixV1+"/classify", handler.Classify)

	app.Get(prefixV1+"/admin/sightings", handler.PendingSightings)
	app.Post(prefixV1+"/admin/sightings/:id/decision", handler.DecideSighting)
	app.Get(prefixV1+"/admin/cleanups", handler.PendingCleanups)
	app.Post(prefixV1+"/admin/cleanups/:id/decision", handler.DecideCleanup)

	app.Get(prefixV1+"/market", handler.MarketList)
	app.Post(prefixV1+"/market/purchase", handler.Purchase)

	app.Get(prefixV1+"/users/:id/stats", handler.UserStats)
	app.Get(prefixV1+"/users/:id/collection", handler.UserCollection)
	app.Get(prefixV1+"/users/:id/badges", handler.UserBadges)

	app.Get(prefixV1+"/badges", handler.ListBadges)

	app.Get(prefixV1+"/rankings/points", handler.RankingsPoints)
	app.Get(prefixV1+"/rankings/cleanups", handler.RankingsCleanups)
}
