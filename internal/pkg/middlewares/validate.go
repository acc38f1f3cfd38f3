package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/pkg/apperr"
)

const (
	LocalsKeyTopic = "topic"
	LocalsKeyRoute = "route"
)

// ValidateTopicAsParam parses the :topic param and stores the model.Topic in ctx.Locals.
func ValidateTopicAsParam(c *fiber.Ctx) error {
	topic, ok := model.ParseTopic(c.Params("topic"))
	if !ok {
		return apperr.ErrTopicNotFound.Msg("topic not found: %q. Expect one of surface, root_zone, total", c.Params("topic"))
	}
	c.Locals(LocalsKeyTopic, topic)
	return c.Next()
}

// ValidateRouteAsParam parses the :route param and stores the model.Route in ctx.Locals.
func ValidateRouteAsParam(c *fiber.Ctx) error {
	route, ok := model.ParseRoute(c.Params("route"))
	if !ok {
		return apperr.ErrRouteNotFound.Msg("route not found: %q", c.Params("route"))
	}
	c.Locals(LocalsKeyRoute, route)
	return c.Next()
}

func TopicFrom(c *fiber.Ctx) model.Topic {
	t, _ := c.Locals(LocalsKeyTopic).(model.Topic)
	return t
}

func RouteFrom(c *fiber.Ctx) model.Route {
	r, _ := c.Locals(LocalsKeyRoute).(model.Route)
	return r
}
