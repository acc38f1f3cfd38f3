package v1

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/pkg/bininfo"
	"github.com/soil-insights/soilboard/internal/pkg/cachectrl"
	"github.com/soil-insights/soilboard/internal/pkg/middlewares"
	"github.com/soil-insights/soilboard/internal/server/svr"
	"github.com/soil-insights/soilboard/internal/service"
)

type Dataset struct {
	fx.In

	DatasetService *service.Dataset
}

func RegisterDataset(v1 *svr.V1, c Dataset) {
	v1.Use(middlewares.AcceptsJSON)

	v1.Get("/routes", c.Routes)

	topic := v1.Group("/topics/:topic", middlewares.ValidateTopicAsParam)
	topic.Get("/models", topicHandler(c.DatasetService.Models))
	topic.Get("/monthly", topicHandler(c.DatasetService.Monthly))
	topic.Get("/yearly", topicHandler(c.DatasetService.Yearly))
	topic.Get("/clusters", topicHandler(c.DatasetService.Clusters))
}

// respond writes v as JSON. Every dataset is compiled into the binary, so the build
// time doubles as Last-Modified and the body hash as ETag.
func respond(ctx *fiber.Ctx, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, bininfo.BuiltAt())
	if cachectrl.SetETag(ctx, body) {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.Send(body)
}

func (c Dataset) Routes(ctx *fiber.Ctx) error {
	return respond(ctx, c.DatasetService.Routes())
}

func topicHandler[T any](get func(model.Topic) T) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return respond(ctx, get(middlewares.TopicFrom(ctx)))
	}
}
