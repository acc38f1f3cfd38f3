package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Pages serves full HTML documents at the site root.
type Pages struct {
	fiber.Router
}

// Fragments serves single tab groups for partial page updates.
type Fragments struct {
	fiber.Router
}

type V1 struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Pages, *Fragments, *V1, *Meta) {
	pages := app.Group("/")
	fragments := app.Group("/fragments")
	v1 := app.Group("/api/v1")
	meta := app.Group("/api/_")

	return &Pages{Router: pages}, &Fragments{Router: fragments}, &V1{Router: v1}, &Meta{Router: meta}
}
