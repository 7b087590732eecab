package svr

import (
	"github.com/gofiber/fiber/v2"
)

type V1 struct {
	fiber.Router
}

// Meta serves operational endpoints: health and build info.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*V1, *Meta) {
	v1 := app.Group("/api/v1")
	meta := app.Group("/api/_")

	return &V1{Router: v1}, &Meta{Router: meta}
}
