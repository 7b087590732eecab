package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/pkg/cachectrl"
	"github.com/epmviz/backend/internal/server/svr"
	"github.com/epmviz/backend/internal/service"
	"github.com/epmviz/backend/internal/util/rekuest"
)

type Session struct {
	fx.In

	SceneService *service.Scene
}

func RegisterSession(v1 *svr.V1, c Session) {
	v1.Get("/session/:viewer", c.LastRendered)
}

// LastRendered reports what the viewer was last served.
func (c *Session) LastRendered(ctx *fiber.Ctx) error {
	viewer := ctx.Params("viewer")
	if err := rekuest.ValidVar(viewer, "required,viewer"); err != nil {
		return err
	}

	record, err := c.SceneService.LastRecord(viewer)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(record)
}
