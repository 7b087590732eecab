package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/server/svr"
	"github.com/epmviz/backend/internal/service"
)

type Camera struct {
	fx.In

	SceneService *service.Scene
}

func RegisterCamera(v1 *svr.V1, c Camera) {
	v1.Post("/camera/relayout", c.Relayout)
}

// Relayout takes the relayout event emitted by the renderer and answers with
// the patch that pulls the camera back into bounds, or 204 when none is needed.
func (c *Camera) Relayout(ctx *fiber.Ctx) error {
	patch, err := c.SceneService.Relayout(ctx.Body())
	if err != nil {
		return err
	}
	if patch == nil {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(patch)
}
