package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/pkg/cachectrl"
	"github.com/epmviz/backend/internal/server/svr"
	"github.com/epmviz/backend/internal/service"
)

type Dataset struct {
	fx.In

	SceneService *service.Scene
}

func RegisterDataset(v1 *svr.V1, c Dataset) {
	v1.Get("/dataset/summary", c.Summary)
}

func (c *Dataset) Summary(ctx *fiber.Ctx) error {
	summary, err := c.SceneService.Summary(ctx.UserContext(), ctx.Query("model", constant.DefaultModel))
	if err != nil {
		return err
	}

	if cachectrl.OptInETag(ctx, time.Now(), time.Minute, summary.Digest) {
		return nil
	}
	return ctx.JSON(summary)
}
