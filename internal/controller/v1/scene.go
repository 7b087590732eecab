package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/pkg/apperr"
	"github.com/epmviz/backend/internal/pkg/cachectrl"
	"github.com/epmviz/backend/internal/server/svr"
	"github.com/epmviz/backend/internal/service"
	"github.com/epmviz/backend/internal/util/rekuest"
)

type Scene struct {
	fx.In

	SceneService *service.Scene
}

type SceneQuery struct {
	Model  string `query:"model" json:"model" validate:"omitempty,max=64,printascii"`
	Viewer string `query:"viewer" json:"viewer" validate:"omitempty,viewer"`
}

func (q *SceneQuery) model() string {
	if q.Model == "" {
		return constant.DefaultModel
	}
	return q.Model
}

func RegisterScene(v1 *svr.V1, c Scene) {
	scene := v1.Group("/scene")
	scene.Get("/", c.GetScene)
	scene.Get("/frames/:turn", c.GetFrame)
}

// GetScene renders the whole animated scene: initial data, frames, layout and config.
func (c *Scene) GetScene(ctx *fiber.Ctx) error {
	var q SceneQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	rendered, err := c.SceneService.Render(ctx.UserContext(), q.Viewer, q.model())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	if rendered.Token != 0 {
		ctx.Set(constant.SessionTokenHeader, strconv.FormatUint(uint64(rendered.Token), 10))
	}
	return ctx.JSON(rendered.Renderable)
}

// GetFrame returns the scene state after a single turn.
func (c *Scene) GetFrame(ctx *fiber.Ctx) error {
	var q SceneQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	turn, err := strconv.Atoi(ctx.Params("turn"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("turn must be an integer, got %q", ctx.Params("turn"))
	}

	frame, err := c.SceneService.Frame(ctx.UserContext(), q.model(), turn)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(frame)
}
