package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/pkg/flog"
)

// RequestID copies the request id injected by the logger middleware into
// ctx.Locals, where non-logging consumers look for it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
