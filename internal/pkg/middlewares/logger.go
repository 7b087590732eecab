package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/pkg/flog"
)

func Logger(app *fiber.App) {
	Chained(
		app,
		injectLogger(),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.UserAgentHandler("user_agent"),
		flog.QueryHandler("viewer", constant.ViewerQueryKey),
		requestLogger(),
	)
}

func injectLogger() fiber.Handler {
	return flog.NewHandlerMiddleware(log.With().Logger())
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration) {
		status := ctx.Response().StatusCode()
		evt := flog.InfoFrom(ctx)
		if status >= fiber.StatusInternalServerError {
			evt = flog.WarnFrom(ctx)
		}
		evt.
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
