package middlewares

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"github.com/epmviz/backend/internal/constant"
)

func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(constant.SlimHeaderKey) != "" {
			return c.Next()
		}

		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
			if viewer := c.Query(constant.ViewerQueryKey); viewer != "" {
				hub.Scope().SetUser(sentry.User{ID: viewer})
			}
		}

		span := sentry.StartSpan(c.UserContext(), "http.server", sentry.WithTransactionName(c.Method()+" "+c.Route().Path))
		defer span.Finish()
		c.SetUserContext(span.Context())

		return c.Next()
	}
}
