// Package flog provides a set of fiber.Ctx helpers for zerolog.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx gets the logger in the request's context.
// This is a shortcut for log.Ctx(r.UserContext())
func FromFiberCtx(r *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(r.UserContext())
}

// NewHandlerMiddleware injects log into requests context.
func NewHandlerMiddleware(log zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// Create a copy of the logger (including internal context slice)
		// to prevent data race when using UpdateContext.
		l := log.With().Logger()
		ctx.SetUserContext(l.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// FieldHandler adds the value extracted by f as a field to the context's
// logger using fieldKey as field key. Empty values are skipped.
func FieldHandler(fieldKey string, f func(ctx *fiber.Ctx) string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if v := f(ctx); v != "" {
			zerolog.Ctx(ctx.UserContext()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, v)
			})
		}
		return ctx.Next()
	}
}

func URLHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Path() })
}

func MethodHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Method() })
}

func RemoteAddrHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.IP() })
}

func UserAgentHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Get(fiber.HeaderUserAgent) })
}

// QueryHandler logs the given query parameter, e.g. the requesting viewer.
func QueryHandler(fieldKey, param string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Query(param) })
}

type idKey struct{}

// IDFromFiberCtx returns the unique id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(r *fiber.Ctx) (id xid.ID, ok bool) {
	if r == nil {
		return
	}
	return IDFromCtx(r.UserContext())
}

// IDFromCtx returns the unique id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler returns a handler setting a unique id to the request which can
// be gathered using IDFromFiberCtx(req). This generated id is added as a field to the
// logger using the passed fieldKey as field name. The id is also added as a response
// header if the headerName is not empty.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			id = xid.New()
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			ctx.Set(headerName, id.String())
		}
		return ctx.Next()
	}
}

// AccessHandler returns a handler that call f after each request.
func AccessHandler(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

// Logger Level Method Helpers
func DebugFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Debug()
}

func InfoFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Info()
}

func WarnFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Warn()
}

func ErrorFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Error()
}
