package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/epmviz/backend/internal/pkg/apperr"
	"github.com/epmviz/backend/internal/pkg/flog"
)

func HandleCustomError(ctx *fiber.Ctx, e *apperr.AppError) error {
	flog.WarnFrom(ctx).
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	// Provide error code if apperr.AppError type
	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return HandleCustomError(ctx, ae)
	}

	// Return default error handler
	// Default 500 statuscode
	re := *apperr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		if fe.Code == fiber.StatusNotFound {
			re.ErrorCode = apperr.CodeNotFound
		}
	}

	if re.StatusCode >= fiber.StatusInternalServerError {
		flog.ErrorFrom(ctx).
			Stack().
			Err(err).
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", re.StatusCode).
			Msg("Internal Server Error")

		if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
			hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
			hub.CaptureException(err)
		}
	}

	return HandleCustomError(ctx, &re)
}
