package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn lets clients cache a response derived from data last modified at t.
func OptIn(ctx *fiber.Ctx, t time.Time, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(maxAge).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

// OptInETag is OptIn plus a strong validator; it reports whether the client
// already holds the current representation, in which case a 304 was written.
func OptInETag(ctx *fiber.Ctx, t time.Time, maxAge time.Duration, etag string) bool {
	OptIn(ctx, t, maxAge)
	quoted := `"` + etag + `"`
	ctx.Set(fiber.HeaderETag, quoted)
	if ctx.Get(fiber.HeaderIfNoneMatch) == quoted {
		ctx.Status(fiber.StatusNotModified)
		return true
	}
	return false
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
