package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/xxh3"
)

func OptIn(ctx *fiber.Ctx, t time.Time) {
	offset := time.Hour
	OptInCustom(ctx, t, offset)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set("Expires", t.Add(offset).Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	ctx.Set("Pragma", "no-cache")
	ctx.Set("Expires", "0")
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	return `"` + strconv.FormatUint(xxh3.Hash(body), 36) + `"`
}

// SetETag sets the ETag header for body and reports whether the request's
// If-None-Match already matches it, in which case the caller may answer 304.
func SetETag(ctx *fiber.Ctx, body []byte) bool {
	tag := ETag(body)
	ctx.Set(fiber.HeaderETag, tag)
	return ctx.Get(fiber.HeaderIfNoneMatch) == tag
}
