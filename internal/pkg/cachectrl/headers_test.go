package cachectrl

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestETagStable(t *testing.T) {
	a := ETag([]byte("surface"))
	b := ETag([]byte("surface"))
	c := ETag([]byte("total"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^"[0-9a-z]+"$`, a)
}

func TestSetETagNotModified(t *testing.T) {
	body := []byte(`{"route":"home"}`)

	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		if SetETag(ctx, body) {
			return ctx.SendStatus(fiber.StatusNotModified)
		}
		return ctx.Send(body)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, ETag(body))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ETag(body), resp.Header.Get(fiber.HeaderETag))
}

func TestOptOut(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		OptOut(ctx)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
}
