package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentcraft-be/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerApp mirrors the production middleware order: the error handler
// wraps recover so a panic comes back as an error and is answered like any
// other unexpected fault.
func newHandlerApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Use(recover.New())
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestErrorHandlerMapsAppErrors(t *testing.T) {
	app := newHandlerApp()
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return apperrors.NewNotFound("Content")
	})
	app.Get("/quota", func(ctx *fiber.Ctx) error {
		return apperrors.NewQuotaExceeded("Daily generation limit reached. Try again tomorrow.")
	})

	resp, body := getJSON(t, app, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Content not found", body["error"])

	resp, body = getJSON(t, app, "/quota")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Daily generation limit reached. Try again tomorrow.", body["error"])
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	app := newHandlerApp()
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection reset by peer")
	})

	resp, body := getJSON(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], "pq:", "internal causes must not leak")
}

func TestErrorHandlerContainsPanics(t *testing.T) {
	app := newHandlerApp()
	app.Get("/panic", func(ctx *fiber.Ctx) error {
		panic("nil dereference in handler")
	})
	app.Get("/healthy", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	})

	resp, body := getJSON(t, app, "/panic")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["error"])

	// The app keeps serving after the panic.
	resp, body = getJSON(t, app, "/healthy")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}
