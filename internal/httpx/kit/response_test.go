package kit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestEnvelopeAndErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"x": 1}) })
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("theme not found") })
	app.Get("/limited", func(c *fiber.Ctx) error { return RateLimited("rate limit exceeded") })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("ok req: %v", err)
	}
	var env struct {
		Code string
		Data map[string]any
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != "OK" || env.Data["x"].(float64) != 1 {
		t.Fatalf("got %+v", env)
	}

	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var e struct{ Code string }
	_ = json.NewDecoder(res.Body).Decode(&e)
	if e.Code != "E_NOT_FOUND" {
		t.Fatalf("code=%q", e.Code)
	}

	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil))
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status=%d", res.StatusCode)
	}
	_ = json.NewDecoder(res.Body).Decode(&e)
	if e.Code != "E_RATE_LIMITED" {
		t.Fatalf("code=%q", e.Code)
	}
}
