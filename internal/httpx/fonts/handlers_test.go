package fonts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"mailtheme-api/internal/httpx/kit/testutil"
	"mailtheme-api/internal/httpx/mw"
)

func TestListFonts(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:any", Kind: "user"})
			return c.Next()
		})
		app.Get("/fonts", ListFontsHandler())
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/fonts", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct{ Data []Font }
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 30 {
		t.Fatalf("want 30 fonts, got %d", len(env.Data))
	}
	if env.Data[0].Family != "Roboto" {
		t.Fatalf("first font %q", env.Data[0].Family)
	}
}

func TestListFonts_RequiresAuth(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/fonts", ListFontsHandler())
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/fonts", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
