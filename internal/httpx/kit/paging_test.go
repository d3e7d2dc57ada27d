package kit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestParsePaging_Defaults(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error {
		p, err := ParsePaging(c)
		if err != nil {
			return err
		}
		return OK(c, fiber.Map{"limit": p.Limit, "offset": p.Offset, "mode": p.Mode})
	})

	cases := []struct {
		url   string
		limit float64
		mode  string
	}{
		{"/", 20, "offset"},
		{"/?limit=5", 5, "offset"},
		{"/?limit=0", 1, "offset"},
		{"/?limit=1000", 100, "offset"},
	}
	for _, tc := range cases {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, tc.url, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		var env struct{ Data map[string]any }
		if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Data["limit"].(float64) != tc.limit || env.Data["mode"].(string) != tc.mode {
			t.Fatalf("%s: got %v", tc.url, env.Data)
		}
	}
}

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC)
	tok := EncodeCursor(id, ts)

	got, err := DecodeCursor(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != id || !got.TS.Equal(ts) {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	for _, bad := range []string{"", "not-base64!", "bm90LWpzb24"} {
		if _, err := DecodeCursor(bad); err == nil {
			t.Fatalf("DecodeCursor(%q): expected error", bad)
		}
	}
}

func TestParsePaging_InvalidCursor(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := ParsePaging(c)
		if err != nil {
			return err
		}
		return OK(c, nil)
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/?cursor=garbage", nil))
	if err != nil {
		t.Fatalf("req: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
