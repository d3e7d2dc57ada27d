package httpx_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"mailtheme-api/ent"
	"mailtheme-api/internal/config"
	"mailtheme-api/internal/httpx"
	"mailtheme-api/internal/httpx/auth"
	"mailtheme-api/internal/httpx/kit"
	"mailtheme-api/internal/theme"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "mailtheme-api"
	cfg.JWT.Audience = "mailtheme-clients"
	cfg.JWT.AccessMin = 5
	cfg.RateLimit.WindowSec = 60
	cfg.RateLimit.Max = 60
	cfg.ES.Index = "themes"
	return cfg
}

func TestE2E_Health(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body struct {
		Code string         `json:"code"`
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "OK" || body.Data["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestE2E_NotFoundEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unexpected body: %v", body)
	}
}

// Full bearer-token round trip through the real router: no token is
// rejected, a signed token creates and lists themes.
func TestE2E_BearerThemeFlow(t *testing.T) {
	client := newTestClient(t)
	cfg := testConfig()

	ctx := context.Background()
	u, err := client.User.Create().SetDisplayName("E2E").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := auth.Sign(cfg, "user:"+u.ID.String(), "user", nil)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.Register(app, client, &httpx.Providers{Cfg: cfg})

	// Without a token the API is closed.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous status=%d", res.StatusCode)
	}

	// Create a theme with the token.
	payload := map[string]any{"name": "E2E Theme", "properties": theme.DefaultLight().AsMap()}
	b, _ := json.Marshal(payload)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/themes", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}

	// And list it back.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d", res.StatusCode)
	}
	var list struct {
		Data []struct {
			Name string `json:"name"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].Name != "E2E Theme" {
		t.Fatalf("unexpected list: %+v", list.Data)
	}

	// A token signed with another secret is rejected.
	badCfg := testConfig()
	badCfg.JWT.HSSecret = "wrong"
	badTok, _ := auth.Sign(badCfg, "user:"+u.ID.String(), "user", nil)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil)
	req.Header.Set("Authorization", "Bearer "+badTok)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("forged token status=%d", res.StatusCode)
	}
}
