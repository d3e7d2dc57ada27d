package settings

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mailtheme-api/ent"
	"mailtheme-api/internal/httpx/kit/testutil"
	"mailtheme-api/internal/httpx/mw"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
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

func appFor(client *ent.Client, uid uuid.UUID) *fiber.App {
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:" + uid.String(), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/settings", GetSettingsHandler(client))
			app.Put("/settings/account-order", SetAccountOrderHandler(client))
		},
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(res.Body)
	return res, buf.Bytes()
}

type settingsEnv struct {
	Data struct {
		AccountOrder []string `json:"account_order"`
	}
}

func TestSettings_Get_Empty(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("U").Save(ctx)
	app := appFor(client, u.ID)

	res, body := doJSON(t, app, http.MethodGet, "/settings", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", res.StatusCode, body)
	}
	var env settingsEnv
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.AccountOrder) != 0 {
		t.Fatalf("fresh user has order: %v", env.Data.AccountOrder)
	}
}

func TestSettings_SetAccountOrder_Upsert(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("U").Save(ctx)
	app := appFor(client, u.ID)

	// The list is stored verbatim, stale ids included.
	order := []string{uuid.NewString(), uuid.NewString(), "stale-id"}
	res, body := doJSON(t, app, http.MethodPut, "/settings/account-order", map[string]any{"account_order": order})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", res.StatusCode, body)
	}
	var env settingsEnv
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.AccountOrder) != 3 || env.Data.AccountOrder[2] != "stale-id" {
		t.Fatalf("order not stored verbatim: %v", env.Data.AccountOrder)
	}

	// Second write replaces, not appends.
	order2 := []string{order[1]}
	res, body = doJSON(t, app, http.MethodPut, "/settings/account-order", map[string]any{"account_order": order2})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	res, body = doJSON(t, app, http.MethodGet, "/settings", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	env = settingsEnv{}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.AccountOrder) != 1 || env.Data.AccountOrder[0] != order[1] {
		t.Fatalf("second write did not replace: %v", env.Data.AccountOrder)
	}
	if n, _ := client.Settings.Query().Count(ctx); n != 1 {
		t.Fatalf("upsert created duplicate rows: %d", n)
	}

	res, _ = doJSON(t, app, http.MethodPut, "/settings/account-order", map[string]any{})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing account_order status=%d", res.StatusCode)
	}
}
