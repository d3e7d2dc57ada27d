package connections

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
	themecore "mailtheme-api/internal/theme"
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
			app.Get("/connections", ListConnectionsHandler(client))
			app.Put("/connections/:id/theme", SetThemeHandler(client))
			app.Put("/connections/:id/default", SetDefaultHandler(client))
			app.Delete("/connections/:id", DeleteConnectionHandler(client))
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

func TestConnections_List_PreferredOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)

	var connIDs []uuid.UUID
	for i := 0; i < 3; i++ {
		cn, err := client.Connection.Create().
			SetEmail(fmt.Sprintf("acct%d@example.com", i)).
			SetName(fmt.Sprintf("Account %d", i)).
			SetOwnerID(owner.ID).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed connection: %v", err)
		}
		connIDs = append(connIDs, cn.ID)
	}
	// Prefer the last account first; leave the rest unranked. The order
	// also carries a stale id, which readers must skip.
	_, err := client.Settings.Create().
		SetAccountOrder([]string{connIDs[2].String(), uuid.NewString()}).
		SetUserID(owner.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	app := appFor(client, owner.ID)
	res, body := doJSON(t, app, http.MethodGet, "/connections", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", res.StatusCode, body)
	}
	var env struct {
		Data struct{ Connections []ConnectionView }
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := env.Data.Connections
	if len(got) != 3 {
		t.Fatalf("want 3 connections, got %d", len(got))
	}
	if got[0].ID != connIDs[2] {
		t.Fatalf("ranked account not first: %v", got[0].ID)
	}
	// Unranked accounts keep their relative order.
	if got[1].ID != connIDs[0] || got[2].ID != connIDs[1] {
		t.Fatalf("unranked order disturbed: %v %v", got[1].ID, got[2].ID)
	}
}

func TestConnections_SetTheme(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)

	cn, _ := client.Connection.Create().SetEmail("me@example.com").SetOwnerID(owner.ID).Save(ctx)
	mine, _ := client.Theme.Create().
		SetName("Mine").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)
	// Public but foreign: attachable only after copying.
	foreign, _ := client.Theme.Create().
		SetName("Foreign").
		SetIsPublic(true).
		SetProperties(themecore.DefaultDark().AsMap()).
		SetOwnerID(other.ID).
		Save(ctx)

	app := appFor(client, owner.ID)

	res, body := doJSON(t, app, http.MethodPut, "/connections/"+cn.ID.String()+"/theme", map[string]any{"theme_id": mine.ID})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("attach status=%d body=%s", res.StatusCode, body)
	}
	attached, _ := client.Connection.Query().WithTheme().All(ctx)
	if attached[0].Edges.Theme == nil || attached[0].Edges.Theme.ID != mine.ID {
		t.Fatalf("theme not attached")
	}

	res, _ = doJSON(t, app, http.MethodPut, "/connections/"+cn.ID.String()+"/theme", map[string]any{"theme_id": foreign.ID})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign public theme attach status=%d", res.StatusCode)
	}

	// Detach with a null theme_id.
	res, _ = doJSON(t, app, http.MethodPut, "/connections/"+cn.ID.String()+"/theme", map[string]any{"theme_id": nil})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("detach status=%d", res.StatusCode)
	}
	detached, _ := client.Connection.Query().WithTheme().All(ctx)
	if detached[0].Edges.Theme != nil {
		t.Fatalf("theme still attached after detach")
	}

	// Foreign connection reads as missing.
	otherApp := appFor(client, other.ID)
	res, _ = doJSON(t, otherApp, http.MethodPut, "/connections/"+cn.ID.String()+"/theme", map[string]any{"theme_id": foreign.ID})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign connection status=%d", res.StatusCode)
	}
}

func TestConnections_SetDefault_And_Delete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	cn, _ := client.Connection.Create().SetEmail("me@example.com").SetOwnerID(owner.ID).Save(ctx)
	app := appFor(client, owner.ID)

	res, _ := doJSON(t, app, http.MethodPut, "/connections/"+cn.ID.String()+"/default", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("set default status=%d", res.StatusCode)
	}
	u, _ := client.User.Get(ctx, owner.ID)
	if u.DefaultConnectionID == nil || *u.DefaultConnectionID != cn.ID {
		t.Fatalf("default not set: %v", u.DefaultConnectionID)
	}

	res, _ = doJSON(t, app, http.MethodPut, "/connections/"+uuid.New().String()+"/default", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown connection status=%d", res.StatusCode)
	}

	// Deleting the default connection clears the preference too.
	res, _ = doJSON(t, app, http.MethodDelete, "/connections/"+cn.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d", res.StatusCode)
	}
	u, _ = client.User.Get(ctx, owner.ID)
	if u.DefaultConnectionID != nil {
		t.Fatalf("default not cleared on delete")
	}
	if n, _ := client.Connection.Query().Count(ctx); n != 0 {
		t.Fatalf("connection not deleted")
	}
}
