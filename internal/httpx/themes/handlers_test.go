package themes

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mailtheme-api/ent"
	"mailtheme-api/ent/connection"
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
			app.Get("/themes/defaults", GetDefaultThemesHandler())
			app.Get("/themes/public/:id", GetPublicThemeHandler(client))
			app.Get("/themes/public", ListPublicThemesHandler(client))
			app.Post("/themes", CreateThemeHandler(client, nil))
			app.Get("/themes", ListThemesHandler(client))
			app.Get("/themes/:id", GetThemeHandler(client))
			app.Put("/themes/:id", UpdateThemeHandler(client, nil))
			app.Delete("/themes/:id", DeleteThemeHandler(client, nil))
			app.Post("/themes/:id/copy", CopyThemeHandler(client, nil))
		},
	)
}

func validProps() json.RawMessage {
	b, _ := json.Marshal(themecore.DefaultLight())
	return b
}

type themeJSON struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsPublic    bool           `json:"is_public"`
	Properties  map[string]any `json:"properties"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
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

func TestTheme_Create_Get_Update(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, err := client.User.Create().SetDisplayName("Owner").Save(ctx)
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	app := appFor(client, owner.ID)

	res, body := doJSON(t, app, http.MethodPost, "/themes", map[string]any{
		"name":        "Ocean",
		"description": "blue",
		"properties":  json.RawMessage(validProps()),
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", res.StatusCode, body)
	}
	var created struct{ Data themeJSON }
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := created.Data.ID
	if created.Data.Name != "Ocean" || created.Data.IsPublic {
		t.Fatalf("unexpected created theme: %+v", created.Data)
	}

	res, body = doJSON(t, app, http.MethodGet, "/themes/"+id.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}

	// Partial update keeps absent fields.
	time.Sleep(20 * time.Millisecond)
	res, body = doJSON(t, app, http.MethodPut, "/themes/"+id.String(), map[string]any{"name": "Deep Ocean"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d body=%s", res.StatusCode, body)
	}
	var updated struct{ Data themeJSON }
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Data.Name != "Deep Ocean" {
		t.Fatalf("name not updated: %q", updated.Data.Name)
	}
	if updated.Data.Description != "blue" {
		t.Fatalf("description lost on partial update: %q", updated.Data.Description)
	}
	if !updated.Data.UpdatedAt.After(created.Data.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v -> %v", created.Data.UpdatedAt, updated.Data.UpdatedAt)
	}

	// Empty patch still bumps updated_at.
	time.Sleep(20 * time.Millisecond)
	res, body = doJSON(t, app, http.MethodPut, "/themes/"+id.String(), map[string]any{})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("empty patch status=%d", res.StatusCode)
	}
	var touched struct{ Data themeJSON }
	if err := json.Unmarshal(body, &touched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !touched.Data.UpdatedAt.After(updated.Data.UpdatedAt) {
		t.Fatalf("empty patch did not bump updated_at")
	}
	if touched.Data.Name != "Deep Ocean" || touched.Data.Description != "blue" {
		t.Fatalf("empty patch changed fields: %+v", touched.Data)
	}
}

func TestTheme_Create_InvalidProperties(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	app := appFor(client, owner.ID)

	props := themecore.DefaultLight().AsMap()
	colors := props["colors"].(map[string]any)
	delete(colors, "ring")
	res, body := doJSON(t, app, http.MethodPost, "/themes", map[string]any{"name": "Broken", "properties": props})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", res.StatusCode, body)
	}
	var env struct{ Code string }
	_ = json.Unmarshal(body, &env)
	if env.Code != "E_INVALID_PARAM" {
		t.Fatalf("code=%q", env.Code)
	}

	res, _ = doJSON(t, app, http.MethodPost, "/themes", map[string]any{"name": "", "properties": json.RawMessage(validProps())})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name status=%d", res.StatusCode)
	}
}

func TestTheme_NameLength_CountsRunes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	app := appFor(client, owner.ID)

	// 50 two-byte characters are within the limit even though the byte
	// count is 100.
	wide := strings.Repeat("é", 50)
	res, body := doJSON(t, app, http.MethodPost, "/themes", map[string]any{"name": wide, "properties": json.RawMessage(validProps())})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("50-rune name status=%d body=%s", res.StatusCode, body)
	}

	res, _ = doJSON(t, app, http.MethodPost, "/themes", map[string]any{"name": wide + "é", "properties": json.RawMessage(validProps())})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("51-rune name status=%d", res.StatusCode)
	}

	var created struct{ Data themeJSON }
	_ = json.Unmarshal(body, &created)
	res, _ = doJSON(t, app, http.MethodPut, "/themes/"+created.Data.ID.String(), map[string]any{"name": wide + "é"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("51-rune rename status=%d", res.StatusCode)
	}
}

func TestTheme_CrossUser_NotFound(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)

	th, err := client.Theme.Create().
		SetName("Private").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed theme: %v", err)
	}

	app := appFor(client, other.ID)
	for _, probe := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/themes/" + th.ID.String(), nil},
		{http.MethodPut, "/themes/" + th.ID.String(), map[string]any{"name": "Stolen"}},
		{http.MethodDelete, "/themes/" + th.ID.String(), nil},
	} {
		res, body := doJSON(t, app, probe.method, probe.path, probe.body)
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("%s %s status=%d body=%s", probe.method, probe.path, res.StatusCode, body)
		}
	}

	// Still intact for the owner.
	got, err := client.Theme.Get(ctx, th.ID)
	if err != nil || got.Name != "Private" {
		t.Fatalf("theme damaged by foreign access: %v %v", got, err)
	}
}

func TestTheme_Delete_DetachesConnections(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	th, _ := client.Theme.Create().
		SetName("Doomed").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)
	for i := 0; i < 3; i++ {
		_, err := client.Connection.Create().
			SetEmail(fmt.Sprintf("acct%d@example.com", i)).
			SetOwnerID(owner.ID).
			SetThemeID(th.ID).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed connection: %v", err)
		}
	}

	app := appFor(client, owner.ID)
	res, body := doJSON(t, app, http.MethodDelete, "/themes/"+th.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d body=%s", res.StatusCode, body)
	}

	if _, err := client.Theme.Get(ctx, th.ID); !ent.IsNotFound(err) {
		t.Fatalf("theme still present: %v", err)
	}
	n, err := client.Connection.Query().Where(connection.HasTheme()).Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("connections still attached: n=%d err=%v", n, err)
	}
	total, _ := client.Connection.Query().Count(ctx)
	if total != 3 {
		t.Fatalf("connections deleted along with theme: %d", total)
	}
}

func TestTheme_Copy(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	other, _ := client.User.Create().SetDisplayName("Other").Save(ctx)

	pub, _ := client.Theme.Create().
		SetName("Shared").
		SetDescription("for everyone").
		SetIsPublic(true).
		SetProperties(themecore.DefaultDark().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)
	priv, _ := client.Theme.Create().
		SetName("Secret").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)

	app := appFor(client, other.ID)

	res, body := doJSON(t, app, http.MethodPost, "/themes/"+pub.ID.String()+"/copy", nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("copy status=%d body=%s", res.StatusCode, body)
	}
	var copied struct{ Data themeJSON }
	if err := json.Unmarshal(body, &copied); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if copied.Data.Name != "Shared (Copy)" {
		t.Fatalf("copy name=%q", copied.Data.Name)
	}
	if copied.Data.IsPublic {
		t.Fatalf("copy must be private")
	}
	if copied.Data.ID == pub.ID {
		t.Fatalf("copy reused source id")
	}

	// The copy owns its properties; mutating it leaves the source alone.
	_, err := client.Theme.UpdateOneID(copied.Data.ID).
		SetProperties(themecore.DefaultLight().AsMap()).
		Save(ctx)
	if err != nil {
		t.Fatalf("mutate copy: %v", err)
	}
	src, _ := client.Theme.Get(ctx, pub.ID)
	srcColors := src.Properties["colors"].(map[string]any)
	if srcColors["background"] != "#0f172a" {
		t.Fatalf("source mutated through copy: %v", srcColors["background"])
	}

	// Private themes cannot be copied, whoever owns them. The owner
	// shares by publishing, not by self-copy.
	res, _ = doJSON(t, app, http.MethodPost, "/themes/"+priv.ID.String()+"/copy", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("private copy status=%d", res.StatusCode)
	}
	ownerApp := appFor(client, owner.ID)
	res, _ = doJSON(t, ownerApp, http.MethodPost, "/themes/"+priv.ID.String()+"/copy", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("own private copy status=%d", res.StatusCode)
	}
}

func TestTheme_ListPublic_CursorWalk(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	reader, _ := client.User.Create().SetDisplayName("Reader").Save(ctx)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 5; i++ {
		_, err := client.Theme.Create().
			SetName(fmt.Sprintf("Pub %d", i)).
			SetIsPublic(true).
			SetProperties(themecore.DefaultLight().AsMap()).
			SetUpdatedAt(base.Add(time.Duration(i) * time.Minute)).
			SetOwnerID(owner.ID).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	// A private theme must never leak into the marketplace.
	_, _ = client.Theme.Create().
		SetName("Hidden").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)

	app := appFor(client, reader.ID)

	type listEnv struct {
		Data []themeJSON
		Meta struct {
			Count      int    `json:"count"`
			HasMore    bool   `json:"has_more"`
			NextCursor string `json:"next_cursor"`
			Mode       string `json:"mode"`
		}
	}

	seen := map[uuid.UUID]bool{}
	var names []string
	cursor := ""
	pages := 0
	for {
		path := "/themes/public?limit=2"
		if cursor != "" {
			path += "&cursor=" + cursor
		}
		res, body := doJSON(t, app, http.MethodGet, path, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("page %d status=%d body=%s", pages, res.StatusCode, body)
		}
		var env listEnv
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Meta.Mode != "cursor" {
			t.Fatalf("mode=%q", env.Meta.Mode)
		}
		for _, item := range env.Data {
			if seen[item.ID] {
				t.Fatalf("duplicate row %s across pages", item.ID)
			}
			seen[item.ID] = true
			names = append(names, item.Name)
		}
		pages++
		if !env.Meta.HasMore {
			if env.Meta.NextCursor != "" {
				t.Fatalf("final page still has next_cursor")
			}
			break
		}
		if env.Meta.NextCursor == "" {
			t.Fatalf("has_more without next_cursor")
		}
		cursor = env.Meta.NextCursor
	}

	if pages != 3 || len(names) != 5 {
		t.Fatalf("pages=%d rows=%d", pages, len(names))
	}
	// Most recently updated first.
	want := []string{"Pub 4", "Pub 3", "Pub 2", "Pub 1", "Pub 0"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("order mismatch at %d: got %v", i, names)
		}
	}

	res, _ := doJSON(t, app, http.MethodGet, "/themes/public?cursor=not-a-cursor", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("garbage cursor status=%d", res.StatusCode)
	}
}

func TestTheme_GetPublic(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	owner, _ := client.User.Create().SetDisplayName("Owner").Save(ctx)
	reader, _ := client.User.Create().SetDisplayName("Reader").Save(ctx)
	pub, _ := client.Theme.Create().
		SetName("Shared").
		SetIsPublic(true).
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)
	priv, _ := client.Theme.Create().
		SetName("Secret").
		SetProperties(themecore.DefaultLight().AsMap()).
		SetOwnerID(owner.ID).
		Save(ctx)

	app := appFor(client, reader.ID)
	res, _ := doJSON(t, app, http.MethodGet, "/themes/public/"+pub.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("public get status=%d", res.StatusCode)
	}
	res, _ = doJSON(t, app, http.MethodGet, "/themes/public/"+priv.ID.String(), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("private via public route status=%d", res.StatusCode)
	}
}

func TestTheme_Defaults(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, _ := client.User.Create().SetDisplayName("U").Save(ctx)
	app := appFor(client, u.ID)

	res, body := doJSON(t, app, http.MethodGet, "/themes/defaults", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data map[string]themecore.Properties
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["light"].Colors.Background != "#ffffff" {
		t.Fatalf("light background=%q", env.Data["light"].Colors.Background)
	}
	if env.Data["dark"].Colors.Background != "#0f172a" {
		t.Fatalf("dark background=%q", env.Data["dark"].Colors.Background)
	}
}
