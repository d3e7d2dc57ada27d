// Package themes provides HTTP handlers for theme management and the
// public theme marketplace.
package themes

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailtheme-api/ent"
	"mailtheme-api/ent/connection"
	"mailtheme-api/ent/theme"
	"mailtheme-api/ent/user"
	"mailtheme-api/internal/esx"
	"mailtheme-api/internal/httpx/kit"
	"mailtheme-api/internal/httpx/mw"
	"mailtheme-api/internal/logx"
	"mailtheme-api/internal/mqx"
	themecore "mailtheme-api/internal/theme"
)

// Deps carries the optional side-channel dependencies of the theme
// handlers. Any of them may be nil; publishing and indexing then
// become no-ops.
type Deps struct {
	MQ      mqx.Publisher
	ES      *esx.Client
	ESIndex string
}

func (d *Deps) publish(key string, payload any) {
	if d == nil || d.MQ == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	b, _ := json.Marshal(payload)
	if err := d.MQ.Publish(ctx, key, b); err != nil {
		logx.GetScope("themes").Sugar().Warnf("publish %s failed: %v", key, err)
	}
}

// syncSearchDoc keeps the marketplace search index in step with a
// theme's visibility: public themes are upserted, private ones removed.
func (d *Deps) syncSearchDoc(t *ent.Theme, ownerID uuid.UUID) {
	if d == nil || d.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var err error
	if t.IsPublic {
		err = esx.IndexTheme(ctx, d.ES, d.ESIndex, esx.ThemeDoc{
			ID:          t.ID.String(),
			Name:        t.Name,
			Description: t.Description,
			OwnerID:     ownerID.String(),
			UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
		})
	} else {
		err = esx.DeleteTheme(ctx, d.ES, d.ESIndex, t.ID.String())
	}
	if err != nil {
		logx.GetScope("themes").Sugar().Warnf("search sync for theme %s failed: %v", t.ID, err)
	}
}

func (d *Deps) dropSearchDoc(id uuid.UUID) {
	if d == nil || d.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := esx.DeleteTheme(ctx, d.ES, d.ESIndex, id.String()); err != nil {
		logx.GetScope("themes").Sugar().Warnf("search delete for theme %s failed: %v", id, err)
	}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ac, _ := c.Locals("auth").(*mw.AuthContext)
	if ac == nil || ac.Kind != "user" || !strings.HasPrefix(ac.Subject, "user:") {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	uid, err := uuid.Parse(strings.TrimPrefix(ac.Subject, "user:"))
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

func themeIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, kit.BadRequest("invalid theme id", c.Params("id"))
	}
	return id, nil
}

// CreateThemeHandler creates a theme owned by the current user.
//
//	@Summary      Create theme
//	@Description  Create a theme owned by the current user
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        body  body  themes.CreateThemeRequest  true  "theme payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/themes [post]
func CreateThemeHandler(client *ent.Client, dep *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}

		var req CreateThemeRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || utf8.RuneCountInString(req.Name) > 50 {
			return kit.BadRequest("name must be 1-50 characters", nil)
		}
		if len(req.Properties) == 0 {
			return kit.BadRequest("properties required", nil)
		}
		props, err := themecore.ValidateProperties(req.Properties)
		if err != nil {
			return kit.BadRequest(err.Error(), nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		created, err := client.Theme.Create().
			SetName(req.Name).
			SetDescription(req.Description).
			SetIsPublic(req.IsPublic).
			SetProperties(props.AsMap()).
			SetOwnerID(uid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("create theme failed", err.Error())
		}

		if created.IsPublic {
			dep.publish("theme.published", fiber.Map{"theme_id": created.ID, "owner_id": uid})
			dep.syncSearchDoc(created, uid)
		}
		return kit.Created(c, created)
	}
}

// ListThemesHandler lists themes owned by the current user, most
// recently updated first.
//
//	@Summary      List my themes
//	@Description  Returns themes owned by the current user
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Param        sort    query  string  false  "sort spec, e.g. name:asc"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/themes [get]
func ListThemesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.Theme.Query().Where(theme.HasOwnerWith(user.IDEQ(uid)))
		if s := c.Query("sort", ""); s != "" {
			if q, err = kit.ApplyThemeSort(q, s); err != nil {
				return err
			}
		} else {
			q = q.Order(ent.Desc(theme.FieldUpdatedAt))
		}
		items, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return kit.InternalError("query themes failed", err.Error())
		}

		nextOff := pg.Offset + len(items)
		meta := kit.PageMeta{Limit: pg.Limit, Offset: pg.Offset, Count: len(items), NextOffset: &nextOff, HasMore: len(items) == pg.Limit, Mode: "offset"}
		return kit.List(c, items, meta)
	}
}

// GetThemeHandler returns one theme owned by the current user. A theme
// that exists but belongs to someone else reads as not found.
//
//	@Summary      Get theme
//	@Description  Returns a theme owned by the current user
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "theme id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/themes/{id} [get]
func GetThemeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := themeIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		t, err := client.Theme.Query().Where(theme.IDEQ(id), theme.HasOwnerWith(user.IDEQ(uid))).Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("theme not found")
		}
		if err != nil {
			return kit.InternalError("query theme failed", err.Error())
		}
		return kit.OK(c, t)
	}
}

// UpdateThemeHandler partially updates an owned theme. Fields absent
// from the body keep their prior value; updated_at always advances,
// even for an empty patch.
//
//	@Summary      Update theme
//	@Description  Partially update a theme (owner only)
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        id    path  string                     true  "theme id"
//	@Param        body  body  themes.UpdateThemeRequest  true  "fields to update"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/themes/{id} [put]
func UpdateThemeHandler(client *ent.Client, dep *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := themeIDParam(c)
		if err != nil {
			return err
		}

		var req UpdateThemeRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Name != nil {
			n := strings.TrimSpace(*req.Name)
			if n == "" || utf8.RuneCountInString(n) > 50 {
				return kit.BadRequest("name must be 1-50 characters", nil)
			}
			req.Name = &n
		}
		var props *themecore.Properties
		if len(req.Properties) > 0 {
			p, err := themecore.ValidateProperties(req.Properties)
			if err != nil {
				return kit.BadRequest(err.Error(), nil)
			}
			props = &p
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := client.Theme.Query().Where(theme.IDEQ(id), theme.HasOwnerWith(user.IDEQ(uid))).Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("theme not found")
		}
		if err != nil {
			return kit.InternalError("query theme failed", err.Error())
		}

		upd := client.Theme.UpdateOneID(id).SetUpdatedAt(time.Now())
		if req.Name != nil {
			upd = upd.SetName(*req.Name)
		}
		if req.Description != nil {
			upd = upd.SetDescription(*req.Description)
		}
		if props != nil {
			upd = upd.SetProperties(props.AsMap())
		}
		if req.IsPublic != nil {
			upd = upd.SetIsPublic(*req.IsPublic)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return kit.InternalError("update theme failed", err.Error())
		}

		if updated.IsPublic && !existing.IsPublic {
			dep.publish("theme.published", fiber.Map{"theme_id": updated.ID, "owner_id": uid})
		}
		if updated.IsPublic || existing.IsPublic {
			dep.syncSearchDoc(updated, uid)
		}
		return kit.OK(c, updated)
	}
}

// DeleteThemeHandler deletes an owned theme. Connections pointing at
// the theme are detached in the same transaction so they fall back to
// the default appearance instead of dangling.
//
//	@Summary      Delete theme
//	@Description  Delete a theme (owner only); detaches it from all connections
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "theme id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/themes/{id} [delete]
func DeleteThemeHandler(client *ent.Client, dep *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := themeIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		owned, err := tx.Theme.Query().Where(theme.IDEQ(id), theme.HasOwnerWith(user.IDEQ(uid))).Exist(ctx)
		if err != nil {
			_ = tx.Rollback()
			return kit.InternalError("query theme failed", err.Error())
		}
		if !owned {
			_ = tx.Rollback()
			return kit.NotFound("theme not found")
		}
		if _, err := tx.Connection.Update().Where(connection.HasThemeWith(theme.IDEQ(id))).ClearTheme().Save(ctx); err != nil {
			_ = tx.Rollback()
			return kit.InternalError("detach connections failed", err.Error())
		}
		if err := tx.Theme.DeleteOneID(id).Exec(ctx); err != nil {
			_ = tx.Rollback()
			return kit.InternalError("delete theme failed", err.Error())
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}

		dep.publish("theme.deleted", fiber.Map{"theme_id": id, "owner_id": uid})
		dep.dropSearchDoc(id)
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}

// CopyThemeHandler clones a theme into the current user's collection.
// The source must be public; a private source reads as not found even
// for its owner. The copy is always private and gets a fresh identity
// and timestamps.
//
//	@Summary      Copy theme
//	@Description  Copy a public theme into the caller's collection
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "source theme id"
//	@Success      201  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/themes/{id}/copy [post]
func CopyThemeHandler(client *ent.Client, dep *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := themeIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		src, err := client.Theme.Query().
			Where(theme.IDEQ(id), theme.IsPublic(true)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("theme not found")
		}
		if err != nil {
			return kit.InternalError("query theme failed", err.Error())
		}

		copied, err := client.Theme.Create().
			SetName(src.Name + " (Copy)").
			SetDescription(src.Description).
			SetIsPublic(false).
			SetProperties(themecore.FromMap(src.Properties).AsMap()).
			SetOwnerID(uid).
			Save(ctx)
		if err != nil {
			return kit.InternalError("copy theme failed", err.Error())
		}

		dep.publish("theme.copied", fiber.Map{"source_id": src.ID, "theme_id": copied.ID, "owner_id": uid})
		return kit.Created(c, copied)
	}
}

// ListPublicThemesHandler pages through the marketplace with a keyset
// cursor over (updated_at, id) descending. One extra row is fetched to
// decide has_more; the cursor encodes the last row of the page.
//
//	@Summary      List public themes
//	@Description  Marketplace listing with cursor pagination
//	@Tags         marketplace
//	@Accept       json
//	@Produce      json
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        cursor  query  string  false  "opaque cursor from a previous page"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/themes/public [get]
func ListPublicThemesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := currentUserID(c); err != nil {
			return err
		}

		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.Theme.Query().Where(theme.IsPublic(true))
		if pg.Cursor != nil {
			cur := pg.Cursor
			q = q.Where(theme.Or(
				theme.UpdatedAtLT(cur.TS),
				theme.And(theme.UpdatedAtEQ(cur.TS), theme.IDLT(cur.ID)),
			))
		}
		rows, err := q.
			Order(ent.Desc(theme.FieldUpdatedAt), ent.Desc(theme.FieldID)).
			Limit(pg.Limit + 1).
			All(ctx)
		if err != nil {
			return kit.InternalError("query public themes failed", err.Error())
		}

		hasMore := len(rows) > pg.Limit
		if hasMore {
			rows = rows[:pg.Limit]
		}
		meta := kit.PageMeta{Limit: pg.Limit, Count: len(rows), HasMore: hasMore, Mode: "cursor"}
		if hasMore {
			last := rows[len(rows)-1]
			meta.NextCursor = kit.EncodeCursor(last.ID, last.UpdatedAt)
		}
		return kit.List(c, rows, meta)
	}
}

// GetPublicThemeHandler returns a single public theme by id.
//
//	@Summary      Get public theme
//	@Description  Returns a public theme regardless of owner
//	@Tags         marketplace
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "theme id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/themes/public/{id} [get]
func GetPublicThemeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := currentUserID(c); err != nil {
			return err
		}
		id, err := themeIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		t, err := client.Theme.Query().Where(theme.IDEQ(id), theme.IsPublic(true)).Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("theme not found")
		}
		if err != nil {
			return kit.InternalError("query theme failed", err.Error())
		}
		return kit.OK(c, t)
	}
}

// SearchPublicThemesHandler searches the marketplace by name and
// description through Elasticsearch.
//
//	@Summary      Search public themes
//	@Description  Full-text search over public theme names and descriptions
//	@Tags         marketplace
//	@Accept       json
//	@Produce      json
//	@Param        q       query  string  true   "search query"
//	@Param        limit   query  int     false  "page size"  default(20)
//	@Param        offset  query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/themes/public/search [get]
func SearchPublicThemesHandler(dep *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := currentUserID(c); err != nil {
			return err
		}
		query := strings.TrimSpace(c.Query("q", ""))
		if query == "" {
			return kit.BadRequest("q required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		var es *esx.Client
		index := ""
		if dep != nil {
			es = dep.ES
			index = dep.ESIndex
		}
		out, err := esx.SearchThemes(ctx, es, index, query, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}

// GetDefaultThemesHandler returns the built-in light and dark
// appearances. These are not stored rows; clients use them as the
// fallback when no theme is attached and as editor starting points.
//
//	@Summary      Default themes
//	@Description  Returns the built-in light and dark theme properties
//	@Tags         themes
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/themes/defaults [get]
func GetDefaultThemesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := currentUserID(c); err != nil {
			return err
		}
		return kit.OK(c, fiber.Map{
			"light": themecore.DefaultLight(),
			"dark":  themecore.DefaultDark(),
		})
	}
}
