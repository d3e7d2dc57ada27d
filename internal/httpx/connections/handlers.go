// Package connections provides HTTP handlers for mail connections and
// their attached themes.
package connections

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"mailtheme-api/ent"
	"mailtheme-api/ent/connection"
	"mailtheme-api/ent/settings"
	"mailtheme-api/ent/theme"
	"mailtheme-api/ent/user"
	"mailtheme-api/internal/httpx/kit"
	"mailtheme-api/internal/httpx/mw"
	themecore "mailtheme-api/internal/theme"
)

// SetThemeRequest attaches a theme to a connection. A null theme_id
// detaches the current theme.
// swagger:model SetThemeRequest
type SetThemeRequest struct {
	ThemeID *uuid.UUID `json:"theme_id"`
}

// ConnectionView is the list representation of a connection.
type ConnectionView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Picture   string     `json:"picture,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ThemeID   *uuid.UUID `json:"theme_id"`
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

func connIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, kit.BadRequest("invalid connection id", c.Params("id"))
	}
	return id, nil
}

// ListConnectionsHandler lists the current user's connections in the
// user's preferred account order. Accounts not mentioned in the order
// preference keep their relative position after the ranked ones.
//
//	@Summary      List connections
//	@Description  Returns the current user's mail connections in preferred order
//	@Tags         connections
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/connections [get]
func ListConnectionsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		rows, err := client.Connection.Query().
			Where(connection.HasOwnerWith(user.IDEQ(uid))).
			WithTheme().
			Order(ent.Asc(connection.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query connections failed", err.Error())
		}

		views := lo.Map(rows, func(r *ent.Connection, _ int) ConnectionView {
			v := ConnectionView{ID: r.ID, Email: r.Email, Name: r.Name, Picture: r.Picture, CreatedAt: r.CreatedAt}
			if r.Edges.Theme != nil {
				v.ThemeID = lo.ToPtr(r.Edges.Theme.ID)
			}
			return v
		})

		order := accountOrder(ctx, client, uid)
		views = themecore.ApplyOrder(views, func(v ConnectionView) string { return v.ID.String() }, order)
		return kit.OK(c, fiber.Map{"connections": views})
	}
}

func accountOrder(ctx context.Context, client *ent.Client, uid uuid.UUID) []string {
	s, err := client.Settings.Query().Where(settings.HasUserWith(user.IDEQ(uid))).Only(ctx)
	if err != nil {
		return nil
	}
	return s.AccountOrder
}

// SetThemeHandler attaches or detaches a theme on a connection. Both
// sides must belong to the caller; a public theme owned by someone
// else still reads as not found.
//
//	@Summary      Set connection theme
//	@Description  Attach a theme to a connection, or detach with a null theme_id
//	@Tags         connections
//	@Accept       json
//	@Produce      json
//	@Param        id    path  string                         true  "connection id"
//	@Param        body  body  connections.SetThemeRequest    true  "theme to attach"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/connections/{id}/theme [put]
func SetThemeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := connIDParam(c)
		if err != nil {
			return err
		}
		var req SetThemeRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		owned, err := client.Connection.Query().
			Where(connection.IDEQ(id), connection.HasOwnerWith(user.IDEQ(uid))).
			Exist(ctx)
		if err != nil {
			return kit.InternalError("query connection failed", err.Error())
		}
		if !owned {
			return kit.NotFound("connection not found")
		}

		upd := client.Connection.UpdateOneID(id)
		if req.ThemeID == nil {
			upd = upd.ClearTheme()
		} else {
			themeOwned, err := client.Theme.Query().
				Where(theme.IDEQ(*req.ThemeID), theme.HasOwnerWith(user.IDEQ(uid))).
				Exist(ctx)
			if err != nil {
				return kit.InternalError("query theme failed", err.Error())
			}
			if !themeOwned {
				return kit.NotFound("theme not found")
			}
			upd = upd.SetThemeID(*req.ThemeID)
		}
		if _, err := upd.Save(ctx); err != nil {
			return kit.InternalError("update connection failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"success": true})
	}
}

// SetDefaultHandler marks a connection as the user's default.
//
//	@Summary      Set default connection
//	@Description  Marks an owned connection as the user's default
//	@Tags         connections
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "connection id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/connections/{id}/default [put]
func SetDefaultHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := connIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		owned, err := client.Connection.Query().
			Where(connection.IDEQ(id), connection.HasOwnerWith(user.IDEQ(uid))).
			Exist(ctx)
		if err != nil {
			return kit.InternalError("query connection failed", err.Error())
		}
		if !owned {
			return kit.NotFound("connection not found")
		}
		if err := client.User.UpdateOneID(uid).SetDefaultConnectionID(id).Exec(ctx); err != nil {
			return kit.InternalError("set default failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"success": true})
	}
}

// DeleteConnectionHandler removes an owned connection. If it was the
// user's default, the default is cleared in the same transaction.
//
//	@Summary      Delete connection
//	@Description  Delete a connection (owner only)
//	@Tags         connections
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "connection id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/connections/{id} [delete]
func DeleteConnectionHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := connIDParam(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		tx, err := client.Tx(ctx)
		if err != nil {
			return kit.InternalError("begin tx failed", err.Error())
		}
		owned, err := tx.Connection.Query().
			Where(connection.IDEQ(id), connection.HasOwnerWith(user.IDEQ(uid))).
			Exist(ctx)
		if err != nil {
			_ = tx.Rollback()
			return kit.InternalError("query connection failed", err.Error())
		}
		if !owned {
			_ = tx.Rollback()
			return kit.NotFound("connection not found")
		}
		if err := tx.Connection.DeleteOneID(id).Exec(ctx); err != nil {
			_ = tx.Rollback()
			return kit.InternalError("delete connection failed", err.Error())
		}
		u, err := tx.User.Get(ctx, uid)
		if err != nil {
			_ = tx.Rollback()
			return kit.InternalError("query user failed", err.Error())
		}
		if u.DefaultConnectionID != nil && *u.DefaultConnectionID == id {
			if err := tx.User.UpdateOneID(uid).ClearDefaultConnectionID().Exec(ctx); err != nil {
				_ = tx.Rollback()
				return kit.InternalError("clear default failed", err.Error())
			}
		}
		if err := tx.Commit(); err != nil {
			return kit.InternalError("commit failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"deleted": id})
	}
}
