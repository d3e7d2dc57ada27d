// Package settings provides HTTP handlers for per-user client settings,
// currently the account ordering preference.
package settings

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailtheme-api/ent"
	"mailtheme-api/ent/settings"
	"mailtheme-api/ent/user"
	"mailtheme-api/internal/httpx/kit"
	"mailtheme-api/internal/httpx/mw"
)

// SetAccountOrderRequest replaces the user's account order preference.
// The list is stored verbatim; ids that no longer resolve to a
// connection are simply ignored at read time.
// swagger:model SetAccountOrderRequest
type SetAccountOrderRequest struct {
	AccountOrder []string `json:"account_order"`
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

// GetSettingsHandler returns the current user's settings. Users who
// never saved anything get the zero-value settings, not a 404.
//
//	@Summary      Get settings
//	@Description  Returns the current user's client settings
//	@Tags         settings
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/settings [get]
func GetSettingsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		s, err := client.Settings.Query().Where(settings.HasUserWith(user.IDEQ(uid))).Only(ctx)
		if ent.IsNotFound(err) {
			return kit.OK(c, fiber.Map{"account_order": []string{}})
		}
		if err != nil {
			return kit.InternalError("query settings failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"account_order": s.AccountOrder, "updated_at": s.UpdatedAt})
	}
}

// SetAccountOrderHandler upserts the account order preference. Writes
// are last-write-wins; there is no read-modify-write cycle to race.
//
//	@Summary      Set account order
//	@Description  Replaces the user's account ordering preference verbatim
//	@Tags         settings
//	@Accept       json
//	@Produce      json
//	@Param        body  body  settings.SetAccountOrderRequest  true  "ordered connection ids"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/settings/account-order [put]
func SetAccountOrderHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req SetAccountOrderRequest
		if err := c.BodyParser(&req); err != nil || req.AccountOrder == nil {
			return kit.BadRequest("account_order required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := client.Settings.Query().Where(settings.HasUserWith(user.IDEQ(uid))).Only(ctx)
		switch {
		case ent.IsNotFound(err):
			created, err := client.Settings.Create().
				SetAccountOrder(req.AccountOrder).
				SetUserID(uid).
				Save(ctx)
			if err != nil {
				return kit.InternalError("save settings failed", err.Error())
			}
			return kit.OK(c, fiber.Map{"account_order": created.AccountOrder, "updated_at": created.UpdatedAt})
		case err != nil:
			return kit.InternalError("query settings failed", err.Error())
		}

		updated, err := client.Settings.UpdateOneID(existing.ID).
			SetAccountOrder(req.AccountOrder).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return kit.InternalError("save settings failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"account_order": updated.AccountOrder, "updated_at": updated.UpdatedAt})
	}
}
