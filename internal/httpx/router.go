// Package httpx wires the HTTP surface: route registration, common
// middleware, and the health endpoint.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"mailtheme-api/ent"
	"mailtheme-api/internal/config"
	"mailtheme-api/internal/esx"
	"mailtheme-api/internal/httpx/auth"
	"mailtheme-api/internal/httpx/connections"
	"mailtheme-api/internal/httpx/fonts"
	"mailtheme-api/internal/httpx/mw"
	"mailtheme-api/internal/httpx/settings"
	"mailtheme-api/internal/httpx/themes"
	"mailtheme-api/internal/mqx"
	"mailtheme-api/internal/redisx"
)

// Providers carries the optional infrastructure dependencies routes can
// use. Any member may be nil; the affected feature degrades quietly.
type Providers struct {
	Cfg *config.Config
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// Register mounts all API routes. When a config is present a JWT
// middleware is installed; tests inject auth context themselves and
// pass no providers.
func Register(app *fiber.App, client *ent.Client, providers ...*Providers) {
	var p *Providers
	if len(providers) > 0 {
		p = providers[0]
	}

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/v1")
	if p != nil && p.Cfg != nil {
		cfg := p.Cfg
		api.Use(mw.JWTMiddleware(func(token string) (string, string, []string, error) {
			claims, err := auth.ParseAndValidate(cfg, token)
			if err != nil {
				return "", "", nil, err
			}
			return claims.Subject, claims.Kind, claims.Roles, nil
		}))
	}
	api.Use(mw.RequireUser())

	windowSec, max := 60, 60
	var rdb *redisx.Client
	if p != nil {
		rdb = p.RDB
		if p.Cfg != nil {
			windowSec = p.Cfg.RateLimit.WindowSec
			max = p.Cfg.RateLimit.Max
		}
	}
	listLimiter := mw.RateLimitPerUser(rdb, windowSec, max)

	dep := &themes.Deps{}
	if p != nil {
		dep.MQ = p.MQ
		dep.ES = p.ES
		if p.Cfg != nil {
			dep.ESIndex = p.Cfg.ES.Index
		}
	}

	// Fixed segments before the :id wildcard.
	api.Get("/themes/defaults", themes.GetDefaultThemesHandler())
	api.Get("/themes/public/search", listLimiter, themes.SearchPublicThemesHandler(dep))
	api.Get("/themes/public/:id", themes.GetPublicThemeHandler(client))
	api.Get("/themes/public", listLimiter, themes.ListPublicThemesHandler(client))

	api.Post("/themes", themes.CreateThemeHandler(client, dep))
	api.Get("/themes", listLimiter, themes.ListThemesHandler(client))
	api.Get("/themes/:id", themes.GetThemeHandler(client))
	api.Put("/themes/:id", themes.UpdateThemeHandler(client, dep))
	api.Delete("/themes/:id", themes.DeleteThemeHandler(client, dep))
	api.Post("/themes/:id/copy", themes.CopyThemeHandler(client, dep))

	api.Get("/connections", listLimiter, connections.ListConnectionsHandler(client))
	api.Put("/connections/:id/theme", connections.SetThemeHandler(client))
	api.Put("/connections/:id/default", connections.SetDefaultHandler(client))
	api.Delete("/connections/:id", connections.DeleteConnectionHandler(client))

	api.Get("/settings", settings.GetSettingsHandler(client))
	api.Put("/settings/account-order", settings.SetAccountOrderHandler(client))

	api.Get("/fonts", fonts.ListFontsHandler())
}
