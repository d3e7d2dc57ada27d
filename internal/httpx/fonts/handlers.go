// Package fonts serves the curated font list for the theme editor.
package fonts

import (
	"github.com/gofiber/fiber/v2"

	"mailtheme-api/internal/httpx/kit"
	"mailtheme-api/internal/httpx/mw"
)

// Font is one selectable font family.
type Font struct {
	Family string `json:"family"`
}

// Curated subset of popular Google Fonts. Kept static so the editor
// works without an upstream API key.
var popularFonts = []Font{
	{Family: "Roboto"},
	{Family: "Open Sans"},
	{Family: "Lato"},
	{Family: "Montserrat"},
	{Family: "Roboto Condensed"},
	{Family: "Source Sans Pro"},
	{Family: "Oswald"},
	{Family: "Raleway"},
	{Family: "Ubuntu"},
	{Family: "Merriweather"},
	{Family: "Playfair Display"},
	{Family: "Poppins"},
	{Family: "Nunito"},
	{Family: "Rubik"},
	{Family: "Work Sans"},
	{Family: "PT Sans"},
	{Family: "Noto Sans"},
	{Family: "Inter"},
	{Family: "Quicksand"},
	{Family: "Fira Sans"},
	{Family: "Mulish"},
	{Family: "Nunito Sans"},
	{Family: "Cabin"},
	{Family: "Karla"},
	{Family: "Josefin Sans"},
	{Family: "DM Sans"},
	{Family: "Arimo"},
	{Family: "Barlow"},
	{Family: "Libre Franklin"},
	{Family: "Manrope"},
}

// ListFontsHandler returns the selectable font families.
//
//	@Summary      List fonts
//	@Description  Returns the curated font families for the theme editor
//	@Tags         fonts
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/fonts [get]
func ListFontsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ac, _ := c.Locals("auth").(*mw.AuthContext); ac == nil || ac.Kind != "user" {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, popularFonts)
	}
}
