package kit

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CursorPayload is the decoded marketplace cursor: the (updated_at, id)
// pair of the last row the client saw. Value-based, so concurrent
// inserts or deletes between pages cannot skip or duplicate rows.
type CursorPayload struct {
	ID uuid.UUID `json:"id"`
	TS time.Time `json:"ts"`
}

// PagingParams contains pagination parameters from an HTTP request.
type PagingParams struct {
	Limit  int
	Offset int
	Cursor *CursorPayload
	// Mode: offset | cursor
	Mode string
	// Whether to compute total count (offset mode only)
	WithTotal bool
}

// ParsePaging reads limit/offset/cursor query parameters. Limit is
// clamped to [1,100] with a default of 20.
func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{Limit: lo.Clamp(c.QueryInt("limit", 20), 1, 100), Mode: "offset"}
	p.Offset = c.QueryInt("offset", 0)
	p.WithTotal = c.Query("with_total", "false") == "true"

	if raw := c.Query("cursor", ""); raw != "" {
		payload, err := DecodeCursor(raw)
		if err != nil {
			return p, BadRequest("invalid cursor", raw)
		}
		p.Mode = "cursor"
		p.Cursor = &payload
	}
	return p, nil
}

// EncodeCursor packs a row position into an opaque token.
func EncodeCursor(id uuid.UUID, ts time.Time) string {
	payload := CursorPayload{ID: id, TS: ts.UTC()}
	b, _ := json.Marshal(payload)
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor unpacks a token produced by EncodeCursor.
func DecodeCursor(s string) (CursorPayload, error) {
	var out CursorPayload
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, &out); err == nil && out.ID != uuid.Nil {
			out.TS = out.TS.UTC()
			return out, nil
		}
	}
	return out, fiber.NewError(fiber.StatusBadRequest, "invalid cursor")
}
