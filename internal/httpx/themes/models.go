package themes

import "encoding/json"

// CreateThemeRequest is the request body for creating a theme
// swagger:model CreateThemeRequest
type CreateThemeRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Properties  json.RawMessage `json:"properties"`
	IsPublic    bool            `json:"is_public"`
}

// UpdateThemeRequest is the request body for a partial theme update.
// Absent fields keep their prior value; properties replace wholesale.
// swagger:model UpdateThemeRequest
type UpdateThemeRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	IsPublic    *bool           `json:"is_public,omitempty"`
}
