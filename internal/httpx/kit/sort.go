package kit

import (
	"strings"

	"github.com/samber/lo"

	"mailtheme-api/ent"
	"mailtheme-api/ent/theme"
)

type themeSortApplier struct {
	Asc  func(*ent.ThemeQuery) *ent.ThemeQuery
	Desc func(*ent.ThemeQuery) *ent.ThemeQuery
}

// ThemeSortWhitelist defines allowed sort fields for theme listings.
var ThemeSortWhitelist = map[string]themeSortApplier{
	"updated_at": {Asc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Asc(theme.FieldUpdatedAt)) }, Desc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Desc(theme.FieldUpdatedAt)) }},
	"created_at": {Asc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Asc(theme.FieldCreatedAt)) }, Desc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Desc(theme.FieldCreatedAt)) }},
	"name":       {Asc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Asc(theme.FieldName)) }, Desc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Desc(theme.FieldName)) }},
	"id":         {Asc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Asc(theme.FieldID)) }, Desc: func(q *ent.ThemeQuery) *ent.ThemeQuery { return q.Order(ent.Desc(theme.FieldID)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyThemeSort applies a validated sort spec to an ent ThemeQuery.
func ApplyThemeSort(q *ent.ThemeQuery, s string) (*ent.ThemeQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := ThemeSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
