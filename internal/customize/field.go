package customize

import (
	"encoding/json"

	"craftpress/internal/domain"
)

// Alignment vocabulary for design elements.
const (
	AlignCenter      = "center"
	AlignTopLeft     = "top-left"
	AlignTopRight    = "top-right"
	AlignBottomLeft  = "bottom-left"
	AlignBottomRight = "bottom-right"
)

// TextConfig is the config shape for text_input fields.
type TextConfig struct {
	Placeholder   string `json:"placeholder"`
	MaxLength     int    `json:"maxLength"`
	ShowCharCount bool   `json:"showCharCount"`
	DefaultValue  string `json:"defaultValue"`
	Alignment     string `json:"alignment"`
}

// SelectConfig is the config shape for image_select and color_select
// fields.
type SelectConfig struct {
	Columns   int    `json:"columns"`
	Multiple  bool   `json:"multiple"`
	MinSelect int    `json:"minSelect"`
	MaxSelect int    `json:"maxSelect"`
	Alignment string `json:"alignment"`
}

// NumberConfig is the config shape for number_input fields.
type NumberConfig struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

// ParseTextConfig decodes a text_input config from its stored JSON.
func ParseTextConfig(f domain.TemplateField) TextConfig {
	var c TextConfig
	if f.ConfigJSON != "" {
		_ = json.Unmarshal([]byte(f.ConfigJSON), &c)
	}
	return c
}

// ParseSelectConfig decodes a select config, applying the catalog
// defaults (5 columns, single select).
func ParseSelectConfig(f domain.TemplateField) SelectConfig {
	c := SelectConfig{Columns: 5, MaxSelect: 1}
	if f.ConfigJSON != "" {
		_ = json.Unmarshal([]byte(f.ConfigJSON), &c)
	}
	if c.Columns <= 0 {
		c.Columns = 5
	}
	if c.MaxSelect <= 0 {
		c.MaxSelect = 1
	}
	return c
}

// ParseNumberConfig decodes a number_input config, applying the
// catalog defaults (min 1, max 10, step 1).
func ParseNumberConfig(f domain.TemplateField) NumberConfig {
	c := NumberConfig{Min: 1, Max: 10, Step: 1}
	raw := map[string]json.RawMessage{}
	if f.ConfigJSON != "" {
		_ = json.Unmarshal([]byte(f.ConfigJSON), &raw)
	}
	num := func(key string, dst *float64) {
		if b, ok := raw[key]; ok {
			var v float64
			if json.Unmarshal(b, &v) == nil {
				*dst = v
			}
		}
	}
	num("min", &c.Min)
	num("max", &c.Max)
	num("default", &c.Default)
	num("step", &c.Step)
	if c.Step <= 0 {
		c.Step = 1
	}
	return c
}

// fieldAlignment reads the optional alignment tag out of any field
// config, defaulting to center.
func fieldAlignment(f domain.TemplateField) string {
	var c struct {
		Alignment string `json:"alignment"`
	}
	if f.ConfigJSON != "" {
		_ = json.Unmarshal([]byte(f.ConfigJSON), &c)
	}
	if c.Alignment == "" {
		return AlignCenter
	}
	return c.Alignment
}
