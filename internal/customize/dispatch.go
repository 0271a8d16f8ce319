package customize

import (
	"fmt"
	"strings"

	"craftpress/internal/domain"
)

// Values is the session-local mapping from field key to the user's
// current input for that field: a string (text or single select), a
// []string (multi select) or a float64 (number). It is recomputed
// UI state, never persisted by this package.
type Values map[string]any

// Control kinds produced by the dispatcher.
const (
	ControlText        = "text"
	ControlSelect      = "select"
	ControlNumber      = "number"
	ControlUnsupported = "unsupported"
)

// Control is the view model for one form field: everything a page
// template needs to render the input and its current state.
type Control struct {
	Kind        string `json:"kind"`
	FieldID     string `json:"fieldId"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`

	// text
	Text      string     `json:"text,omitempty"`
	TextCfg   TextConfig `json:"textConfig,omitempty"`
	CharCount int        `json:"charCount,omitempty"`

	// select
	SelectedIDs []string             `json:"selectedIds,omitempty"`
	Options     []domain.FieldOption `json:"options,omitempty"`
	SelectCfg   SelectConfig         `json:"selectConfig,omitempty"`
	AtCap       bool                 `json:"atCap,omitempty"`

	// number
	Number       float64      `json:"number,omitempty"`
	NumberCfg    NumberConfig `json:"numberConfig,omitempty"`
	CanIncrement bool         `json:"canIncrement,omitempty"`
	CanDecrement bool         `json:"canDecrement,omitempty"`

	// unsupported
	Notice string `json:"notice,omitempty"`
}

// Delta steps a number_input up or down by its configured step.
type Delta int

type strategy struct {
	control func(f domain.FieldWithOptions, value any) Control
	apply   func(f domain.FieldWithOptions, current, input any) any
}

// The dispatch table. Adding a field type means adding one entry;
// call sites stay untouched.
var strategies = map[string]strategy{
	domain.FieldTypeText:   {control: textControl, apply: applyText},
	domain.FieldTypeImage:  {control: selectControl, apply: applySelect},
	domain.FieldTypeColor:  {control: selectControl, apply: applySelect},
	domain.FieldTypeNumber: {control: numberControl, apply: applyNumber},
}

// BuildControl renders the form view model for one field. Unknown
// field types degrade to a visible unsupported notice naming the tag,
// so the rest of the form keeps working.
func BuildControl(f domain.FieldWithOptions, value any) Control {
	s, ok := strategies[f.Type]
	if !ok {
		return Control{
			Kind:    ControlUnsupported,
			FieldID: f.ID,
			Key:     f.Key,
			Label:   f.Label,
			Notice:  fmt.Sprintf("Unknown field type: %s", f.Type),
		}
	}
	return s.control(f, value)
}

// ApplyChange runs the pure value transition for one field and
// returns the next value. Unknown field types leave the value
// untouched.
func ApplyChange(f domain.FieldWithOptions, current, input any) any {
	s, ok := strategies[f.Type]
	if !ok {
		return current
	}
	return s.apply(f, current, input)
}

// BuildControls renders the whole form for a field list in catalog
// order, skipping inactive fields.
func BuildControls(fields []domain.FieldWithOptions, values Values) []Control {
	out := make([]Control, 0, len(fields))
	for _, f := range fields {
		if !f.IsActive {
			continue
		}
		out = append(out, BuildControl(f, values[f.Key]))
	}
	return out
}

func textControl(f domain.FieldWithOptions, value any) Control {
	cfg := ParseTextConfig(f.TemplateField)
	text, _ := value.(string)
	if text == "" {
		text = cfg.DefaultValue
	}
	return Control{
		Kind:        ControlText,
		FieldID:     f.ID,
		Key:         f.Key,
		Label:       f.Label,
		Description: f.Description,
		Required:    f.Required,
		Text:        text,
		TextCfg:     cfg,
		CharCount:   len([]rune(text)),
	}
}

func applyText(f domain.FieldWithOptions, _, input any) any {
	s, ok := input.(string)
	if !ok {
		return ""
	}
	cfg := ParseTextConfig(f.TemplateField)
	if cfg.MaxLength > 0 {
		if r := []rune(s); len(r) > cfg.MaxLength {
			s = string(r[:cfg.MaxLength])
		}
	}
	return s
}

func selectControl(f domain.FieldWithOptions, value any) Control {
	cfg := ParseSelectConfig(f.TemplateField)
	ids := SelectedIDs(value)
	return Control{
		Kind:        ControlSelect,
		FieldID:     f.ID,
		Key:         f.Key,
		Label:       f.Label,
		Description: f.Description,
		Required:    f.Required,
		SelectedIDs: ids,
		Options:     activeOptions(f.Options),
		SelectCfg:   cfg,
		AtCap:       cfg.Multiple && len(ids) >= cfg.MaxSelect,
	}
}

// applySelect toggles membership for multi selects and replaces the
// selection for single selects. Selecting a new id while the list is
// at MaxSelect is refused; toggling an already-selected id always
// removes it.
func applySelect(f domain.FieldWithOptions, current, input any) any {
	id, ok := input.(string)
	if !ok || id == "" {
		return current
	}
	cfg := ParseSelectConfig(f.TemplateField)
	if !cfg.Multiple {
		return id
	}
	ids := SelectedIDs(current)
	for i, sel := range ids {
		if sel == id {
			return append(append([]string{}, ids[:i]...), ids[i+1:]...)
		}
	}
	if len(ids) >= cfg.MaxSelect {
		return ids
	}
	return append(append([]string{}, ids...), id)
}

func numberControl(f domain.FieldWithOptions, value any) Control {
	cfg := ParseNumberConfig(f.TemplateField)
	n := currentNumber(cfg, value)
	return Control{
		Kind:         ControlNumber,
		FieldID:      f.ID,
		Key:          f.Key,
		Label:        f.Label,
		Description:  f.Description,
		Required:     f.Required,
		Number:       n,
		NumberCfg:    cfg,
		CanIncrement: n < cfg.Max,
		CanDecrement: n > cfg.Min,
	}
}

func applyNumber(f domain.FieldWithOptions, current, input any) any {
	cfg := ParseNumberConfig(f.TemplateField)
	n := currentNumber(cfg, current)
	switch in := input.(type) {
	case Delta:
		if in > 0 && n < cfg.Max {
			n += cfg.Step
		}
		if in < 0 && n > cfg.Min {
			n -= cfg.Step
		}
	case float64:
		n = in
	case int:
		n = float64(in)
	default:
		return current
	}
	if n < cfg.Min {
		n = cfg.Min
	}
	if n > cfg.Max {
		n = cfg.Max
	}
	return n
}

func currentNumber(cfg NumberConfig, value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	if cfg.Default != 0 {
		return cfg.Default
	}
	return cfg.Min
}

// SelectedIDs normalizes a select value to the ordered id list: a
// string is a one-element list, nil or empty string is none.
func SelectedIDs(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

func activeOptions(opts []domain.FieldOption) []domain.FieldOption {
	out := make([]domain.FieldOption, 0, len(opts))
	for _, o := range opts {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out
}
