package customize

import (
	"strings"

	"craftpress/internal/domain"
)

// Element kinds.
const (
	KindImage = "image"
	KindText  = "text"
)

// DesignElement is one positioned visual on the preview canvas,
// derived from a field's current value. Elements are keyed by field
// id so stale async loads can be dropped by diffing id sets.
type DesignElement struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"` // image | text
	Src       string `json:"src,omitempty"`
	Text      string `json:"text,omitempty"`
	Alignment string `json:"alignment"`
}

// BuildElements maps the in-progress values onto an ordered visual
// element list. Fields are walked in the given (catalog) order, which
// becomes the z-order when composited: later entries draw on top.
//
// A field with no usable value emits nothing. The unset check treats
// the numeric value 0 the same as an absent key; number_input fields
// never emit visuals anyway, so the skip only shows up in the values
// walk itself.
func BuildElements(fields []domain.FieldWithOptions, values Values) []DesignElement {
	elements := []DesignElement{}

	for _, f := range fields {
		value := values[f.Key]
		if isUnset(value) {
			continue
		}

		switch f.Type {
		case domain.FieldTypeImage, domain.FieldTypeColor:
			id, ok := value.(string)
			if !ok {
				continue
			}
			opt := optionByID(f.Options, id)
			if opt == nil || opt.Image == "" {
				continue
			}
			elements = append(elements, DesignElement{
				ID:        f.ID,
				Kind:      KindImage,
				Src:       opt.Image,
				Alignment: fieldAlignment(f.TemplateField),
			})

		case domain.FieldTypeText:
			text, ok := value.(string)
			if !ok || strings.TrimSpace(text) == "" {
				continue
			}
			elements = append(elements, DesignElement{
				ID:        f.ID,
				Kind:      KindText,
				Text:      text,
				Alignment: fieldAlignment(f.TemplateField),
			})
		}
		// number_input carries non-visual data (quantities) and never
		// emits an element.
	}

	return elements
}

// RecoverSelections re-derives, from a built element list, which
// option id each image-bearing field had selected. Inverse of
// BuildElements for image/color selects.
func RecoverSelections(elements []DesignElement, fields []domain.FieldWithOptions) map[string]string {
	byID := make(map[string]domain.FieldWithOptions, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	out := map[string]string{}
	for _, el := range elements {
		if el.Kind != KindImage {
			continue
		}
		f, ok := byID[el.ID]
		if !ok {
			continue
		}
		for _, opt := range f.Options {
			if opt.Image == el.Src {
				out[f.Key] = opt.ID
				break
			}
		}
	}
	return out
}

func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case bool:
		return !v
	}
	return false
}

func optionByID(opts []domain.FieldOption, id string) *domain.FieldOption {
	for i := range opts {
		if opts[i].ID == id {
			return &opts[i]
		}
	}
	return nil
}
