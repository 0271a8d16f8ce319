package domain

import "encoding/json"

type Product struct {
	ID          string `db:"id" json:"id"`
	Handle      string `db:"handle" json:"handle"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	ProductType string `db:"product_type" json:"productType"`
	Vendor      string `db:"vendor" json:"vendor"`
	TagsJSON    string `db:"tags_json" json:"-"`
	Status      string `db:"status" json:"status"` // active | draft | archived
	Thumbnail   string `db:"thumbnail" json:"thumbnail"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt"`
}

func (p Product) Tags() []string { return decodeStrings(p.TagsJSON) }

type ProductOption struct {
	ID         string `db:"id" json:"id"`
	ProductID  string `db:"product_id" json:"productId"`
	Name       string `db:"name" json:"name"`
	Position   int    `db:"position" json:"position"`
	ValuesJSON string `db:"values_json" json:"-"`
}

func (o ProductOption) Values() []string { return decodeStrings(o.ValuesJSON) }

// DesignZone is a percentage-defined rectangle relative to the product
// image canvas. Width/height are % of canvas size; OffsetX/OffsetY
// displace the zone center from the canvas center, also in %.
type DesignZone struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

type PrintSpec struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	DPI    int    `json:"dpi"`
	Format string `json:"format"`
}

type ProductVariant struct {
	ID             string `db:"id" json:"id"`
	ProductID      string `db:"product_id" json:"productId"`
	SKU            string `db:"sku" json:"sku"`
	Title          string `db:"title" json:"title"`
	Price          string `db:"price" json:"price"`
	CompareAtPrice string `db:"compare_at_price" json:"compareAtPrice"`
	AttributesJSON string `db:"attributes_json" json:"-"`
	Image          string `db:"image" json:"image"`
	MockupsJSON    string `db:"mockups_json" json:"-"`
	DesignZoneJSON string `db:"design_zone_json" json:"-"`
	PrintSpecJSON  string `db:"print_spec_json" json:"-"`
	IsDefault      bool   `db:"is_default" json:"isDefault"`
}

// Attributes maps lower-cased option name to this variant's value for
// that option (one entry per product option).
func (v ProductVariant) Attributes() map[string]string {
	out := map[string]string{}
	if v.AttributesJSON != "" {
		_ = json.Unmarshal([]byte(v.AttributesJSON), &out)
	}
	return out
}

func (v ProductVariant) Mockups() map[string]string {
	out := map[string]string{}
	if v.MockupsJSON != "" {
		_ = json.Unmarshal([]byte(v.MockupsJSON), &out)
	}
	return out
}

func (v ProductVariant) DesignZone() (DesignZone, bool) {
	var z DesignZone
	if v.DesignZoneJSON == "" {
		return z, false
	}
	if err := json.Unmarshal([]byte(v.DesignZoneJSON), &z); err != nil {
		return DesignZone{}, false
	}
	return z, true
}

func (v ProductVariant) PrintSpec() (PrintSpec, bool) {
	var s PrintSpec
	if v.PrintSpecJSON == "" {
		return s, false
	}
	if err := json.Unmarshal([]byte(v.PrintSpecJSON), &s); err != nil {
		return PrintSpec{}, false
	}
	return s, true
}

type Template struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Thumbnail   string `db:"thumbnail" json:"thumbnail"`
	LayoutJSON  string `db:"layout_json" json:"-"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	// From the product_templates link row.
	IsDefault bool `db:"is_default" json:"isDefault"`
	Position  int  `db:"position" json:"position"`
}

// TemplateLayout holds the template's static background and
// non-interactive decorative elements.
type TemplateLayout struct {
	Background     string          `json:"background,omitempty"`
	StaticElements []StaticElement `json:"staticElements,omitempty"`
}

type StaticElement struct {
	Type     string         `json:"type"`
	Content  string         `json:"content,omitempty"`
	Image    string         `json:"image,omitempty"`
	Style    map[string]any `json:"style,omitempty"`
	Position *Point         `json:"position,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (t Template) Layout() TemplateLayout {
	var l TemplateLayout
	if t.LayoutJSON != "" {
		_ = json.Unmarshal([]byte(t.LayoutJSON), &l)
	}
	return l
}

// Field type tags.
const (
	FieldTypeText   = "text_input"
	FieldTypeImage  = "image_select"
	FieldTypeColor  = "color_select"
	FieldTypeNumber = "number_input"
)

type TemplateField struct {
	ID          string `db:"id" json:"id"`
	TemplateID  string `db:"template_id" json:"templateId"`
	Key         string `db:"key" json:"key"` // stable values-map key, not the display label
	Label       string `db:"label" json:"label"`
	Description string `db:"description" json:"description"`
	Type        string `db:"type" json:"type"`
	Required    bool   `db:"required" json:"required"`
	ConfigJSON  string `db:"config_json" json:"-"`
	Position    int    `db:"position" json:"position"`
	IsActive    bool   `db:"is_active" json:"isActive"`
}

type FieldOption struct {
	ID           string `db:"id" json:"id"`
	FieldID      string `db:"field_id" json:"fieldId"`
	Label        string `db:"label" json:"label"`
	Image        string `db:"image" json:"image"`
	ColorHex     string `db:"color_hex" json:"colorHex"`
	MetadataJSON string `db:"metadata_json" json:"-"`
	Position     int    `db:"position" json:"position"`
	IsActive     bool   `db:"is_active" json:"isActive"`
}

func (o FieldOption) Metadata() map[string]any {
	out := map[string]any{}
	if o.MetadataJSON != "" {
		_ = json.Unmarshal([]byte(o.MetadataJSON), &out)
	}
	return out
}

// FieldWithOptions pairs a field with its ordered options.
type FieldWithOptions struct {
	TemplateField
	Options []FieldOption `json:"options"`
}

// TemplateWithFields is a template plus its ordered field list.
type TemplateWithFields struct {
	Template
	Fields []FieldWithOptions `json:"fields"`
}

// ProductSnapshot is the full read-only view the customizer consumes
// for one session: product, ordered options, variants and linked
// templates with fields and field options.
type ProductSnapshot struct {
	Product
	Options   []ProductOption      `json:"options"`
	Variants  []ProductVariant     `json:"variants"`
	Templates []TemplateWithFields `json:"templates"`
}

// DefaultTemplate returns the template flagged default on its product
// link, else the first in link order, else nil.
func (s *ProductSnapshot) DefaultTemplate() *TemplateWithFields {
	for i := range s.Templates {
		if s.Templates[i].IsDefault {
			return &s.Templates[i]
		}
	}
	if len(s.Templates) > 0 {
		return &s.Templates[0]
	}
	return nil
}

func decodeStrings(s string) []string {
	var out []string
	if s != "" {
		_ = json.Unmarshal([]byte(s), &out)
	}
	return out
}
