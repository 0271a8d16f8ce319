package domain_test

import (
	"encoding/json"
	"testing"

	"craftpress/internal/domain"
)

func TestVariantJSONAccessors(t *testing.T) {
	v := domain.ProductVariant{
		AttributesJSON: `{"size":"11 oz","color":"White"}`,
		DesignZoneJSON: `{"width":35,"height":50,"offsetX":8,"offsetY":0}`,
	}

	attrs := v.Attributes()
	if attrs["size"] != "11 oz" || attrs["color"] != "White" {
		t.Fatalf("attributes wrong: %v", attrs)
	}

	zone, ok := v.DesignZone()
	if !ok || zone.Width != 35 || zone.OffsetY != 0 {
		t.Fatalf("zone wrong: %+v ok=%v", zone, ok)
	}

	// absent or broken zone JSON means "no zone", never a crash
	if _, ok := (domain.ProductVariant{}).DesignZone(); ok {
		t.Fatal("empty zone reported present")
	}
	if _, ok := (domain.ProductVariant{DesignZoneJSON: `{broken`}).DesignZone(); ok {
		t.Fatal("broken zone reported present")
	}
}

func TestDefaultTemplate(t *testing.T) {
	snap := &domain.ProductSnapshot{Templates: []domain.TemplateWithFields{
		{Template: domain.Template{ID: "t-1"}},
		{Template: domain.Template{ID: "t-2", IsDefault: true}},
	}}
	if tpl := snap.DefaultTemplate(); tpl == nil || tpl.Template.ID != "t-2" {
		t.Fatalf("want flagged default, got %+v", tpl)
	}

	snap.Templates[1].IsDefault = false
	if tpl := snap.DefaultTemplate(); tpl == nil || tpl.Template.ID != "t-1" {
		t.Fatalf("want first template, got %+v", tpl)
	}

	if tpl := (&domain.ProductSnapshot{}).DefaultTemplate(); tpl != nil {
		t.Fatalf("want nil for no templates, got %+v", tpl)
	}
}

func TestFieldMarshalDecodesConfig(t *testing.T) {
	f := domain.FieldWithOptions{
		TemplateField: domain.TemplateField{
			ID: "f-1", Type: domain.FieldTypeText,
			ConfigJSON: `{"maxLength":24}`,
		},
	}

	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Config  map[string]any `json:"config"`
		Options []any          `json:"options"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Config["maxLength"] != 24.0 {
		t.Fatalf("config not decoded: %v", out.Config)
	}
	if out.Options == nil {
		t.Fatal("options must serialize as a list, not null")
	}

	// invalid stored config degrades to an empty object
	f.ConfigJSON = `{broken`
	raw, err = json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	// decode into a fresh value: Unmarshal merges into an existing map,
	// which would keep the previous config keys around
	var out2 struct {
		Config  map[string]any `json:"config"`
		Options []any          `json:"options"`
	}
	if err := json.Unmarshal(raw, &out2); err != nil {
		t.Fatal(err)
	}
	if len(out2.Config) != 0 {
		t.Fatalf("broken config leaked: %v", out2.Config)
	}
}
