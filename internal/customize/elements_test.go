package customize_test

import (
	"reflect"
	"testing"

	"craftpress/internal/customize"
	"craftpress/internal/domain"
)

func animalFields() []domain.FieldWithOptions {
	return []domain.FieldWithOptions{
		{
			TemplateField: domain.TemplateField{
				ID: "f-animal", Key: "animal", Type: domain.FieldTypeImage, IsActive: true,
			},
			Options: []domain.FieldOption{
				{ID: "opt-1", Image: "https://cdn.test/rooster-1.png", IsActive: true},
				{ID: "opt-2", Image: "https://cdn.test/rooster-2.png", IsActive: true},
				{ID: "opt-bare", Image: "", IsActive: true},
			},
		},
		{
			TemplateField: domain.TemplateField{
				ID: "f-name", Key: "name", Type: domain.FieldTypeText, IsActive: true,
			},
		},
		{
			TemplateField: domain.TemplateField{
				ID: "f-qty", Key: "qty", Type: domain.FieldTypeNumber, IsActive: true,
			},
		},
	}
}

func TestBuildElementsOrderAndKinds(t *testing.T) {
	els := customize.BuildElements(animalFields(), customize.Values{
		"animal": "opt-2",
		"name":   "Henrietta",
		"qty":    2.0,
	})

	if len(els) != 2 {
		t.Fatalf("want 2 elements (number emits none), got %+v", els)
	}
	// catalog order is z-order
	if els[0].ID != "f-animal" || els[0].Kind != customize.KindImage {
		t.Fatalf("first element wrong: %+v", els[0])
	}
	if els[0].Src != "https://cdn.test/rooster-2.png" {
		t.Fatalf("selected option image wrong: %q", els[0].Src)
	}
	if els[1].ID != "f-name" || els[1].Kind != customize.KindText || els[1].Text != "Henrietta" {
		t.Fatalf("second element wrong: %+v", els[1])
	}
	// no alignment configured: center
	for _, el := range els {
		if el.Alignment != customize.AlignCenter {
			t.Fatalf("want center alignment, got %q on %s", el.Alignment, el.ID)
		}
	}
}

func TestBuildElementsSkipsUnsetValues(t *testing.T) {
	fields := animalFields()

	for name, values := range map[string]customize.Values{
		"no values":      {},
		"nil values":     {"animal": nil, "name": nil},
		"empty strings":  {"animal": "", "name": "   "},
		"numeric zero":   {"animal": 0, "name": 0.0},
		"boolean false":  {"animal": false},
		"unknown option": {"animal": "opt-gone"},
		"imageless opt":  {"animal": "opt-bare"},
	} {
		if els := customize.BuildElements(fields, values); len(els) != 0 {
			t.Fatalf("%s: want no elements, got %+v", name, els)
		}
	}
}

func TestBuildElementsCustomAlignment(t *testing.T) {
	fields := animalFields()
	fields[1].ConfigJSON = `{"alignment":"bottom-right"}`

	els := customize.BuildElements(fields, customize.Values{"name": "Bob"})
	if len(els) != 1 || els[0].Alignment != customize.AlignBottomRight {
		t.Fatalf("configured alignment lost: %+v", els)
	}
}

func TestRecoverSelectionsRoundTrip(t *testing.T) {
	fields := animalFields()
	values := customize.Values{"animal": "opt-1", "name": "ignored for recovery"}

	els := customize.BuildElements(fields, values)
	got := customize.RecoverSelections(els, fields)

	want := map[string]string{"animal": "opt-1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip broke: want %v, got %v", want, got)
	}
}

func TestRecoverSelectionsIgnoresStrangers(t *testing.T) {
	els := []customize.DesignElement{
		{ID: "f-ghost", Kind: customize.KindImage, Src: "x.png"},
		{ID: "f-name", Kind: customize.KindText, Text: "Bob"},
	}
	if got := customize.RecoverSelections(els, animalFields()); len(got) != 0 {
		t.Fatalf("want empty map, got %v", got)
	}
}
