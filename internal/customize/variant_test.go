package customize_test

import (
	"testing"

	"craftpress/internal/customize"
	"craftpress/internal/domain"
)

func mugVariants() []domain.ProductVariant {
	return []domain.ProductVariant{
		{ID: "v-11-white", AttributesJSON: `{"size":"11 oz","color":"White"}`, IsDefault: true},
		{ID: "v-11-black", AttributesJSON: `{"size":"11 oz","color":"Black"}`},
		{ID: "v-15-white", AttributesJSON: `{"size":"15 oz","color":"White"}`},
		{ID: "v-15-black", AttributesJSON: `{"size":"15 oz","color":"Black"}`},
	}
}

func TestResolveMergesChangedOption(t *testing.T) {
	variants := mugVariants()

	got := customize.Resolve(variants, map[string]string{"size": "11 oz"}, "Color", "Black")
	if got == nil || got.ID != "v-11-black" {
		t.Fatalf("want v-11-black, got %+v", got)
	}

	// the other axis survives the change
	got = customize.Resolve(variants, got.Attributes(), "Size", "15 oz")
	if got == nil || got.ID != "v-15-black" {
		t.Fatalf("want v-15-black, got %+v", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	variants := mugVariants()
	current := map[string]string{"size": "11 oz", "color": "White"}

	first := customize.Resolve(variants, current, "Color", "Black")
	if first == nil {
		t.Fatal("first resolve returned nil")
	}
	second := customize.Resolve(variants, first.Attributes(), "Color", "Black")
	if second == nil || second.ID != first.ID {
		t.Fatalf("re-selecting the same value moved %s -> %+v", first.ID, second)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	variants := mugVariants()
	got := customize.Resolve(variants, map[string]string{"SIZE": "11 OZ"}, "COLOR", "black")
	if got == nil || got.ID != "v-11-black" {
		t.Fatalf("want v-11-black, got %+v", got)
	}
}

func TestResolveNoMatchReturnsNil(t *testing.T) {
	variants := mugVariants()
	got := customize.Resolve(variants, map[string]string{"size": "11 oz"}, "Color", "Chartreuse")
	if got != nil {
		t.Fatalf("want nil for impossible combination, got %+v", got)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// duplicate attribute tuples resolve to storage order
	variants := []domain.ProductVariant{
		{ID: "dup-a", AttributesJSON: `{"color":"White"}`},
		{ID: "dup-b", AttributesJSON: `{"color":"White"}`},
	}
	got := customize.Resolve(variants, nil, "Color", "White")
	if got == nil || got.ID != "dup-a" {
		t.Fatalf("want dup-a, got %+v", got)
	}
}

func TestDefaultVariant(t *testing.T) {
	variants := mugVariants()
	if got := customize.DefaultVariant(variants); got == nil || got.ID != "v-11-white" {
		t.Fatalf("want flagged default v-11-white, got %+v", got)
	}

	// no flag: first in load order
	variants[0].IsDefault = false
	if got := customize.DefaultVariant(variants); got == nil || got.ID != "v-11-white" {
		t.Fatalf("want first variant, got %+v", got)
	}

	if got := customize.DefaultVariant(nil); got != nil {
		t.Fatalf("want nil for empty list, got %+v", got)
	}
}

func TestVariantByID(t *testing.T) {
	variants := mugVariants()
	if got := customize.VariantByID(variants, "v-15-white"); got == nil || got.ID != "v-15-white" {
		t.Fatalf("lookup failed, got %+v", got)
	}
	if got := customize.VariantByID(variants, "nope"); got != nil {
		t.Fatalf("want nil for unknown id, got %+v", got)
	}
}
