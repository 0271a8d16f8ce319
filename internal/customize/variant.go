package customize

import (
	"strings"

	"craftpress/internal/domain"
)

// Resolve merges the changed option value into the current attribute
// selection and returns the first variant (in storage order) whose
// attributes agree with every merged key, comparing values
// case-insensitively. Returns nil when nothing matches; the caller
// keeps its previous selection displayed.
func Resolve(variants []domain.ProductVariant, current map[string]string, option, value string) *domain.ProductVariant {
	merged := make(map[string]string, len(current)+1)
	for k, v := range current {
		merged[strings.ToLower(k)] = v
	}
	merged[strings.ToLower(option)] = value

	for i := range variants {
		attrs := variants[i].Attributes()
		match := true
		for k, want := range merged {
			if !strings.EqualFold(attrs[k], want) {
				match = false
				break
			}
		}
		if match {
			return &variants[i]
		}
	}
	return nil
}

// DefaultVariant picks the variant flagged default, else the first in
// load order, else nil for an empty list.
func DefaultVariant(variants []domain.ProductVariant) *domain.ProductVariant {
	for i := range variants {
		if variants[i].IsDefault {
			return &variants[i]
		}
	}
	if len(variants) > 0 {
		return &variants[0]
	}
	return nil
}

// VariantByID returns the variant with the given id, or nil.
func VariantByID(variants []domain.ProductVariant, id string) *domain.ProductVariant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}
