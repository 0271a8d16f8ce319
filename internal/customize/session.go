package customize

import (
	"craftpress/internal/domain"
)

// PreviewState is everything the compositor needs for one frame: the
// selected variant's mockup image and design zone plus the built
// element list.
type PreviewState struct {
	Variant  *domain.ProductVariant
	Mockup   string
	Zone     domain.DesignZone
	Elements []DesignElement
}

// fallbackZone is used when a variant carries no design zone of its
// own.
var fallbackZone = domain.DesignZone{Width: 40, Height: 45, OffsetX: 0, OffsetY: -5}

// BuildPreview derives the preview state from a snapshot, the
// selected variant id and the session values. Pure: it is recomputed
// on every value change and every variant switch. An unknown variant
// id falls back to the default variant; a product with no variants or
// no template yields an empty state (nil Variant, no elements).
func BuildPreview(snap *domain.ProductSnapshot, variantID string, values Values) PreviewState {
	state := PreviewState{Zone: fallbackZone}

	variant := VariantByID(snap.Variants, variantID)
	if variant == nil {
		variant = DefaultVariant(snap.Variants)
	}
	if variant != nil {
		state.Variant = variant
		state.Mockup = variant.Image
		if zone, ok := variant.DesignZone(); ok {
			state.Zone = zone
		}
	}

	if tpl := snap.DefaultTemplate(); tpl != nil {
		state.Elements = BuildElements(tpl.Fields, values)
	}

	return state
}
