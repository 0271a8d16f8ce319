package domain

import "encoding/json"

// SavedDesign is a persisted customization: the ids it was built
// against plus the raw values map, so a session can be restored.
type SavedDesign struct {
	ID                string `db:"id" json:"id"`
	ProductID         string `db:"product_id" json:"productId"`
	VariantID         string `db:"variant_id" json:"variantId"`
	TemplateID        string `db:"template_id" json:"templateId"`
	CustomizationJSON string `db:"customization_json" json:"-"`
	PreviewThumbnail  string `db:"preview_thumbnail" json:"previewThumbnail"`
	PreviewFullSize   string `db:"preview_full_size" json:"previewFullSize"`
	CreatedAt         string `db:"created_at" json:"createdAt"`
	UpdatedAt         string `db:"updated_at" json:"updatedAt"`
}

func (d SavedDesign) Customization() map[string]any {
	out := map[string]any{}
	if d.CustomizationJSON != "" {
		_ = json.Unmarshal([]byte(d.CustomizationJSON), &out)
	}
	return out
}
