package repos

import (
	"craftpress/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TemplateRepo struct{ db *sqlx.DB }

func NewTemplateRepo(db *sqlx.DB) *TemplateRepo { return &TemplateRepo{db: db} }

// ForProduct returns the templates linked to a product, ordered by
// link position, with the link's is_default flag folded in.
func (r *TemplateRepo) ForProduct(productID string) ([]domain.Template, error) {
	var out []domain.Template
	err := r.db.Select(&out, `
	  SELECT
	    t.id, t.name, COALESCE(t.description,'') AS description,
	    COALESCE(t.category,'') AS category, COALESCE(t.thumbnail,'') AS thumbnail,
	    COALESCE(t.layout_json,'') AS layout_json, t.created_at,
	    pt.is_default, pt.position
	  FROM product_templates pt
	  JOIN templates t ON t.id = pt.template_id
	  WHERE pt.product_id = ?
	  ORDER BY pt.position ASC
	`, productID)
	return out, err
}

// Fields returns a template's active fields ordered by position.
func (r *TemplateRepo) Fields(templateID string) ([]domain.TemplateField, error) {
	var out []domain.TemplateField
	err := r.db.Select(&out, `
	  SELECT
	    id, template_id, key, label, COALESCE(description,'') AS description,
	    type, required, config_json, position, is_active
	  FROM template_fields
	  WHERE template_id = ? AND is_active = 1
	  ORDER BY position ASC
	`, templateID)
	return out, err
}

// FieldOptions returns a field's active options ordered by position.
func (r *TemplateRepo) FieldOptions(fieldID string) ([]domain.FieldOption, error) {
	var out []domain.FieldOption
	err := r.db.Select(&out, `
	  SELECT
	    id, field_id, COALESCE(label,'') AS label, image,
	    COALESCE(color_hex,'') AS color_hex, COALESCE(metadata_json,'') AS metadata_json,
	    position, is_active
	  FROM field_options
	  WHERE field_id = ? AND is_active = 1
	  ORDER BY position ASC
	`, fieldID)
	return out, err
}
