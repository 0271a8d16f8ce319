package repos

import (
	"craftpress/internal/domain"

	"github.com/jmoiron/sqlx"
)

type DesignRepo struct{ db *sqlx.DB }

func NewDesignRepo(db *sqlx.DB) *DesignRepo { return &DesignRepo{db: db} }

func (r *DesignRepo) Save(d domain.SavedDesign) error {
	_, err := r.db.Exec(`
	  INSERT INTO designs(id, product_id, variant_id, template_id, customization_json, preview_thumbnail, preview_full_size)
	  VALUES(?,?,?,?,?,?,?)
	  ON CONFLICT(id) DO UPDATE SET
	    variant_id = excluded.variant_id,
	    customization_json = excluded.customization_json,
	    preview_thumbnail = excluded.preview_thumbnail,
	    preview_full_size = excluded.preview_full_size,
	    updated_at = CURRENT_TIMESTAMP
	`, d.ID, d.ProductID, d.VariantID, d.TemplateID, d.CustomizationJSON, d.PreviewThumbnail, d.PreviewFullSize)
	return err
}

func (r *DesignRepo) Get(id string) (domain.SavedDesign, error) {
	var d domain.SavedDesign
	err := r.db.Get(&d, `
	  SELECT
	    id, product_id, variant_id, template_id, customization_json,
	    COALESCE(preview_thumbnail,'') AS preview_thumbnail,
	    COALESCE(preview_full_size,'') AS preview_full_size,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM designs
	  WHERE id = ?
	`, id)
	return d, err
}
