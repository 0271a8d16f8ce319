package repos

import (
	"craftpress/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) ListActive(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT
	    id, handle, title, COALESCE(description,'') AS description, product_type,
	    COALESCE(vendor,'') AS vendor, COALESCE(tags_json,'') AS tags_json, status,
	    COALESCE(thumbnail,'') AS thumbnail, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE status = 'active'
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *ProductRepo) GetByHandle(handle string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT
	    id, handle, title, COALESCE(description,'') AS description, product_type,
	    COALESCE(vendor,'') AS vendor, COALESCE(tags_json,'') AS tags_json, status,
	    COALESCE(thumbnail,'') AS thumbnail, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE handle = ?
	`, handle)
	return p, err
}

func (r *ProductRepo) Options(productID string) ([]domain.ProductOption, error) {
	var out []domain.ProductOption
	err := r.db.Select(&out, `
	  SELECT id, product_id, name, position, values_json
	  FROM product_options
	  WHERE product_id = ?
	  ORDER BY position ASC
	`, productID)
	return out, err
}

func (r *ProductRepo) Variants(productID string) ([]domain.ProductVariant, error) {
	var out []domain.ProductVariant
	err := r.db.Select(&out, `
	  SELECT
	    id, product_id, sku, title, CAST(price AS TEXT) AS price,
	    COALESCE(CAST(compare_at_price AS TEXT),'') AS compare_at_price,
	    attributes_json, COALESCE(image,'') AS image,
	    COALESCE(mockups_json,'') AS mockups_json,
	    COALESCE(design_zone_json,'') AS design_zone_json,
	    COALESCE(print_spec_json,'') AS print_spec_json,
	    is_default
	  FROM product_variants
	  WHERE product_id = ?
	  ORDER BY rowid ASC
	`, productID)
	return out, err
}
