package services

import (
	"database/sql"
	"errors"
	"fmt"

	"craftpress/internal/domain"
	"craftpress/internal/repos"
)

// ErrNotFound signals an absent catalog entity; handlers translate it
// into an empty state, never a crash.
var ErrNotFound = errors.New("not found")

type CatalogService struct {
	Products  *repos.ProductRepo
	Templates *repos.TemplateRepo
}

func NewCatalogService(products *repos.ProductRepo, templates *repos.TemplateRepo) *CatalogService {
	return &CatalogService{Products: products, Templates: templates}
}

func (s *CatalogService) ListProducts(page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Products.ListActive(pageSize, offset)
}

// ProductByHandle assembles the full customization snapshot for one
// session: the product, its options ordered by position, its variants
// in load order, and every linked template with ordered fields and
// field options. The snapshot is treated as valid for the session's
// duration; no caching lives here.
//
// Empty options/variants/templates lists are returned as-is so the
// shell can render an empty state.
func (s *CatalogService) ProductByHandle(handle string) (*domain.ProductSnapshot, error) {
	p, err := s.Products.GetByHandle(handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product %q: %w", handle, err)
	}

	snap := &domain.ProductSnapshot{Product: p}

	if snap.Options, err = s.Products.Options(p.ID); err != nil {
		return nil, fmt.Errorf("load options for %q: %w", handle, err)
	}
	if snap.Variants, err = s.Products.Variants(p.ID); err != nil {
		return nil, fmt.Errorf("load variants for %q: %w", handle, err)
	}

	templates, err := s.Templates.ForProduct(p.ID)
	if err != nil {
		return nil, fmt.Errorf("load templates for %q: %w", handle, err)
	}
	for _, t := range templates {
		tw := domain.TemplateWithFields{Template: t}
		fields, err := s.Templates.Fields(t.ID)
		if err != nil {
			return nil, fmt.Errorf("load fields for template %q: %w", t.ID, err)
		}
		for _, f := range fields {
			fw := domain.FieldWithOptions{TemplateField: f}
			if f.Type == domain.FieldTypeImage || f.Type == domain.FieldTypeColor {
				if fw.Options, err = s.Templates.FieldOptions(f.ID); err != nil {
					return nil, fmt.Errorf("load options for field %q: %w", f.ID, err)
				}
			}
			tw.Fields = append(tw.Fields, fw)
		}
		snap.Templates = append(snap.Templates, tw)
	}

	return snap, nil
}
