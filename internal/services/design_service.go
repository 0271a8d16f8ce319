package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"craftpress/internal/customize"
	"craftpress/internal/domain"
	"craftpress/internal/repos"
)

type DesignService struct {
	Designs *repos.DesignRepo
	Catalog *CatalogService
}

func NewDesignService(designs *repos.DesignRepo, catalog *CatalogService) *DesignService {
	return &DesignService{Designs: designs, Catalog: catalog}
}

// SaveDesign persists a customization after checking that the
// referenced product, variant and template all exist in the current
// snapshot. Returns the stored design with its generated id.
func (s *DesignService) SaveDesign(handle, variantID, templateID string, values customize.Values) (domain.SavedDesign, error) {
	var d domain.SavedDesign

	snap, err := s.Catalog.ProductByHandle(handle)
	if err != nil {
		return d, err
	}
	if customize.VariantByID(snap.Variants, variantID) == nil {
		return d, fmt.Errorf("%w: variant %q", ErrNotFound, variantID)
	}
	var template *domain.TemplateWithFields
	for i := range snap.Templates {
		if snap.Templates[i].Template.ID == templateID {
			template = &snap.Templates[i]
			break
		}
	}
	if template == nil {
		return d, fmt.Errorf("%w: template %q", ErrNotFound, templateID)
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return d, fmt.Errorf("encode customization: %w", err)
	}

	d = domain.SavedDesign{
		ID:                uuid.NewString(),
		ProductID:         snap.Product.ID,
		VariantID:         variantID,
		TemplateID:        templateID,
		CustomizationJSON: string(raw),
	}
	if err := s.Designs.Save(d); err != nil {
		return domain.SavedDesign{}, fmt.Errorf("save design: %w", err)
	}
	return d, nil
}

func (s *DesignService) GetDesign(id string) (domain.SavedDesign, error) {
	d, err := s.Designs.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrNotFound
	}
	return d, err
}
