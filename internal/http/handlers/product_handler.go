package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"craftpress/internal/customize"
	"craftpress/internal/log"
	"craftpress/internal/preview"
	"craftpress/internal/services"
	"craftpress/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Home renders the product grid of active products.
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(1, 12)
	if err != nil {
		log.Error(c, "catalog.list", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	return render(c, "home", fiber.Map{"Products": products})
}

// Detail renders the customizer page: variant swatches plus the form
// controls for the default template's fields.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	handle, ok := validate.Handle(c.Params("handle"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "handle"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	snap, err := h.Catalog.ProductByHandle(handle)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	if err != nil {
		log.Error(c, "catalog.snapshot", err, map[string]any{"handle": handle})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}

	variant := customize.DefaultVariant(snap.Variants)
	data := fiber.Map{"P": snap}
	if variant != nil {
		data["Variant"] = variant
		data["TextColor"] = preview.TextColorFor(variant.Attributes())
	}
	if tpl := snap.DefaultTemplate(); tpl != nil {
		data["Template"] = tpl
		data["Controls"] = customize.BuildControls(tpl.Fields, nil)
	}
	return render(c, "product", data)
}

// Snapshot serves the catalog snapshot JSON the customizer consumes.
func (h *ProductHandler) Snapshot(c *fiber.Ctx) error {
	handle, ok := validate.Handle(c.Params("handle"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	snap, err := h.Catalog.ProductByHandle(handle)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		log.Error(c, "catalog.snapshot", err, map[string]any{"handle": handle})
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch product"})
	}
	return c.JSON(snap)
}
