package handlers

import (
	"encoding/json"
	"errors"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"

	"craftpress/internal/customize"
	"craftpress/internal/log"
	"craftpress/internal/preview"
	"craftpress/internal/services"
	"craftpress/internal/validate"
)

type PreviewHandler struct {
	Catalog  *services.CatalogService
	Renderer *preview.Renderer
}

// previewState resolves the query parameters shared by both preview
// endpoints into a built preview state.
func (h *PreviewHandler) previewState(c *fiber.Ctx) (customize.PreviewState, int, error) {
	handle, ok := validate.Handle(c.Params("handle"))
	if !ok {
		return customize.PreviewState{}, 0, services.ErrNotFound
	}
	snap, err := h.Catalog.ProductByHandle(handle)
	if err != nil {
		return customize.PreviewState{}, 0, err
	}

	values := customize.Values{}
	if raw := c.Query("values"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			log.Security(c, "preview.values.malformed", map[string]any{"handle": handle})
			values = customize.Values{}
		}
	}

	variantID, _ := validate.ID(c.Query("variant"))
	size := validate.CanvasSize(c.Query("size"))
	return customize.BuildPreview(snap, variantID, values), size, nil
}

// Instructions serves the composite plan as JSON: zone-resolved boxes
// for the background mockup and every design element.
func (h *PreviewHandler) Instructions(c *fiber.Ctx) error {
	state, size, err := h.previewState(c)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		log.Error(c, "preview.state", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "failed to build preview"})
	}

	textColor := "#333333"
	if state.Variant != nil {
		textColor = preview.TextColorFor(state.Variant.Attributes())
	}
	ins := preview.Composite(size, size, state.Mockup, state.Zone, state.Elements, textColor)
	return c.JSON(fiber.Map{"canvas": size, "instructions": ins})
}

// Image renders the preview server-side and serves it as PNG.
func (h *PreviewHandler) Image(c *fiber.Ctx) error {
	state, size, err := h.previewState(c)
	if errors.Is(err, services.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		log.Error(c, "preview.state", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	textColor := "#333333"
	if state.Variant != nil {
		textColor = preview.TextColorFor(state.Variant.Attributes())
	}
	img := h.Renderer.Render(c.Context(), size, size, state.Mockup, state.Zone, state.Elements, textColor)

	c.Set(fiber.HeaderContentType, "image/png")
	return imaging.Encode(c.Response().BodyWriter(), img, imaging.PNG)
}
