package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"craftpress/internal/customize"
	"craftpress/internal/log"
	"craftpress/internal/services"
	"craftpress/internal/validate"
)

type DesignHandler struct {
	Designs *services.DesignService
}

type saveDesignRequest struct {
	Handle     string           `json:"handle"`
	VariantID  string           `json:"variantId"`
	TemplateID string           `json:"templateId"`
	Values     customize.Values `json:"values"`
}

func (h *DesignHandler) Save(c *fiber.Ctx) error {
	var req saveDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	handle, ok := validate.Handle(req.Handle)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid handle"})
	}
	variantID, ok := validate.ID(req.VariantID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid variant id"})
	}
	templateID, ok := validate.ID(req.TemplateID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid template id"})
	}

	d, err := h.Designs.SaveDesign(handle, variantID, templateID, req.Values)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		log.Error(c, "design.save", err, map[string]any{"handle": handle})
		return c.Status(500).JSON(fiber.Map{"error": "failed to save design"})
	}
	log.Info(c, "design.saved", map[string]any{"design": d.ID, "product": d.ProductID})
	return c.Status(fiber.StatusCreated).JSON(d)
}

func (h *DesignHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "design not found"})
	}
	d, err := h.Designs.GetDesign(id)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "design not found"})
	}
	if err != nil {
		log.Error(c, "design.get", err, map[string]any{"design": id})
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch design"})
	}
	return c.JSON(fiber.Map{
		"id":            d.ID,
		"productId":     d.ProductID,
		"variantId":     d.VariantID,
		"templateId":    d.TemplateID,
		"customization": d.Customization(),
		"createdAt":     d.CreatedAt,
	})
}
