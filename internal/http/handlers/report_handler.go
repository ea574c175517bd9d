package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devheloisa/Cadastro-Produtos/internal/services"
	"github.com/devheloisa/Cadastro-Produtos/internal/validate"
)

type ReportHandler struct {
	Catalog *services.CatalogService
}

// Expiring lists products whose expiry date falls within ?days= from today
// (default 30), soonest first.
func (h *ReportHandler) Expiring(c *fiber.Ctx) error {
	days := validate.Days(c.Query("days"), 30)
	return c.JSON(fiber.Map{
		"days":     days,
		"products": toViews(h.Catalog.UpcomingExpirations(days)),
	})
}

// LowStock lists products with stock strictly below ?threshold= (default 10).
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := validate.Threshold(c.Query("threshold"), 10)
	return c.JSON(fiber.Map{
		"threshold": threshold,
		"products":  toViews(h.Catalog.LowStock(threshold)),
	})
}

// Margins reports the average margin per category name, 4 fractional digits.
func (h *ReportHandler) Margins(c *fiber.Ctx) error {
	margins := h.Catalog.AverageMarginByCategory()
	out := make(map[string]string, len(margins))
	for name, m := range margins {
		out[name] = m.StringFixed(4)
	}
	return c.JSON(fiber.Map{"margins": out})
}
