package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devheloisa/Cadastro-Produtos/internal/services"
)

type PageHandler struct {
	Catalog *services.CatalogService
}

// Home renders the catalog listing page.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	products := toViews(h.Catalog.ListAll())
	return c.Render("home", fiber.Map{
		"Products": products,
		"Count":    len(products),
	})
}
