package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/devheloisa/Cadastro-Produtos/internal/domain"
	applog "github.com/devheloisa/Cadastro-Produtos/internal/log"
	"github.com/devheloisa/Cadastro-Produtos/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List returns the full catalog, or the sector slice when ?sector= is given.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if sector := c.Query("sector"); sector != "" {
		return c.JSON(toViews(h.Catalog.ListBySector(sector)))
	}
	return c.JSON(toViews(h.Catalog.ListAll()))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, ok := h.Catalog.FindByCode(c.Params("code"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(toView(p))
}

// Create registers a new product with the uniqueness check on.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, ok := h.parseBody(c)
	if !ok {
		return nil
	}
	if err := h.Catalog.Register(p, true); err != nil {
		return coreError(c, err)
	}
	applog.Audit(c, "product.register", map[string]any{"code": p.Code})
	return c.Status(fiber.StatusCreated).JSON(toView(p))
}

// Replace registers with the uniqueness check off: the explicit
// insert-or-replace path the form uses after the user confirms.
func (h *ProductHandler) Replace(c *fiber.Ctx) error {
	p, ok := h.parseBody(c)
	if !ok {
		return nil
	}
	p.Code = c.Params("code")
	if err := h.Catalog.Register(p, false); err != nil {
		return coreError(c, err)
	}
	applog.Audit(c, "product.replace", map[string]any{"code": p.Code})
	return c.JSON(toView(p))
}

// Delete removes by code. A missing code is not an error; the response
// carries a deleted flag instead.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Catalog.Delete(c.Params("code"))
	if err != nil {
		return coreError(c, err)
	}
	if deleted {
		applog.Audit(c, "product.delete", map[string]any{"code": c.Params("code")})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// parseBody decodes and converts the payload, writing a 400 itself when the
// input is unusable. The bool reports whether a product was produced.
func (h *ProductHandler) parseBody(c *fiber.Ctx) (domain.Product, bool) {
	var form productForm
	if err := c.BodyParser(&form); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		return domain.Product{}, false
	}
	p, err := form.toDomain()
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"reason": err.Error()})
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return domain.Product{}, false
	}
	return p, true
}

// coreError maps the core's typed failures onto HTTP statuses. Messages
// surface verbatim; anything unrecognized goes to the central error handler.
func coreError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": vErr.Message,
			"rule":  vErr.Rule,
		})
	case errors.Is(err, domain.ErrDuplicateCode):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		applog.Error(c, "storage.save.fail", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "catalog file is unavailable; the change is kept in memory and will be retried on the next save",
		})
	default:
		return err
	}
}
