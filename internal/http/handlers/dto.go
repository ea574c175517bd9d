package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devheloisa/Cadastro-Produtos/internal/domain"
	"github.com/devheloisa/Cadastro-Produtos/internal/repos"
)

// productView is the JSON shape handed back to clients. Dates and prices
// travel as plain strings in the persisted formats; locale-specific display
// formatting is the client's job.
type productView struct {
	Code            string        `json:"code"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	ManufactureDate string        `json:"manufactureDate,omitempty"`
	ExpiryDate      string        `json:"expiryDate,omitempty"`
	PurchasePrice   string        `json:"purchasePrice,omitempty"`
	SalePrice       string        `json:"salePrice,omitempty"`
	StockQuantity   int           `json:"stockQuantity"`
	Category        *categoryView `json:"category,omitempty"`
}

type categoryView struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Sector      string `json:"sector,omitempty"`
}

func toView(p domain.Product) productView {
	v := productView{
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		StockQuantity: p.StockQuantity,
	}
	if !p.ManufactureDate.IsZero() {
		v.ManufactureDate = p.ManufactureDate.Format(repos.DateLayout)
	}
	if !p.ExpiryDate.IsZero() {
		v.ExpiryDate = p.ExpiryDate.Format(repos.DateLayout)
	}
	if p.PurchasePrice.Valid {
		v.PurchasePrice = p.PurchasePrice.Decimal.String()
	}
	if p.SalePrice.Valid {
		v.SalePrice = p.SalePrice.Decimal.String()
	}
	if c := p.Category; c != nil {
		v.Category = &categoryView{ID: c.ID, Name: c.Name, Description: c.Description, Sector: c.Sector}
	}
	return v
}

func toViews(ps []domain.Product) []productView {
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toView(p))
	}
	return out
}

// productForm is the inbound payload: plain field values, exactly what the
// core's collaborator interface expects.
type productForm struct {
	Code            string        `json:"code"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	ManufactureDate string        `json:"manufactureDate"`
	ExpiryDate      string        `json:"expiryDate"`
	PurchasePrice   string        `json:"purchasePrice"`
	SalePrice       string        `json:"salePrice"`
	StockQuantity   int           `json:"stockQuantity"`
	Category        *categoryForm `json:"category"`
}

type categoryForm struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Sector      string `json:"sector"`
}

// toDomain converts shell strings into domain values. Syntax problems are
// shell-side input errors, reported before the core ever sees the product.
func (f productForm) toDomain() (domain.Product, error) {
	p := domain.Product{
		Code:          f.Code,
		Name:          f.Name,
		Description:   f.Description,
		StockQuantity: f.StockQuantity,
	}

	var err error
	if p.ManufactureDate, err = parseFormDate(f.ManufactureDate, "manufactureDate"); err != nil {
		return domain.Product{}, err
	}
	if p.ExpiryDate, err = parseFormDate(f.ExpiryDate, "expiryDate"); err != nil {
		return domain.Product{}, err
	}
	if p.PurchasePrice, err = parseFormPrice(f.PurchasePrice, "purchasePrice"); err != nil {
		return domain.Product{}, err
	}
	if p.SalePrice, err = parseFormPrice(f.SalePrice, "salePrice"); err != nil {
		return domain.Product{}, err
	}

	if c := f.Category; c != nil && (c.ID != 0 || c.Name != "" || c.Description != "" || c.Sector != "") {
		p.Category = &domain.Category{ID: c.ID, Name: c.Name, Description: c.Description, Sector: c.Sector}
	}
	return p, nil
}

func parseFormDate(s, field string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(repos.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a DD/MM/YYYY date", field)
	}
	return t, nil
}

// parseFormPrice accepts a decimal literal, tolerating a currency prefix and
// stray spaces the way the original form did.
func parseFormPrice(s, field string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s must be a decimal number", field)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
