package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the optional grouping embedded by value inside a Product.
// ID 0 means the category was recorded without an id.
type Category struct {
	ID          int
	Name        string
	Description string
	Sector      string
}

// Product is a catalog record. Code is the uniqueness key and is compared
// case-insensitively. A zero time.Time means the date is absent; prices use
// NullDecimal so an empty column stays distinguishable from zero.
type Product struct {
	Code            string
	Name            string
	Description     string
	ManufactureDate time.Time
	ExpiryDate      time.Time
	PurchasePrice   decimal.NullDecimal
	SalePrice       decimal.NullDecimal
	StockQuantity   int
	Category        *Category
}

// CodeEquals reports whether the product's code matches the given one,
// ignoring case and outer whitespace.
func (p Product) CodeEquals(code string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Code), strings.TrimSpace(code))
}

// Clone returns a copy that shares no mutable state with the receiver, so
// callers holding results of list operations cannot reach service state.
func (p Product) Clone() Product {
	out := p
	if p.Category != nil {
		c := *p.Category
		out.Category = &c
	}
	return out
}
