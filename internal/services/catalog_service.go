package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devheloisa/Cadastro-Produtos/internal/domain"
	"github.com/devheloisa/Cadastro-Produtos/internal/repos"
	"github.com/devheloisa/Cadastro-Produtos/internal/validate"
)

// Uncategorized labels the margin-report group for products without a
// category.
const Uncategorized = "Uncategorized"

// CatalogService owns the in-memory product collection. It is loaded once at
// construction and is the source of truth for the process lifetime; every
// mutation rewrites the whole backing file through the store.
//
// Single-process, single-caller by design. Not safe for concurrent use.
type CatalogService struct {
	store    *repos.FileStore
	products []domain.Product
}

// NewCatalogService loads the catalog from the store. A malformed row or an
// unreadable file fails construction; a missing file starts empty.
func NewCatalogService(store *repos.FileStore) (*CatalogService, error) {
	s := &CatalogService{store: store}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CatalogService) load() error {
	records, err := s.store.Load()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	// First row is the header, whatever it contains.
	for _, rec := range records[1:] {
		p, err := repos.DecodeProduct(rec)
		if err != nil {
			return err
		}
		s.products = append(s.products, p)
	}
	return nil
}

func (s *CatalogService) save() error {
	records := make([][]string, 0, len(s.products)+1)
	records = append(records, repos.Header())
	for _, p := range s.products {
		records = append(records, repos.EncodeProduct(p))
	}
	return s.store.Save(records)
}

// Register validates p and inserts it, replacing any product with the same
// code. With checkUniqueness an existing code fails with DuplicateCodeError
// instead of replacing. On a save failure the in-memory insert is kept and
// the StorageError is returned; the next successful save reconverges the
// file.
func (s *CatalogService) Register(p domain.Product, checkUniqueness bool) error {
	if err := s.validateProduct(p, checkUniqueness); err != nil {
		return err
	}
	s.removeByCode(p.Code)
	s.products = append(s.products, p.Clone())
	return s.save()
}

// Delete removes the product matching code case-insensitively after
// trimming. It reports whether anything was removed and persists only when
// something was.
func (s *CatalogService) Delete(code string) (bool, error) {
	target := strings.TrimSpace(code)
	if target == "" {
		return false, nil
	}
	if !s.removeByCode(target) {
		return false, nil
	}
	return true, s.save()
}

// FindByCode returns the first product matching code case-insensitively.
func (s *CatalogService) FindByCode(code string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.CodeEquals(code) {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

// ListAll returns a defensive copy of the collection in insertion order.
func (s *CatalogService) ListAll() []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

// UpcomingExpirations returns products whose expiry date falls between today
// and today+withinDays inclusive, soonest first.
func (s *CatalogService) UpcomingExpirations(withinDays int) []domain.Product {
	today := dateOnly(time.Now())
	limit := today.AddDate(0, 0, withinDays)

	out := []domain.Product{}
	for _, p := range s.products {
		if p.ExpiryDate.IsZero() {
			continue
		}
		d := dateOnly(p.ExpiryDate)
		if d.Before(today) || d.After(limit) {
			continue
		}
		out = append(out, p.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(out[j].ExpiryDate)
	})
	return out
}

// LowStock returns products with stock strictly below threshold, lowest
// quantity first.
func (s *CatalogService) LowStock(threshold int) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.StockQuantity < threshold {
			out = append(out, p.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StockQuantity < out[j].StockQuantity
	})
	return out
}

// AverageMarginByCategory averages (sale-purchase)/purchase per category
// name. Products without a category fold into the Uncategorized group; only
// products with a positive purchase price and a present sale price count.
// Per-product margins are rounded half-up to 4 places before averaging.
func (s *CatalogService) AverageMarginByCategory() map[string]decimal.Decimal {
	sums := map[string]decimal.Decimal{}
	counts := map[string]int64{}

	for _, p := range s.products {
		if !p.PurchasePrice.Valid || !p.PurchasePrice.Decimal.IsPositive() || !p.SalePrice.Valid {
			continue
		}
		margin := p.SalePrice.Decimal.
			Sub(p.PurchasePrice.Decimal).
			DivRound(p.PurchasePrice.Decimal, 4)

		key := Uncategorized
		if p.Category != nil {
			key = p.Category.Name
		}
		sums[key] = sums[key].Add(margin)
		counts[key]++
	}

	out := make(map[string]decimal.Decimal, len(sums))
	for key, sum := range sums {
		out[key] = sum.DivRound(decimal.NewFromInt(counts[key]), 4)
	}
	return out
}

// ListBySector returns products whose category sector matches the given one
// case-insensitively, ordered by product name. A blank sector yields an
// empty result rather than an error.
func (s *CatalogService) ListBySector(sector string) []domain.Product {
	target, ok := validate.Sector(sector)
	if !ok {
		return []domain.Product{}
	}

	out := []domain.Product{}
	for _, p := range s.products {
		if p.Category == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(p.Category.Sector), target) {
			out = append(out, p.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// validateProduct runs the registration rules in order; the first violation
// wins and its message surfaces to the caller verbatim.
func (s *CatalogService) validateProduct(p domain.Product, checkUniqueness bool) error {
	code, ok := validate.Code(p.Code)
	if !ok {
		return fail("code.format", "code must be exactly 8 alphanumeric characters")
	}
	if checkUniqueness {
		if _, exists := s.FindByCode(code); exists {
			return &domain.DuplicateCodeError{Code: code}
		}
	}
	if _, ok := validate.ProductName(p.Name); !ok {
		return fail("name.length", "name is required (minimum 2 characters)")
	}
	today := dateOnly(time.Now())
	if !p.ManufactureDate.IsZero() && dateOnly(p.ManufactureDate).After(today) {
		return fail("manufacture.future", "manufacture date cannot be in the future")
	}
	if !p.ManufactureDate.IsZero() && !p.ExpiryDate.IsZero() &&
		dateOnly(p.ExpiryDate).Before(dateOnly(p.ManufactureDate)) {
		return fail("expiry.order", "expiry date cannot be before the manufacture date")
	}
	if !p.PurchasePrice.Valid || !p.PurchasePrice.Decimal.IsPositive() {
		return fail("purchase.positive", "purchase price must be positive")
	}
	if !p.SalePrice.Valid || !p.SalePrice.Decimal.IsPositive() {
		return fail("sale.positive", "sale price must be positive")
	}
	if p.SalePrice.Decimal.Cmp(p.PurchasePrice.Decimal) <= 0 {
		return fail("price.order", "sale price must be greater than the purchase price")
	}
	if p.StockQuantity < 0 {
		return fail("stock.negative", "stock quantity cannot be negative")
	}
	return nil
}

func fail(rule, msg string) error {
	return &domain.ValidationError{Rule: rule, Message: msg}
}

func (s *CatalogService) removeByCode(code string) bool {
	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.CodeEquals(code) {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	return removed
}

// dateOnly collapses a timestamp to its calendar day so dates parsed from
// the file and wall-clock "today" compare on the same footing.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
