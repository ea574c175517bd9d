package repos

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devheloisa/Cadastro-Produtos/internal/domain"
)

// Separator splits columns in the persisted file.
const Separator = ";"

// DateLayout is the on-disk calendar date format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// header is the fixed 12-column schema, in persisted order.
var header = []string{
	"code", "name", "description",
	"manufactureDate", "expiryDate",
	"purchasePrice", "salePrice", "stockQuantity",
	"categoryId", "categoryName", "categoryDescription", "categorySector",
}

// Header returns the schema row written as the first line of every save.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

var wsRun = regexp.MustCompile(`\s{2,}`)

// Sanitize normalizes a text field so the encoded line can never contain an
// unescaped separator, quote or line break. Idempotent.
func Sanitize(s string) string {
	t := strings.TrimSpace(s)
	t = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(t)
	t = strings.ReplaceAll(t, Separator, ",")
	t = strings.ReplaceAll(t, `"`, "'")
	return wsRun.ReplaceAllString(t, " ")
}

// EncodeProduct converts a product into a raw record aligned to the schema.
func EncodeProduct(p domain.Product) []string {
	rec := make([]string, len(header))
	rec[0] = Sanitize(p.Code)
	rec[1] = Sanitize(p.Name)
	rec[2] = Sanitize(p.Description)
	rec[3] = formatDate(p.ManufactureDate)
	rec[4] = formatDate(p.ExpiryDate)
	rec[5] = formatPrice(p.PurchasePrice)
	rec[6] = formatPrice(p.SalePrice)
	rec[7] = strconv.Itoa(p.StockQuantity)
	if c := p.Category; c != nil {
		rec[8] = strconv.Itoa(c.ID)
		rec[9] = Sanitize(c.Name)
		rec[10] = Sanitize(c.Description)
		rec[11] = Sanitize(c.Sector)
	}
	return rec
}

// DecodeProduct converts a raw record back into a product. Missing trailing
// columns read as empty; a present field that fails type parsing returns a
// MalformedRecordError carrying the line content.
func DecodeProduct(rec []string) (domain.Product, error) {
	var p domain.Product
	p.Code = field(rec, 0)
	p.Name = field(rec, 1)
	p.Description = field(rec, 2)

	var err error
	if p.ManufactureDate, err = parseDate(rec, 3, "manufactureDate"); err != nil {
		return domain.Product{}, err
	}
	if p.ExpiryDate, err = parseDate(rec, 4, "expiryDate"); err != nil {
		return domain.Product{}, err
	}
	if p.PurchasePrice, err = parsePrice(rec, 5, "purchasePrice"); err != nil {
		return domain.Product{}, err
	}
	if p.SalePrice, err = parsePrice(rec, 6, "salePrice"); err != nil {
		return domain.Product{}, err
	}
	if p.StockQuantity, err = parseInt(rec, 7, "stockQuantity"); err != nil {
		return domain.Product{}, err
	}

	catName := field(rec, 9)
	catDesc := field(rec, 10)
	catSector := field(rec, 11)
	if field(rec, 8) != "" || catName != "" || catDesc != "" || catSector != "" {
		id, err := parseInt(rec, 8, "categoryId")
		if err != nil {
			return domain.Product{}, err
		}
		p.Category = &domain.Category{ID: id, Name: catName, Description: catDesc, Sector: catSector}
	}
	return p, nil
}

// field reads column i with trim; a missing column reads as "".
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatPrice(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func parseDate(rec []string, i int, name string) (time.Time, error) {
	s := field(rec, i)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, malformed(rec, name, err)
	}
	return t, nil
}

func parsePrice(rec []string, i int, name string) (decimal.NullDecimal, error) {
	s := field(rec, i)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, malformed(rec, name, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func parseInt(rec []string, i int, name string) (int, error) {
	s := field(rec, i)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed(rec, name, err)
	}
	return n, nil
}

func malformed(rec []string, name string, cause error) error {
	return &domain.MalformedRecordError{
		Line:  strings.Join(rec, Separator),
		Field: name,
		Cause: cause,
	}
}
