package validate_test

import (
	"testing"

	"github.com/devheloisa/Cadastro-Produtos/internal/validate"
)

func TestCode(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"ABCD1234", true},
		{"  abcd0000  ", true},
		{"ABC1234", false},
		{"ABCD12345", false},
		{"ABCD 123", false},
		{"ABCD-123", false},
		{"", false},
	}
	for _, tc := range cases {
		if _, ok := validate.Code(tc.in); ok != tc.ok {
			t.Errorf("Code(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestProductName(t *testing.T) {
	if _, ok := validate.ProductName("  a  "); ok {
		t.Error("single-rune name must fail")
	}
	if _, ok := validate.ProductName(" ab "); !ok {
		t.Error("two-rune name must pass")
	}
}

func TestDaysAndThreshold(t *testing.T) {
	if got := validate.Days("", 30); got != 30 {
		t.Errorf("Days default = %d", got)
	}
	if got := validate.Days("9999", 30); got != 365 {
		t.Errorf("Days clamp = %d", got)
	}
	if got := validate.Days("-4", 30); got != 30 {
		t.Errorf("negative Days = %d", got)
	}
	if got := validate.Threshold(" 12 ", 10); got != 12 {
		t.Errorf("Threshold = %d", got)
	}
	if got := validate.Threshold("x", 10); got != 10 {
		t.Errorf("Threshold fallback = %d", got)
	}
}
