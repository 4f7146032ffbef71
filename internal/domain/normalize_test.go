package domain

import "testing"

func TestNormalizeTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "RFP", "rfp"},
		{"trims whitespace", "  FAR  ", "far"},
		{"already normalized", "sow", "sow"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"inner spaces preserved", "Best And Final Offer", "best and final offer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTerm(tt.in); got != tt.want {
				t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAcronymBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard pattern", "ABC (Alpha Beta Corp)", "ABC"},
		{"no space before paren", "ABC(Alpha Beta Corp)", "ABC"},
		{"no parenthesis", "RFP", ""},
		{"leading parenthesis", "(orphan)", ""},
		{"only whitespace before paren", "   (x)", ""},
		{"multiple parens uses first", "A (B) (C)", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AcronymBase(tt.in); got != tt.want {
				t.Errorf("AcronymBase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsTestTerm(t *testing.T) {
	t.Parallel()

	if !IsTestTerm("_probe") {
		t.Error("leading underscore should be a test term")
	}
	if !IsTestTerm("probe_") {
		t.Error("trailing underscore should be a test term")
	}
	if IsTestTerm("snake_case") {
		t.Error("inner underscore is not a test marker")
	}
	if IsTestTerm("RFP") {
		t.Error("plain term is not a test term")
	}
}
