package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDecimal_CoercesBadInputToZero(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain number", "1250.75", "1250.75"},
		{"padded", "  42 ", "42"},
		{"empty", "", "0"},
		{"non-numeric", "ห้าร้อย", "0"},
		{"partial garbage", "12x", "0"},
		{"negative", "-200", "-200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDecimal(tt.in)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseDecimal(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("  7 "); got != 7 {
		t.Errorf("ParseInt = %d, want 7", got)
	}
	if got := ParseInt("seven"); got != 0 {
		t.Errorf("ParseInt on garbage = %d, want 0", got)
	}
}

func TestParseBoolDefault(t *testing.T) {
	if !ParseBoolDefault("", true) {
		t.Error("empty input should keep the default")
	}
	if ParseBoolDefault("false", true) {
		t.Error("explicit false should win over the default")
	}
}
