package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBahtText(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "ศูนย์บาทถ้วน"},
		{"one", "1", "หนึ่งบาทถ้วน"},
		{"ten keeps bare sib", "10", "สิบบาทถ้วน"},
		{"eleven", "11", "สิบเอ็ดบาทถ้วน"},
		{"twenty-one uses yi-sib and et", "21", "ยี่สิบเอ็ดบาทถ้วน"},
		{"one hundred", "100", "หนึ่งร้อยบาทถ้วน"},
		{"one hundred one", "101", "หนึ่งร้อยเอ็ดบาทถ้วน"},
		{"one thousand two hundred", "1200", "หนึ่งพันสองร้อยบาทถ้วน"},
		{"full six places", "987654", "เก้าแสนแปดหมื่นเจ็ดพันหกร้อยห้าสิบสี่บาทถ้วน"},
		{"one million", "1000000", "หนึ่งล้านบาทถ้วน"},
		{"millions recurse", "21000000", "ยี่สิบเอ็ดล้านบาทถ้วน"},
		{"million with remainder", "2500000", "สองล้านห้าแสนบาทถ้วน"},
		{"satang in digits", "963.50", "เก้าร้อยหกสิบสามบาท 50 สตางค์"},
		{"satang only", "0.75", "ศูนย์บาท 75 สตางค์"},
		{"satang rounding", "99.999", "หนึ่งร้อยบาทถ้วน"},
		{"negative total", "-214", "ลบสองร้อยสิบสี่บาทถ้วน"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BahtText(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("BahtText(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
