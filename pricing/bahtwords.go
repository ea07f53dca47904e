package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var thaiDigits = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
var thaiPlaces = []string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}

// BahtText renders an amount as Thai-language currency words for printed
// documents, e.g. "หนึ่งพันสองร้อยบาทถ้วน" or "เก้าร้อยบาท 50 สตางค์".
//
// Whole-baht amounts end in "ถ้วน"; a satang remainder is appended in digits.
// Magnitudes of a million and above recurse on the ล้าน scale. The function is
// defined for non-negative input; a negative amount (a discount exceeding the
// subtotal) is rendered with a leading "ลบ".
func BahtText(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	totalSatang := amount.Mul(hundred).Round(0).IntPart()
	baht := totalSatang / 100
	satang := totalSatang % 100

	if baht == 0 && satang == 0 {
		return "ศูนย์บาทถ้วน"
	}

	words := readThaiNumber(baht)
	if baht == 0 {
		words = thaiDigits[0]
	}
	if negative {
		words = "ลบ" + words
	}

	if satang == 0 {
		return words + "บาทถ้วน"
	}
	return words + "บาท " + strconv.FormatInt(satang, 10) + " สตางค์"
}

func readThaiNumber(number int64) string {
	if number <= 0 {
		return ""
	}

	// ล้าน repeats for every further six digits.
	if number >= 1000000 {
		var b strings.Builder
		b.WriteString(readThaiNumber(number / 1000000))
		b.WriteString("ล้าน")
		if rem := number % 1000000; rem > 0 {
			b.WriteString(readThaiNumberBelowMillion(rem))
		}
		return b.String()
	}

	return readThaiNumberBelowMillion(number)
}

// readThaiNumberBelowMillion spells out 1..999999 digit by digit, applying the
// Thai irregulars: tens digit 1 is "สิบ", tens digit 2 is "ยี่สิบ", and a
// trailing 1 of a multi-digit number is "เอ็ด".
func readThaiNumberBelowMillion(number int64) string {
	str := strconv.FormatInt(number, 10)
	length := len(str)
	var b strings.Builder

	for i, ch := range str {
		digit := int(ch - '0')
		place := length - i - 1
		if digit == 0 {
			continue
		}

		switch place {
		case 0:
			if digit == 1 && length > 1 {
				b.WriteString("เอ็ด")
			} else {
				b.WriteString(thaiDigits[digit])
			}
		case 1:
			switch digit {
			case 1:
				b.WriteString("สิบ")
			case 2:
				b.WriteString("ยี่สิบ")
			default:
				b.WriteString(thaiDigits[digit])
				b.WriteString(thaiPlaces[place])
			}
		default:
			b.WriteString(thaiDigits[digit])
			b.WriteString(thaiPlaces[place])
		}
	}

	return b.String()
}
