// Package numeral reads integers aloud in Thai.
//
// ToWords follows the standard spoken form: ten is สิบ (never หนึ่งสิบ), twenty
// is ยี่สิบ, a trailing one after any higher digit in the same six-digit group
// is เอ็ด, and every six digits start a new ล้าน group.
package numeral

import (
	"strings"
)

var digitWords = [10]string{
	"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า",
}

// place names for positions 0..5 within a six-digit group
var placeWords = [6]string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}

const (
	million = "ล้าน"
	point   = "จุด"
)

// MaxDigits is the longest digit run ToWords is used for; longer runs are read digit by digit
const MaxDigits = 18

// ToWords returns the spoken Thai form of n
func ToWords(n uint64) string {
	if n == 0 {
		return digitWords[0]
	}
	var b strings.Builder
	writeNumber(&b, n)
	return b.String()
}

func writeNumber(b *strings.Builder, n uint64) {
	hi, lo := n/1_000_000, n%1_000_000
	if hi > 0 {
		writeNumber(b, hi)
		b.WriteString(million)
	}
	writeGroup(b, lo, hi > 0)
}

// writeGroup renders 0 < g < 1_000_000; zero renders nothing. afterMillion
// marks a group that follows ล้าน, where a lone one is still read เอ็ด
func writeGroup(b *strings.Builder, g uint64, afterMillion bool) {
	if g == 0 {
		return
	}
	var ds [6]int
	for i := 0; i < 6; i++ {
		ds[i] = int(g % 10)
		g /= 10
	}
	for pos := 5; pos >= 0; pos-- {
		d := ds[pos]
		if d == 0 {
			continue
		}
		switch {
		case pos == 1 && d == 1:
			b.WriteString(placeWords[1])
		case pos == 1 && d == 2:
			b.WriteString("ยี่")
			b.WriteString(placeWords[1])
		case pos == 0 && d == 1 && (afterMillion || hasHigher(ds)):
			b.WriteString("เอ็ด")
		default:
			b.WriteString(digitWords[d])
			b.WriteString(placeWords[pos])
		}
	}
}

func hasHigher(ds [6]int) bool {
	for _, d := range ds[1:] {
		if d != 0 {
			return true
		}
	}
	return false
}

// DigitValue returns the value of a Western or Thai decimal digit
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '๐' && r <= '๙':
		return int(r - '๐'), true
	}
	return 0, false
}

// IsDigit reports whether r is a Western or Thai decimal digit
func IsDigit(r rune) bool {
	_, ok := DigitValue(r)
	return ok
}

// ParseDigits parses a run made only of Western or Thai digits.
// ok is false for empty input, non-digit runes, or runs longer than MaxDigits
func ParseDigits(s string) (n uint64, ok bool) {
	count := 0
	for _, r := range s {
		d, isDigit := DigitValue(r)
		if !isDigit {
			return 0, false
		}
		count++
		if count > MaxDigits {
			return 0, false
		}
		n = n*10 + uint64(d)
	}
	return n, count > 0
}

// SpellDigits reads each digit of s on its own, skipping anything that is not a digit
func SpellDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := DigitValue(r); ok {
			b.WriteString(digitWords[d])
		}
	}
	return b.String()
}

// Read renders a digit run, optionally with a decimal part, as spoken Thai.
// The integer part is read as a whole number when it fits; otherwise digit by digit.
// The fractional part is always read digit by digit after จุด
func Read(intPart, fracPart string) string {
	var b strings.Builder
	if n, ok := ParseDigits(intPart); ok {
		b.WriteString(ToWords(n))
	} else {
		b.WriteString(SpellDigits(intPart))
	}
	if fracPart != "" {
		b.WriteString(point)
		b.WriteString(SpellDigits(fracPart))
	}
	return b.String()
}
