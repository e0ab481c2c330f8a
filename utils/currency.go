package utils

import "strconv"

// FormatCurrencyKRW formats an integer won amount with thousands
// separators, e.g. 4000 -> "4,000원".
func FormatCurrencyKRW(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	out := make([]byte, 0, len(digits)+len(digits)/3+1)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	s := string(out)
	if negative {
		s = "-" + s
	}
	return s + "원"
}
