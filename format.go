package xsdtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Render renders v as its canonical XSD lexical form, together with the
// datatype tag inferred from v's sentinel fields: a zero month means
// gYear, a zero day means gYearMonth, an hour of -1 means date, and
// anything else means dateTime. Render never fails: every DateTime64
// produced by New or Parse is representable.
func Render(v DateTime64) (string, DatatypeTag) {
	tag := tagOf(v)

	year := formatYear(v.Year())
	switch tag {
	case TagGYear:
		return year + v.TimeZone().String(), tag
	case TagGYearMonth:
		return year + "-" + twoDigits(v.Month()) + v.TimeZone().String(), tag
	case TagDate:
		return year + "-" + twoDigits(v.Month()) + "-" + twoDigits(v.Day()) + v.TimeZone().String(), tag
	default:
		datePart := year + "-" + twoDigits(v.Month()) + "-" + twoDigits(v.Day())
		timePart := twoDigits(v.Hour()) + ":" + twoDigits(v.Minute()) + ":" + formatSecond(v)
		return datePart + "T" + timePart + v.TimeZone().String(), tag
	}
}

func tagOf(v DateTime64) DatatypeTag {
	switch {
	case v.Month() == 0:
		return TagGYear
	case v.Day() == 0:
		return TagGYearMonth
	case v.Hour() == minHour:
		return TagDate
	default:
		return TagDateTime
	}
}

func twoDigits(v int) string {
	return fmt.Sprintf("%02d", v)
}

// formatYear renders year padded to at least four digits, with a
// leading '-' for negative years, matching the canonical XSD lexical
// form.
func formatYear(year int) string {
	sign := ""
	abs := year
	if year < 0 {
		sign = "-"
		abs = -year
	}
	digits := strconv.Itoa(abs)
	for len(digits) < 4 {
		digits = "0" + digits
	}
	return sign + digits
}

// fracDecimalScale converts a numerator over 1024 into an exact
// numerator over 10^10: 1024 == 2^10 and 10^10 == 2^10 * 5^10, so
// multiplying by 5^10 yields an exact integer with no rounding.
const fracDecimalScale = 9765625 // 5^10

// formatSecond renders the second field with the minimum number of
// fractional digits needed to represent the stored 1024-denominator
// fixed-point value exactly, with no trailing zeros and no decimal
// point when the fraction is zero.
func formatSecond(v DateTime64) string {
	raw := getField[uint64](uint64(v), fieldFractionalSecs)
	whole := raw / 1024
	frac := raw % 1024

	s := twoDigits(int(whole))
	if frac == 0 {
		return s
	}

	fracDigits := frac * fracDecimalScale
	fracStr := fmt.Sprintf("%010d", fracDigits)
	fracStr = strings.TrimRight(fracStr, "0")
	return s + "." + fracStr
}
