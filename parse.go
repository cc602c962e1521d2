package xsdtime

import "strconv"

// Parse parses an XSD gYear, gYearMonth, date, or dateTime lexical form
// into a DateTime64, inferring the datatype from which calendar fields
// are present in the input. It returns a *ParseError if s does not
// match any of the four accepted productions, or an *OutOfRange error
// if a field is syntactically well-formed but outside its XSD domain.
func Parse(s string) (DateTime64, error) {
	p := &scanner{s: s}

	year, err := p.parseYear()
	if err != nil {
		return 0, err
	}

	if p.atEnd() || p.peekTZStart() {
		tz, err := p.parseOptionalTZ()
		if err != nil {
			return 0, err
		}
		if !p.atEnd() {
			return 0, parseError(s)
		}
		return NewGYear(year, tz)
	}

	if !p.consumeByte('-') {
		return 0, parseError(s)
	}
	if p.dashIntroducesOffset() {
		tz, err := p.parseTZOffset()
		if err != nil {
			return 0, err
		}
		if !p.atEnd() {
			return 0, parseError(s)
		}
		return NewGYear(year, tz)
	}

	month, err := p.parseTwoDigits("month")
	if err != nil {
		return 0, err
	}
	if month == 0 {
		return 0, outOfRange("month", month)
	}

	if p.atEnd() || p.peekTZStart() {
		tz, err := p.parseOptionalTZ()
		if err != nil {
			return 0, err
		}
		if !p.atEnd() {
			return 0, parseError(s)
		}
		return NewGYearMonth(year, month, tz)
	}

	if !p.consumeByte('-') {
		return 0, parseError(s)
	}
	if p.dashIntroducesOffset() {
		tz, err := p.parseTZOffset()
		if err != nil {
			return 0, err
		}
		if !p.atEnd() {
			return 0, parseError(s)
		}
		return NewGYearMonth(year, month, tz)
	}

	day, err := p.parseTwoDigits("day")
	if err != nil {
		return 0, err
	}
	if day == 0 {
		return 0, outOfRange("day", day)
	}

	if p.atEnd() || p.peekTZStart() || p.peekByte('-') {
		tz, err := p.parseOptionalTZ()
		if err != nil {
			return 0, err
		}
		if !p.atEnd() {
			return 0, parseError(s)
		}
		return NewDate(year, month, day, tz)
	}

	if !p.consumeByte('T') {
		return 0, parseError(s)
	}

	hour, err := p.parseTwoDigits("hour")
	if err != nil {
		return 0, err
	}
	if !p.consumeByte(':') {
		return 0, parseError(s)
	}
	minute, err := p.parseTwoDigits("minute")
	if err != nil {
		return 0, err
	}
	if !p.consumeByte(':') {
		return 0, parseError(s)
	}
	second, err := p.parseSecond()
	if err != nil {
		return 0, err
	}

	tz, err := p.parseOptionalTZ()
	if err != nil {
		return 0, err
	}
	if !p.atEnd() {
		return 0, parseError(s)
	}

	return NewDateTime(year, month, day, hour, minute, second, tz)
}

// scanner is a minimal hand-rolled recursive-descent reader over the
// four fixed XSD productions: no backtracking is needed because every
// production is disambiguated by a bounded lookahead.
type scanner struct {
	s   string
	pos int
}

func (p *scanner) atEnd() bool {
	return p.pos >= len(p.s)
}

func (p *scanner) peekByte(b byte) bool {
	return p.pos < len(p.s) && p.s[p.pos] == b
}

func (p *scanner) peekTZStart() bool {
	return p.peekByte('Z') || p.peekByte('+')
}

func (p *scanner) consumeByte(b byte) bool {
	if !p.peekByte(b) {
		return false
	}
	p.pos++
	return true
}

// dashIntroducesOffset reports whether the '-' just consumed by the
// caller begins a "-HH:MM" time-zone offset rather than the next
// calendar field. Both productions start with two digits; the
// difference is whether a ':' follows them.
func (p *scanner) dashIntroducesOffset() bool {
	if p.pos+2 >= len(p.s) {
		return false
	}
	if !isDigit(p.s[p.pos]) || !isDigit(p.s[p.pos+1]) {
		return false
	}
	return p.s[p.pos+2] == ':'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseYear consumes an optional sign and the YEAR production: four or
// more digits, with no leading zero unless the digit run is exactly
// four characters long.
func (p *scanner) parseYear() (int, error) {
	neg := p.consumeByte('-')

	digitsStart := p.pos
	for !p.atEnd() && isDigit(p.s[p.pos]) {
		p.pos++
	}
	digits := p.s[digitsStart:p.pos]

	if len(digits) < 4 {
		return 0, parseError(p.s)
	}
	if digits[0] == '0' && len(digits) != 4 {
		return 0, parseError(p.s)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, parseError(p.s)
	}
	if neg {
		n = -n
	}

	if n < minYear || n > maxYear {
		return 0, outOfRange("year", n)
	}

	return n, nil
}

// parseTwoDigits reads exactly two decimal digits, returning a
// *ParseError if they are not both digits. name only labels the field
// at the call site; the value is not range-checked here, so any
// *OutOfRange error for it comes from the caller or the setters.
func (p *scanner) parseTwoDigits(name string) (int, error) {
	if p.pos+2 > len(p.s) || !isDigit(p.s[p.pos]) || !isDigit(p.s[p.pos+1]) {
		return 0, parseError(p.s)
	}
	n, _ := strconv.Atoi(p.s[p.pos : p.pos+2])
	p.pos += 2
	return n, nil
}

// parseSecond reads the SECOND production: a two-digit integer part,
// optionally followed by '.' and one or more fractional digits.
func (p *scanner) parseSecond() (float64, error) {
	intStart := p.pos
	if p.pos+2 > len(p.s) || !isDigit(p.s[p.pos]) || !isDigit(p.s[p.pos+1]) {
		return 0, parseError(p.s)
	}
	p.pos += 2

	if !p.consumeByte('.') {
		n, _ := strconv.Atoi(p.s[intStart:p.pos])
		return float64(n), nil
	}

	fracStart := p.pos
	for !p.atEnd() && isDigit(p.s[p.pos]) {
		p.pos++
	}
	if p.pos == fracStart {
		return 0, parseError(p.s)
	}

	v, err := strconv.ParseFloat(p.s[intStart:p.pos], 64)
	if err != nil {
		return 0, parseError(p.s)
	}
	return v, nil
}

// parseOptionalTZ reads a TZ production if one is present at the
// current position: "Z", or "+HH:MM"/"-HH:MM". A "+00:00" or "-00:00"
// offset is folded into TZUTC, since both denote the same zero offset.
func (p *scanner) parseOptionalTZ() (TimeZone, error) {
	if p.atEnd() {
		return TZAbsent(), nil
	}
	if p.consumeByte('Z') {
		return TZUTC(), nil
	}
	if p.peekByte('+') {
		p.pos++
		return p.parseTZOffset()
	}
	if p.peekByte('-') {
		p.pos++
		return p.parseTZOffset()
	}
	return TZAbsent(), nil
}

// parseTZOffset reads "HH:MM" for a sign already consumed by the
// caller (the sign character sits immediately before p.pos).
func (p *scanner) parseTZOffset() (TimeZone, error) {
	neg := p.s[p.pos-1] == '-'

	hh, err := p.parseTwoDigits("timeZone")
	if err != nil {
		return TimeZone{}, err
	}
	if !p.consumeByte(':') {
		return TimeZone{}, parseError(p.s)
	}
	mm, err := p.parseTwoDigits("timeZone")
	if err != nil {
		return TimeZone{}, err
	}

	if mm != 0 {
		return TimeZone{}, outOfRange("timeZone", mm)
	}
	if hh < 0 || hh > maxTimeZoneHours {
		return TimeZone{}, outOfRange("timeZone", hh)
	}

	if hh == 0 {
		return TZUTC(), nil
	}
	if neg {
		hh = -hh
	}
	return TZOffset(hh)
}
