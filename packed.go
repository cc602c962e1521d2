package xsdtime

import "math"

// DateTime64 is a 64-bit packed representation of an XSD gYear,
// gYearMonth, date, or dateTime value. Comparisons and hashing are
// performed directly on the underlying unsigned integer, which makes
// them maximally cheap and gives the type a total order that a triple
// store's index can exploit without decoding.
//
// The seven most-significant bits are always zero and are reserved; an
// enclosing tagged-union representation may repurpose them.
//
// Granularity is encoded with three sentinels: month == 0 means "no
// month" (a gYear), day == 0 means "no day" (a gYearMonth), and hour ==
// -1 means "no time" (a date). Parse only produces values in which an
// hour != -1 comes with a month and a day, and a day != 0 with a month.
// New and the setters check each field against its own domain only and
// do not check these combinations. DateTime64 values are immutable;
// every setter below returns a new value rather than mutating the
// receiver.
type DateTime64 uint64

// New returns the DateTime64 for the given fields. Each field is
// validated independently against its XSD domain; the first field to
// fail validation is reported as an *OutOfRange error.
func New(year, month, day, hour, minute int, second float64, tz TimeZone) (DateTime64, error) {
	var (
		d   DateTime64
		err error
	)
	if d, err = d.SetYear(year); err != nil {
		return 0, err
	}
	if d, err = d.SetMonth(month); err != nil {
		return 0, err
	}
	if d, err = d.SetDay(day); err != nil {
		return 0, err
	}
	if d, err = d.SetHour(hour); err != nil {
		return 0, err
	}
	if d, err = d.SetMinute(minute); err != nil {
		return 0, err
	}
	if d, err = d.SetSecond(second); err != nil {
		return 0, err
	}
	if d, err = d.SetTimeZone(tz); err != nil {
		return 0, err
	}
	return d, nil
}

// NewGYear returns the DateTime64 for an xsd:gYear value.
func NewGYear(year int, tz TimeZone) (DateTime64, error) {
	return New(year, 0, 0, -1, 0, 0, tz)
}

// NewGYearMonth returns the DateTime64 for an xsd:gYearMonth value.
func NewGYearMonth(year, month int, tz TimeZone) (DateTime64, error) {
	return New(year, month, 0, -1, 0, 0, tz)
}

// NewDate returns the DateTime64 for an xsd:date value.
func NewDate(year, month, day int, tz TimeZone) (DateTime64, error) {
	return New(year, month, day, -1, 0, 0, tz)
}

// NewDateTime returns the DateTime64 for an xsd:dateTime value.
func NewDateTime(year, month, day, hour, minute int, second float64, tz TimeZone) (DateTime64, error) {
	return New(year, month, day, hour, minute, second, tz)
}

// ToBits returns the raw 64-bit unsigned representation of d.
func (d DateTime64) ToBits() uint64 {
	return uint64(d)
}

// FromBits reconstructs a DateTime64 from a value previously produced by
// ToBits. bits is not validated; a bit pattern that was not produced by
// ToBits on a valid DateTime64 makes every further operation on the
// result undefined.
func FromBits(bits uint64) DateTime64 {
	return DateTime64(bits)
}

// Equal reports whether d and other have the same bit representation.
func (d DateTime64) Equal(other DateTime64) bool {
	return d == other
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater
// than other, ordering unsigned on ToBits. This agrees with
// chronological order for values that share a time-zone marker; across
// different time zones the comparison is still a total, stable order,
// but the time zone acts only as a tie-breaker rather than being
// normalized away first.
func (d DateTime64) Compare(other DateTime64) int {
	a, b := uint64(d), uint64(other)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Hash returns a well-mixed 64-bit hash of d's bit representation,
// suitable for use as a map or index key.
func (d DateTime64) Hash() uint64 {
	x := uint64(d)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// HasTime reports whether d carries an hour component, i.e. whether d
// is a dateTime rather than a gYear, gYearMonth, or date.
func (d DateTime64) HasTime() bool {
	return d.Hour() != minHour
}

// Year returns the year component, in [-9999, 9999].
func (d DateTime64) Year() int {
	return getField[int](uint64(d), fieldYear) + minYear
}

// SetYear returns a copy of d with the year set to year.
func (d DateTime64) SetYear(year int) (DateTime64, error) {
	if year < minYear || year > maxYear {
		return d, outOfRange("year", year)
	}
	return DateTime64(withField(uint64(d), fieldYear, uint64(year-minYear))), nil
}

// Month returns the month component, in {0} ∪ [1, 12]; 0 means "no
// month" (a gYear value).
func (d DateTime64) Month() int {
	return getField[int](uint64(d), fieldMonth)
}

// SetMonth returns a copy of d with the month set to month.
func (d DateTime64) SetMonth(month int) (DateTime64, error) {
	if month < minMonth || month > maxMonth {
		return d, outOfRange("month", month)
	}
	return DateTime64(withField(uint64(d), fieldMonth, uint64(month))), nil
}

// Day returns the day-of-month component, in {0} ∪ [1, 31]; 0 means
// "no day" (a gYearMonth value).
func (d DateTime64) Day() int {
	return getField[int](uint64(d), fieldDay)
}

// SetDay returns a copy of d with the day set to day. It checks only
// that day is in range; it does not check that day is a legal
// day-of-month for the stored month (e.g. it accepts 31 February).
func (d DateTime64) SetDay(day int) (DateTime64, error) {
	if day < minDay || day > maxDay {
		return d, outOfRange("day", day)
	}
	return DateTime64(withField(uint64(d), fieldDay, uint64(day))), nil
}

// Hour returns the hour component, in {-1} ∪ [0, 23]; -1 means "no
// time" (a date value).
func (d DateTime64) Hour() int {
	return getField[int](uint64(d), fieldHour) + minHour
}

// SetHour returns a copy of d with the hour set to hour.
func (d DateTime64) SetHour(hour int) (DateTime64, error) {
	if hour < minHour || hour > maxHour {
		return d, outOfRange("hour", hour)
	}
	return DateTime64(withField(uint64(d), fieldHour, uint64(hour-minHour))), nil
}

// Minute returns the minute component, in [0, 59].
func (d DateTime64) Minute() int {
	return getField[int](uint64(d), fieldMinute)
}

// SetMinute returns a copy of d with the minute set to minute.
func (d DateTime64) SetMinute(minute int) (DateTime64, error) {
	if minute < minMinute || minute > maxMinute {
		return d, outOfRange("minute", minute)
	}
	return DateTime64(withField(uint64(d), fieldMinute, uint64(minute))), nil
}

// Second returns the second component, in [0, 60), as stored on the
// 1024-denominator fixed-point grid.
func (d DateTime64) Second() float64 {
	return float64(getField[int](uint64(d), fieldFractionalSecs)) / secondMultiplier
}

// SetSecond returns a copy of d with the second set to second, rounded
// half-to-even to the nearest value representable on the 1024-grid.
func (d DateTime64) SetSecond(second float64) (DateTime64, error) {
	if second < minSecond || second >= maxSecond {
		return d, outOfRange("second", second)
	}
	scaled := uint64(math.RoundToEven(second * secondMultiplier))
	// 60 itself is not storable: a value that rounds up to it is kept at
	// the largest grid value below 60.
	if maxScaled := uint64(maxSecond*secondMultiplier) - 1; scaled > maxScaled {
		scaled = maxScaled
	}
	return DateTime64(withField(uint64(d), fieldFractionalSecs, scaled)), nil
}

// TimeZone returns the time-zone marker carried by d.
func (d DateTime64) TimeZone() TimeZone {
	raw := getField[int](uint64(d), fieldTimeZone)
	return tzFromActual(raw + tzActualMin)
}

// SetTimeZone returns a copy of d with the time-zone marker set to tz.
func (d DateTime64) SetTimeZone(tz TimeZone) (DateTime64, error) {
	if tz.Kind() == TZKindOffset {
		if h := tz.Hours(); h < minTimeZoneHours || h > maxTimeZoneHours {
			return d, outOfRange("timeZone", h)
		}
	}
	raw := uint64(tzActual(tz) - tzActualMin)
	return DateTime64(withField(uint64(d), fieldTimeZone, raw)), nil
}

func (d DateTime64) String() string {
	s, _ := Render(d)
	return s
}

// tzActualMin is the lower bound of the shifted internal time-zone
// range: actual values -23..-1 carry a negative hour offset directly,
// 0 is the "absent" sentinel, 1 is the "Z" sentinel, and 2..25 carry a
// non-negative hour offset shifted up by 2 to make room for the two
// sentinels.
const tzActualMin = -23

func tzActual(tz TimeZone) int {
	switch tz.Kind() {
	case TZKindAbsent:
		return 0
	case TZKindZ:
		return 1
	default:
		if h := tz.Hours(); h < 0 {
			return h
		} else {
			return h + 2
		}
	}
}

func tzFromActual(actual int) TimeZone {
	switch {
	case actual == 0:
		return TZAbsent()
	case actual == 1:
		return TZUTC()
	case actual > 1:
		tz, _ := TZOffset(actual - 2)
		return tz
	default:
		tz, _ := TZOffset(actual)
		return tz
	}
}
