package xsdtime

import "fmt"

// TZKind discriminates the three cases a TimeZone marker can hold.
type TZKind int

const (
	// TZKindAbsent means no time-zone information was present in the
	// lexical form.
	TZKindAbsent TZKind = iota
	// TZKindZ means the lexical form carried a "Z" (or an equivalent
	// "+00:00"/"-00:00") designator.
	TZKindZ
	// TZKindOffset means the lexical form carried a signed hour offset.
	TZKindOffset
)

// TimeZone is the tagged time-zone marker carried by a DateTime64: absent,
// Z, or a signed whole-hour offset in [-23, 23]. These are the only three
// cases the XSD lexical grammar for gYear/gYearMonth/date/dateTime
// distinguishes; sub-hour offsets are never produced by the codec.
type TimeZone struct {
	kind  TZKind
	hours int8
}

// TZAbsent returns the marker for "no time zone in the lexical form".
func TZAbsent() TimeZone {
	return TimeZone{kind: TZKindAbsent}
}

// TZUTC returns the marker for "Z" (equivalently "+00:00"/"-00:00").
func TZUTC() TimeZone {
	return TimeZone{kind: TZKindZ}
}

// TZOffset returns the marker for a signed whole-hour offset from UTC.
// hours must be within [-23, 23]; otherwise an OutOfRange error is returned.
func TZOffset(hours int) (TimeZone, error) {
	if hours < minTimeZoneHours || hours > maxTimeZoneHours {
		return TimeZone{}, outOfRange("timeZone", hours)
	}
	return TimeZone{kind: TZKindOffset, hours: int8(hours)}, nil
}

// Kind reports which of the three cases tz holds.
func (tz TimeZone) Kind() TZKind {
	return tz.kind
}

// Hours returns the signed hour offset. It is only meaningful when
// tz.Kind() == TZKindOffset; it returns 0 for the other two kinds.
func (tz TimeZone) Hours() int {
	return int(tz.hours)
}

// String renders tz in the ISO 8601 form used by the codec: "" for
// absent, "Z" for UTC, "+HH:00"/"-HH:00" for an offset.
func (tz TimeZone) String() string {
	switch tz.kind {
	case TZKindAbsent:
		return ""
	case TZKindZ:
		return "Z"
	default:
		sign := "+"
		h := tz.hours
		if h < 0 {
			sign = "-"
			h = -h
		}
		return fmt.Sprintf("%s%02d:00", sign, h)
	}
}
