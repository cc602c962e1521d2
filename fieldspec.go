package xsdtime

import "golang.org/x/exp/constraints"

// fieldSpec describes one logical field of the packed 64-bit
// representation as a (offset, width) pair, least-significant bit
// first. Go has no compiler-provided bitfields, so every field is
// addressed by explicit shift-and-mask against this table instead.
type fieldSpec struct {
	offset uint
	width  uint
}

func (f fieldSpec) mask() uint64 {
	return (uint64(1) << f.width) - 1
}

// Field layout, least-significant bit first. The seven data fields'
// widths sum to 57; the remaining 7 most-significant bits are the
// reserved field and are always zero, for 64 bits in all.
var (
	fieldTimeZone       = fieldSpec{offset: 0, width: 6}
	fieldFractionalSecs = fieldSpec{offset: 6, width: 16}
	fieldMinute         = fieldSpec{offset: 22, width: 6}
	fieldHour           = fieldSpec{offset: 28, width: 5}
	fieldDay            = fieldSpec{offset: 33, width: 5}
	fieldMonth          = fieldSpec{offset: 38, width: 4}
	fieldYear           = fieldSpec{offset: 42, width: 15}
	fieldReserved       = fieldSpec{offset: 57, width: 7}
)

// getField extracts the unsigned value stored at f within bits, and
// widens it to T.
func getField[T constraints.Integer](bits uint64, f fieldSpec) T {
	return T((bits >> f.offset) & f.mask())
}

// withField returns a copy of bits with the field at f replaced by value.
// value is masked to f's width; callers are expected to have already
// range-checked it against the field's logical domain.
func withField[T constraints.Integer](bits uint64, f fieldSpec, value T) uint64 {
	cleared := bits &^ (f.mask() << f.offset)
	return cleared | ((uint64(value) & f.mask()) << f.offset)
}
