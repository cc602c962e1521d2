package xsdtime

import "testing"

func TestFieldRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name  string
		field fieldSpec
		value uint64
	}{
		{"timeZone", fieldTimeZone, 48},
		{"fractionalSecs", fieldFractionalSecs, 61439},
		{"minute", fieldMinute, 59},
		{"hour", fieldHour, 24},
		{"day", fieldDay, 31},
		{"month", fieldMonth, 12},
		{"year", fieldYear, 19998},
	} {
		t.Run(tt.name, func(t *testing.T) {
			bits := withField(uint64(0), tt.field, tt.value)
			if got := getField[uint64](bits, tt.field); got != tt.value {
				t.Errorf("getField() = %d, want %d", got, tt.value)
			}
			if bits>>uint(fieldReserved.offset) != 0 {
				t.Errorf("field write touched reserved bits: %#x", bits)
			}
		})
	}
}

func TestFieldsDoNotOverlap(t *testing.T) {
	fields := []fieldSpec{
		fieldTimeZone, fieldFractionalSecs, fieldMinute, fieldHour,
		fieldDay, fieldMonth, fieldYear, fieldReserved,
	}
	var seen uint64
	var totalWidth uint
	for _, f := range fields {
		span := f.mask() << f.offset
		if seen&span != 0 {
			t.Fatalf("field at offset %d overlaps a previous field", f.offset)
		}
		seen |= span
		totalWidth += f.width
	}
	if totalWidth != 64 {
		t.Errorf("total field width = %d, want 64", totalWidth)
	}
}
