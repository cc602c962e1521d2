package xsdtime_test

import (
	"errors"
	"testing"

	"github.com/go-rdf/xsdtime"
)

func TestTimeZoneString(t *testing.T) {
	for _, tt := range []struct {
		name string
		tz   xsdtime.TimeZone
		want string
	}{
		{"absent", xsdtime.TZAbsent(), ""},
		{"utc", xsdtime.TZUTC(), "Z"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tz.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	for _, tt := range []struct {
		hours int
		want  string
	}{
		{5, "+05:00"},
		{-5, "-05:00"},
		{0, "+00:00"},
		{23, "+23:00"},
		{-23, "-23:00"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			tz, err := xsdtime.TZOffset(tt.hours)
			if err != nil {
				t.Fatalf("TZOffset(%d) err = %v", tt.hours, err)
			}
			if got := tz.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTZOffsetOutOfRange(t *testing.T) {
	for _, hours := range []int{24, -24, 100} {
		_, err := xsdtime.TZOffset(hours)
		var oor *xsdtime.OutOfRange
		if !errors.As(err, &oor) {
			t.Fatalf("TZOffset(%d) err = %v, want *OutOfRange", hours, err)
		}
	}
}
