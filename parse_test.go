package xsdtime_test

import (
	"errors"
	"testing"

	"github.com/go-rdf/xsdtime"
)

func TestParseSeedCases(t *testing.T) {
	for _, tt := range []struct {
		input      string
		year       int
		month      int
		day        int
		hour       int
		minute     int
		second     float64
		tzKind     xsdtime.TZKind
		tzHours    int
		wantRender string
		wantTag    xsdtime.DatatypeTag
	}{
		{
			input: "2020", year: 2020, month: 0, day: 0, hour: -1,
			tzKind: xsdtime.TZKindAbsent, wantRender: "2020", wantTag: xsdtime.TagGYear,
		},
		{
			input: "2020-06", year: 2020, month: 6, day: 0, hour: -1,
			tzKind: xsdtime.TZKindAbsent, wantRender: "2020-06", wantTag: xsdtime.TagGYearMonth,
		},
		{
			input: "2020-06-15", year: 2020, month: 6, day: 15, hour: -1,
			tzKind: xsdtime.TZKindAbsent, wantRender: "2020-06-15", wantTag: xsdtime.TagDate,
		},
		{
			input: "2020-06-15T12:30:45Z", year: 2020, month: 6, day: 15, hour: 12, minute: 30, second: 45,
			tzKind: xsdtime.TZKindZ, wantRender: "2020-06-15T12:30:45Z", wantTag: xsdtime.TagDateTime,
		},
		{
			input: "-0044-03-15T00:00:00+00:00", year: -44, month: 3, day: 15, hour: 0, minute: 0, second: 0,
			tzKind: xsdtime.TZKindZ, wantRender: "-0044-03-15T00:00:00Z", wantTag: xsdtime.TagDateTime,
		},
		{
			input: "2020-01-01T00:00:00.5-05:00", year: 2020, month: 1, day: 1, hour: 0, minute: 0, second: 0.5,
			tzKind: xsdtime.TZKindOffset, tzHours: -5,
			wantRender: "2020-01-01T00:00:00.5-05:00", wantTag: xsdtime.TagDateTime,
		},
	} {
		t.Run(tt.input, func(t *testing.T) {
			v, err := xsdtime.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) err = %v", tt.input, err)
			}

			if v.Year() != tt.year {
				t.Errorf("Year() = %d, want %d", v.Year(), tt.year)
			}
			if v.Month() != tt.month {
				t.Errorf("Month() = %d, want %d", v.Month(), tt.month)
			}
			if v.Day() != tt.day {
				t.Errorf("Day() = %d, want %d", v.Day(), tt.day)
			}
			if v.Hour() != tt.hour {
				t.Errorf("Hour() = %d, want %d", v.Hour(), tt.hour)
			}
			if v.Minute() != tt.minute {
				t.Errorf("Minute() = %d, want %d", v.Minute(), tt.minute)
			}
			if v.Second() != tt.second {
				t.Errorf("Second() = %v, want %v", v.Second(), tt.second)
			}
			tz := v.TimeZone()
			if tz.Kind() != tt.tzKind {
				t.Errorf("TimeZone().Kind() = %v, want %v", tz.Kind(), tt.tzKind)
			}
			if tt.tzKind == xsdtime.TZKindOffset && tz.Hours() != tt.tzHours {
				t.Errorf("TimeZone().Hours() = %d, want %d", tz.Hours(), tt.tzHours)
			}

			rendered, tag := xsdtime.Render(v)
			if rendered != tt.wantRender {
				t.Errorf("Render() = %q, want %q", rendered, tt.wantRender)
			}
			if tag != tt.wantTag {
				t.Errorf("Render() tag = %v, want %v", tag, tt.wantTag)
			}
		})
	}
}

func TestParseRejectsOutOfRange(t *testing.T) {
	for _, tt := range []struct {
		input string
		field string
		value any
	}{
		{"2020-13-01", "month", 13},
		{"2020-06-15T24:00:00", "hour", 24},
		{"10000-01-01", "year", 10000},
	} {
		t.Run(tt.input, func(t *testing.T) {
			_, err := xsdtime.Parse(tt.input)
			var oor *xsdtime.OutOfRange
			if !errors.As(err, &oor) {
				t.Fatalf("Parse(%q) err = %v, want *OutOfRange", tt.input, err)
			}
			if oor.Field != tt.field {
				t.Errorf("oor.Field = %q, want %q", oor.Field, tt.field)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		"2020/06/15",
		"15-06-2020",
		"2020-6-15",
		"2020-06-15T24:00",
		"2020-06-15 12:30:45",
		"",
		"abcd",
		"2020-06-15Tnoon",
		"2020-06-15T12:30:45+05:30",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := xsdtime.Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) err = nil, want an error", input)
			}
		})
	}
}

func TestCanonicalIdempotence(t *testing.T) {
	for _, s := range []string{
		"2020",
		"-0044",
		"2020-06",
		"2020-06-15",
		"2020-06-15Z",
		"2020-06-15T12:30:45Z",
		"2020-06-15T12:30:45.25+05:00",
	} {
		t.Run(s, func(t *testing.T) {
			v, err := xsdtime.Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) err = %v", s, err)
			}
			rendered, _ := xsdtime.Render(v)
			if rendered != s {
				t.Errorf("Render(Parse(%q)) = %q, want %q", s, rendered, s)
			}
		})
	}
}

func TestRoundTripConstructRenderParse(t *testing.T) {
	tz, err := xsdtime.TZOffset(3)
	if err != nil {
		t.Fatal(err)
	}
	v, err := xsdtime.NewDateTime(1999, 12, 31, 23, 59, 59.999, tz)
	if err != nil {
		t.Fatal(err)
	}

	rendered, _ := xsdtime.Render(v)
	parsed, err := xsdtime.Parse(rendered)
	if err != nil {
		t.Fatalf("Parse(%q) err = %v", rendered, err)
	}
	if !parsed.Equal(v) {
		t.Errorf("Parse(Render(v)) = %v, want %v", parsed, v)
	}
}
