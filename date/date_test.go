package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Date
		expectErr bool
	}{
		{"Valid date", "2024-01-15", New(2024, time.January, 15), false},
		{"Leap day on leap year", "2024-02-29", New(2024, time.February, 29), false},
		{"Leap day on non-leap year", "2023-02-29", Date{}, true},
		{"Month out of range", "2024-13-01", Date{}, true},
		{"Slash separators", "2024/01/01", Date{}, true},
		{"Single digit month and day", "2025-7-1", Date{}, true},
		{"Two digit year", "24-01-15", Date{}, true},
		{"Trailing time component", "2024-01-15T10:00:00", Date{}, true},
		{"Empty string", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Parse(%q) returned error: %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if !hasErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	d := New(2024, time.March, 5)
	if d.String() != "2024-03-05" {
		t.Fatalf("String() = %q, want %q", d.String(), "2024-03-05")
	}
	back, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(String()) unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2024, time.January, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %v and %v", a, b)
	}
}

func TestNormalization(t *testing.T) {
	// Out of range day values are normalized like time.Date does.
	d := New(2024, time.February, 30)
	if d.String() != "2024-03-01" {
		t.Errorf("New(2024, February, 30) = %v, want 2024-03-01", d)
	}
}
