package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		days int
		want Date
	}{
		{"30 days after, across month", New(2024, time.January, 15), 30, New(2024, time.February, 14)},
		{"30 days before, across year", New(2024, time.January, 15), -30, New(2023, time.December, 16)},
		{"leap day", New(2024, time.February, 28), 1, New(2024, time.February, 29)},
		{"zero", New(2024, time.March, 3), 0, New(2024, time.March, 3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Add(tc.days); got != tc.want {
				t.Errorf("%v.Add(%d) = %v, want %v", tc.in, tc.days, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, time.July, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2025/07/01", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2025, time.July, 1), New(2025, time.July, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is not consistent for %v and %v", a, b)
	}
	if !a.Before(b) || !b.After(a) || a.After(a) || a.Before(a) {
		t.Errorf("Before()/After() are not consistent for %v and %v", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	in := New(2024, time.December, 9)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"2024-12-09"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "2024-12-09")
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("json.Unmarshal() = %v, want %v", out, in)
	}
}
