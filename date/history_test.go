package date

import (
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	h.Append(d1, v1)
	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Fatalf("History.Len() = %v want 2", h.Len())
	}
	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}

	// same day overwrites
	h.Append(d1, "again")
	if got, _ := h.Get(d1); got != "again" || h.Len() != 2 {
		t.Errorf("Append(d1, again) = %q (len %d), want %q (len 2)", got, h.Len(), "again")
	}
}

func TestLookups(t *testing.T) {
	h := new(History[int])
	h.Append(New(2024, time.January, 10), 10)
	h.Append(New(2024, time.January, 20), 20)
	h.Append(New(2024, time.January, 30), 30)

	testCases := []struct {
		name      string
		on        Date
		wantGet   bool
		wantAsOf  int
		asOfOK    bool
		wantAfter int
		afterOK   bool
	}{
		{"before first", New(2024, time.January, 1), false, 0, false, 10, true},
		{"exact first", New(2024, time.January, 10), true, 10, true, 20, true},
		{"between", New(2024, time.January, 15), false, 10, true, 20, true},
		{"exact last", New(2024, time.January, 30), true, 30, true, 0, false},
		{"after last", New(2024, time.February, 2), false, 30, true, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := h.Get(tc.on); ok != tc.wantGet {
				t.Errorf("Get(%v) ok = %v, want %v", tc.on, ok, tc.wantGet)
			}
			_, v, ok := h.ValueAsOf(tc.on)
			if ok != tc.asOfOK || v != tc.wantAsOf {
				t.Errorf("ValueAsOf(%v) = %v, %v, want %v, %v", tc.on, v, ok, tc.wantAsOf, tc.asOfOK)
			}
			_, v, ok = h.ValueAfter(tc.on)
			if ok != tc.afterOK || v != tc.wantAfter {
				t.Errorf("ValueAfter(%v) = %v, %v, want %v, %v", tc.on, v, ok, tc.wantAfter, tc.afterOK)
			}
		})
	}
}
