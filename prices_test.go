package acb

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceMap(t *testing.T) {
	p := NewPriceMap()
	p.Add("USD", "CAD", day("2024-01-10"), decimal.RequireFromString("1.25"))
	p.Add("USD", "CAD", day("2024-01-05"), decimal.RequireFromString("1.30"))
	p.Add("USD", "CAD", day("2024-01-10"), decimal.RequireFromString("1.35")) // replaces

	if n := p.Len("USD", "CAD"); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}

	testCases := []struct {
		name      string
		from, to  string
		on        string
		exact     string // "" when no exact rate.
		nearest   string
		nearestOn string
	}{
		{name: "exact", from: "USD", to: "CAD", on: "2024-01-10", exact: "1.35", nearest: "1.35", nearestOn: "2024-01-10"},
		{name: "between", from: "USD", to: "CAD", on: "2024-01-07", nearest: "1.3", nearestOn: "2024-01-05"},
		{name: "before all", from: "USD", to: "CAD", on: "2024-01-01", nearest: "1.3", nearestOn: "2024-01-05"},
		{name: "after all", from: "USD", to: "CAD", on: "2024-02-01", nearest: "1.35", nearestOn: "2024-01-10"},
		{name: "inverse exact", from: "CAD", to: "USD", on: "2024-01-05", exact: "0.7692307692307692", nearest: "0.7692307692307692", nearestOn: "2024-01-05"},
		{name: "unknown pair", from: "EUR", to: "CAD", on: "2024-01-05"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate, ok := p.Rate(tc.from, tc.to, day(tc.on))
			if ok != (tc.exact != "") {
				t.Fatalf("Rate() found = %v, want %v", ok, tc.exact != "")
			}
			if ok && !rate.Equal(decimal.RequireFromString(tc.exact)) {
				t.Errorf("Rate() = %v, want %v", rate, tc.exact)
			}

			rate, on, ok := p.Nearest(tc.from, tc.to, day(tc.on))
			if ok != (tc.nearest != "") {
				t.Fatalf("Nearest() found = %v, want %v", ok, tc.nearest != "")
			}
			if !ok {
				return
			}
			if !rate.Equal(decimal.RequireFromString(tc.nearest)) {
				t.Errorf("Nearest() = %v, want %v", rate, tc.nearest)
			}
			if on != day(tc.nearestOn) {
				t.Errorf("Nearest() day = %v, want %v", on, tc.nearestOn)
			}
		})
	}
}

func TestPriceMap_RateBothDirections(t *testing.T) {
	p := NewPriceMap()
	p.Add("USD", "CAD", day("2024-01-01"), decimal.RequireFromString("1.3"))
	p.Add("CAD", "USD", day("2024-03-01"), decimal.RequireFromString("0.5"))

	testCases := []struct {
		name     string
		from, to string
		on       string
		want     string
	}{
		{name: "direct sample", from: "USD", to: "CAD", on: "2024-01-01", want: "1.3"},
		{name: "inverse sample that day", from: "USD", to: "CAD", on: "2024-03-01", want: "2"},
		{name: "direct sample of the other way", from: "CAD", to: "USD", on: "2024-03-01", want: "0.5"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate, ok := p.Rate(tc.from, tc.to, day(tc.on))
			if !ok {
				t.Fatalf("Rate(%s, %s, %s) not found", tc.from, tc.to, tc.on)
			}
			if !rate.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("Rate() = %v, want %v", rate, tc.want)
			}
		})
	}

	c := quietConverter(p)
	got, err := c.Convert(USD(10), "CAD", day("2024-03-01"))
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if !got.Equal(CAD(20)) || c.Diagnostics.Inexact() {
		t.Errorf("Convert() = %v inexact=%v, want 20 exact", got.Value(), c.Diagnostics.Inexact())
	}
}
