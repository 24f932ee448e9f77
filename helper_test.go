package acb

import (
	"github.com/etnz/acb/date"
	"github.com/google/go-cmp/cmp"
)

// CAD is a helper for test to create canadian dollars from const
func CAD(v float64) Money { return M(v, "CAD") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a shortcut for date.MustParse.
func day(s string) date.Date { return date.MustParse(s) }

// compareDecimals makes cmp compare Money, Quantity and Date by value.
var compareDecimals = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}
