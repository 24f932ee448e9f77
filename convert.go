package acb

import (
	"log"

	"github.com/etnz/acb/date"
)

// disclaimer is written once per Converter, the first time an exact rate is missing.
const disclaimer = "exchange rates are missing for some dates, the nearest available rates are used and results may be inexact"

// MissingRate records a conversion done without an exact-date rate.
type MissingRate struct {
	From, To string
	Date     date.Date
	// Used is the day of the rate used instead, zero if none was found.
	Used date.Date
}

// Diagnostics collects data quality warnings raised during a run.
type Diagnostics struct {
	// Disclaimed is set once the disclaimer has been written.
	Disclaimed bool
	Missing    []MissingRate
}

// Inexact reports whether some conversions used an approximate rate.
func (d Diagnostics) Inexact() bool { return len(d.Missing) > 0 }

// record adds m unless its pair and date are already known. It reports whether m was added.
func (d *Diagnostics) record(m MissingRate) bool {
	for _, x := range d.Missing {
		if x.From == m.From && x.To == m.To && x.Date == m.Date {
			return false
		}
	}
	d.Missing = append(d.Missing, m)
	return true
}

// Converter expresses amounts in a target currency using the rates of a PriceMap.
//
// It is not safe for concurrent use: it accumulates Diagnostics.
type Converter struct {
	Prices *PriceMap
	// Logger receives the disclaimer and the missing rate notices. Nil means log.Default().
	Logger      *log.Logger
	Diagnostics Diagnostics
}

// NewConverter returns a Converter on prices.
func NewConverter(prices *PriceMap) *Converter {
	if prices == nil {
		prices = NewPriceMap()
	}
	return &Converter{Prices: prices}
}

func (c *Converter) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// Convert returns amount expressed in currency 'to', with the rate of day 'on'.
//
// If no rate exists on that exact day, the nearest one is used and the
// occurrence is recorded in Diagnostics. It fails with a *ConversionError if
// no rate exists at all for the pair.
func (c *Converter) Convert(amount Money, to string, on date.Date) (Money, error) {
	if amount.Currency() == to {
		return amount, nil
	}
	if rate, ok := c.Prices.Rate(amount.Currency(), to, on); ok {
		return amount.MulRate(rate, to), nil
	}

	if !c.Diagnostics.Disclaimed {
		c.Diagnostics.Disclaimed = true
		c.logger().Print("warning: " + disclaimer)
	}
	rate, used, ok := c.Prices.Nearest(amount.Currency(), to, on)
	if c.Diagnostics.record(MissingRate{From: amount.Currency(), To: to, Date: on, Used: used}) {
		fallback := "none"
		if ok {
			fallback = used.String()
		}
		c.logger().Printf("missing-rate pair=%s/%s date=%s fallback=%s", amount.Currency(), to, on, fallback)
	}
	if !ok {
		return amount, &ConversionError{Date: on, Amount: amount, Target: to}
	}

	converted := amount.MulRate(rate, to)
	if converted.Currency() != to {
		return amount, &ConversionError{Date: on, Amount: amount, Target: to}
	}
	return converted, nil
}
