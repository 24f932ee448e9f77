package acb

import (
	"github.com/etnz/acb/date"
)

// PeriodGains holds the realized gains of the sells in a date range.
type PeriodGains struct {
	Range        date.Range
	Dispositions int
	// Proceeds is the gross amount of the sells, commissions excluded.
	Proceeds    Money
	CapitalGain Money
	// SuperficialLosses is the part of CapitalGain made of superficial losses (zero or negative).
	SuperficialLosses Money
}

// Net returns the capital gain without the superficial losses, whose deduction is denied.
func (p PeriodGains) Net() Money { return p.CapitalGain.Sub(p.SuperficialLosses) }

func (p *PeriodGains) add(r Result) {
	p.Dispositions++
	p.Proceeds = p.Proceeds.Add(r.Amount)
	p.CapitalGain = p.CapitalGain.Add(r.CapitalGain)
	if r.SuperficialLoss {
		p.SuperficialLosses = p.SuperficialLosses.Add(r.CapitalGain)
	}
}

// GainsSummary groups the realized gains per period.
type GainsSummary struct {
	Ticker   string
	Currency string
	Period   date.Period
	// Periods are in ascending order, periods without sells are omitted.
	Periods []PeriodGains
	Total   PeriodGains
}

// Summarize groups the Sell rows by period. rows are expected in ascending date
// order as Compute returns them.
func Summarize(rows []Result, period date.Period) *GainsSummary {
	s := &GainsSummary{Period: period}
	for _, r := range rows {
		if s.Ticker == "" {
			s.Ticker = r.Ticker
		}
		if s.Currency == "" {
			s.Currency = r.TotalACB.Currency()
		}
	}
	zero := func(rg date.Range) PeriodGains {
		return PeriodGains{Range: rg, Proceeds: M(0, s.Currency), CapitalGain: M(0, s.Currency), SuperficialLosses: M(0, s.Currency)}
	}
	s.Total = zero(date.Range{})

	for _, r := range rows {
		if r.Kind != Sell {
			continue
		}
		rg := period.Range(r.Date)
		if n := len(s.Periods); n == 0 || s.Periods[n-1].Range != rg {
			s.Periods = append(s.Periods, zero(rg))
		}
		s.Periods[len(s.Periods)-1].add(r)
		s.Total.add(r)
	}
	if len(s.Periods) > 0 {
		s.Total.Range = date.Range{From: s.Periods[0].Range.From, To: s.Periods[len(s.Periods)-1].Range.To}
	}
	return s
}
