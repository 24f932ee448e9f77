package acb

import (
	"github.com/etnz/acb/date"
	"github.com/shopspring/decimal"
)

// pair identifies a currency exchange direction: one unit of From is worth rate units of To.
type pair struct {
	From, To string
}

// PriceMap holds exchange rate samples per currency pair.
//
// It is filled while decoding the ledger and only read afterwards.
type PriceMap struct {
	rates map[pair]*date.History[decimal.Decimal]
}

// NewPriceMap returns an empty PriceMap.
func NewPriceMap() *PriceMap {
	return &PriceMap{rates: make(map[pair]*date.History[decimal.Decimal])}
}

// Add records that one unit of 'from' is worth 'rate' units of 'to' on day 'on'.
// A second sample on the same day replaces the first one.
func (p *PriceMap) Add(from, to string, on date.Date, rate decimal.Decimal) {
	k := pair{from, to}
	h, ok := p.rates[k]
	if !ok {
		h = new(date.History[decimal.Decimal])
		p.rates[k] = h
	}
	h.Append(on, rate)
}

// Len returns the number of samples for the pair, in this direction only.
func (p *PriceMap) Len(from, to string) int {
	if h, ok := p.rates[pair{from, to}]; ok {
		return h.Len()
	}
	return 0
}

// Rate returns the rate from 'from' to 'to' sampled exactly on day 'on'.
//
// If the pair has no sample that day, the inverse pair is used.
func (p *PriceMap) Rate(from, to string, on date.Date) (decimal.Decimal, bool) {
	if h, ok := p.rates[pair{from, to}]; ok {
		if r, found := h.Get(on); found {
			return r, true
		}
	}
	if h, ok := p.rates[pair{to, from}]; ok {
		if r, found := h.Get(on); found && !r.IsZero() {
			return decimal.NewFromInt(1).Div(r), true
		}
	}
	return decimal.Zero, false
}

// Nearest returns the best available rate for day 'on' and the day it was
// sampled: the latest sample on or before 'on', otherwise the earliest one after.
//
// If the pair is unknown, the inverse pair is used.
func (p *PriceMap) Nearest(from, to string, on date.Date) (decimal.Decimal, date.Date, bool) {
	if h, ok := p.rates[pair{from, to}]; ok {
		return nearest(h, on)
	}
	if h, ok := p.rates[pair{to, from}]; ok {
		r, day, found := nearest(h, on)
		if !found || r.IsZero() {
			return decimal.Zero, date.Date{}, false
		}
		return decimal.NewFromInt(1).Div(r), day, true
	}
	return decimal.Zero, date.Date{}, false
}

func nearest(h *date.History[decimal.Decimal], on date.Date) (decimal.Decimal, date.Date, bool) {
	if day, r, ok := h.ValueAsOf(on); ok {
		return r, day, true
	}
	if day, r, ok := h.ValueAfter(on); ok {
		return r, day, true
	}
	return decimal.Zero, date.Date{}, false
}
