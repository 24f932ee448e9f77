package acb

import (
	"fmt"

	"github.com/etnz/acb/date"
)

// Reasons reported by a ValidationError.
const (
	ReasonMixedSign             = "mixed-sign postings"
	ReasonMissingCostBasis      = "missing cost basis"
	ReasonInconsistentCostBasis = "inconsistent cost basis"
	ReasonMissingSalePrice      = "missing sale price"
	ReasonInconsistentSalePrice = "inconsistent sale price"
	ReasonZeroPrice             = "zero price"
)

// ValidationError reports a ledger entry that cannot be turned into a buy or a sell.
type ValidationError struct {
	Date   date.Date
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid entry on %s: %s", e.Date, e.Reason)
	}
	return fmt.Sprintf("invalid entry on %s: %s: %s", e.Date, e.Reason, e.Detail)
}

// InsufficientSharesError reports a sell of more shares than currently held.
type InsufficientSharesError struct {
	Date      date.Date
	Ticker    string
	Requested Quantity
	Held      Quantity
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("on %s, cannot sell %v of %s, position is only %v", e.Date, e.Requested, e.Ticker, e.Held)
}

// ConversionError reports an amount that could not be expressed in the target currency.
type ConversionError struct {
	Date   date.Date
	Amount Money
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("on %s, cannot convert %s %s to %s: no exchange rate", e.Date, e.Amount.Value(), e.Amount.Currency(), e.Target)
}

// ConfigError reports a malformed security configuration.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "invalid security configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid security configuration: %s: %v", e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InvariantViolation reports a state the computation can never legitimately reach.
type InvariantViolation struct {
	What string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.What }
