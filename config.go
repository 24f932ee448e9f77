package acb

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// SecurityConfig tells which ledger postings belong to the tracked security.
type SecurityConfig struct {
	// Ticker is the commodity (unit currency) of the security in the ledger.
	Ticker string
	// InvestmentPrefixes are the account prefixes holding the security.
	InvestmentPrefixes []string
	// CommissionPrefixes are the account prefixes receiving fees.
	CommissionPrefixes []string
}

// IsInvestment reports whether the posting moves units of the security in a tracked account.
func (c SecurityConfig) IsInvestment(p Posting) bool {
	return p.Units.Currency == c.Ticker && hasAnyPrefix(p.Account, c.InvestmentPrefixes)
}

// IsCommission reports whether the posting pays a commission.
func (c SecurityConfig) IsCommission(p Posting) bool {
	return hasAnyPrefix(p.Account, c.CommissionPrefixes)
}

func hasAnyPrefix(account string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(account, prefix) {
			return true
		}
	}
	return false
}

// jsonSecurity is the configuration file representation of a security.
type jsonSecurity struct {
	Investments []string `json:"investments"`
	Commissions []string `json:"commissions"`
}

// LoadConfig reads the security configuration.
//
// The document is a JSON object mapping tickers to their account prefixes:
//
//	{"VFV": {"investments": ["Assets:TFSA:"], "commissions": ["Expenses:Commissions"]}}
//
// path is a JSONPath selecting that object inside a larger document ("" or "$"
// for the whole document). When several securities are defined, ticker selects
// the one to process.
func LoadConfig(r io.Reader, path, ticker string) (SecurityConfig, error) {
	securities, err := decodeSecurities(r, path)
	if err != nil {
		return SecurityConfig{}, err
	}

	if len(securities) == 0 {
		return SecurityConfig{}, &ConfigError{Reason: "no security defined"}
	}
	if ticker == "" {
		if len(securities) > 1 {
			tickers := slices.Sorted(maps.Keys(securities))
			return SecurityConfig{}, &ConfigError{Reason: fmt.Sprintf("several securities defined (%s), select one", strings.Join(tickers, ", "))}
		}
		for t := range securities {
			ticker = t
		}
	}
	sec, ok := securities[ticker]
	if !ok {
		return SecurityConfig{}, &ConfigError{Reason: fmt.Sprintf("unknown security %q", ticker)}
	}
	if strings.TrimSpace(ticker) == "" {
		return SecurityConfig{}, &ConfigError{Reason: "empty ticker"}
	}
	if len(sec.Investments) == 0 {
		return SecurityConfig{}, &ConfigError{Reason: fmt.Sprintf("security %q has no investment account prefix", ticker)}
	}
	return SecurityConfig{
		Ticker:             ticker,
		InvestmentPrefixes: sec.Investments,
		CommissionPrefixes: sec.Commissions,
	}, nil
}

// Tickers returns the sorted tickers of the securities object selected by path.
func Tickers(r io.Reader, path string) ([]string, error) {
	securities, err := decodeSecurities(r, path)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(securities)), nil
}

// decodeSecurities decodes the JSON document of r and returns the securities
// object selected by path.
func decodeSecurities(r io.Reader, path string) (map[string]jsonSecurity, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ConfigError{Reason: "cannot decode JSON", Err: err}
	}
	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("path %q not found", path), Err: err}
	}
	// jsonpath returns a list for wildcard or filter expressions; keep the first match.
	if list, ok := selected.([]any); ok && len(list) > 0 {
		selected = list[0]
	}
	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, &ConfigError{Reason: "cannot read selection", Err: err}
	}
	var securities map[string]jsonSecurity
	if err := json.Unmarshal(raw, &securities); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("path %q is not a securities object", path), Err: err}
	}
	return securities, nil
}
