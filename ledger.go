package acb

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/acb/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Posting is one leg of a ledger entry.
type Posting struct {
	Account string
	Units   Amount
	Cost    *Amount // per unit cost basis, if any.
	Price   *Amount // per unit transaction price, if any.
}

// Amount is a number in a given currency (or commodity) as written in the ledger.
type Amount struct {
	Number   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Money returns the amount as Money.
func (a Amount) Money() Money { return M(a.Number, a.Currency) }

// Equal reports whether both number and currency are identical.
func (a Amount) Equal(b Amount) bool { return a.Number.Equal(b.Number) && a.Currency == b.Currency }

func (a Amount) String() string { return a.Number.String() + " " + a.Currency }

// Entry is a dated ledger transaction made of postings.
type Entry struct {
	Date      date.Date
	Narration string
	Postings  []Posting
}

// Ledger is the decoded content of a ledger file: entries in file order and the
// exchange rates it declares.
type Ledger struct {
	Entries []Entry
	Prices  *PriceMap
}

// Command types of ledger lines.
const (
	cmdTxn   = "txn"
	cmdPrice = "price"
)

// jsonPosting is the ledger representation of a Posting.
type jsonPosting struct {
	Account string  `json:"account"`
	Units   Amount  `json:"units"`
	Cost    *Amount `json:"cost,omitempty"`
	Price   *Amount `json:"price,omitempty"`
}

// DecodeLedger decodes a stream of JSONL ledger lines from r.
//
// A "txn" line is an entry with its postings, a "price" line declares the rate
// of a currency in another one on a given day.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := &Ledger{Prices: NewPriceMap()}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", lineno, string(lineBytes), err)
		}

		switch identifier.Command {
		case cmdTxn:
			var temp struct {
				Date      date.Date     `json:"date"`
				Narration string        `json:"narration"`
				Postings  []jsonPosting `json:"postings"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction: %w", lineno, err)
			}
			if temp.Date.IsZero() {
				return nil, fmt.Errorf("line %d: transaction without a date", lineno)
			}
			entry := Entry{Date: temp.Date, Narration: temp.Narration}
			for _, p := range temp.Postings {
				entry.Postings = append(entry.Postings, Posting(p))
			}
			ledger.Entries = append(ledger.Entries, entry)

		case cmdPrice:
			var temp struct {
				Date     date.Date `json:"date"`
				Currency string    `json:"currency"`
				Price    Amount    `json:"price"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: invalid price: %w", lineno, err)
			}
			if temp.Date.IsZero() || temp.Currency == "" || temp.Price.Currency == "" {
				return nil, fmt.Errorf("line %d: price requires a date, a currency and a quote currency", lineno)
			}
			ledger.Prices.Add(temp.Currency, temp.Price.Currency, temp.Date, temp.Price.Number)

		default:
			return nil, fmt.Errorf("line %d: unknown ledger command: %q", lineno, identifier.Command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}
