package acb

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestDecodeLedger(t *testing.T) {
	// A multi-line string representing a JSONL stream with all command types
	jsonlStream := `
{"command":"price","date":"2024-01-10","currency":"USD","price":{"amount":1.35,"currency":"CAD"}}
{"command":"txn","date":"2024-01-10","narration":"buy VFV","postings":[{"account":"Assets:TFSA:VFV","units":{"amount":10,"currency":"VFV"},"cost":{"amount":160,"currency":"CAD"}},{"account":"Expenses:Commissions","units":{"amount":9.95,"currency":"CAD"}}]}

{"command":"txn","date":"2024-03-10","postings":[{"account":"Assets:TFSA:VFV","units":{"amount":-3,"currency":"VFV"},"price":{"amount":180,"currency":"CAD"}}]}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	want := []Entry{
		{
			Date:      day("2024-01-10"),
			Narration: "buy VFV",
			Postings: []Posting{
				{Account: "Assets:TFSA:VFV", Units: amt(10, "VFV"), Cost: ptr(amt(160, "CAD"))},
				{Account: "Expenses:Commissions", Units: amt(9.95, "CAD")},
			},
		},
		{
			Date: day("2024-03-10"),
			Postings: []Posting{
				{Account: "Assets:TFSA:VFV", Units: amt(-3, "VFV"), Price: ptr(amt(180, "CAD"))},
			},
		},
	}
	opts := cmp.Options{compareDecimals, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })}
	if diff := cmp.Diff(want, ledger.Entries, opts); diff != "" {
		t.Errorf("DecodeLedger() entries mismatch (-want +got):\n%s", diff)
	}

	rate, ok := ledger.Prices.Rate("USD", "CAD", day("2024-01-10"))
	if !ok || !rate.Equal(decimal.RequireFromString("1.35")) {
		t.Errorf("DecodeLedger() price USD/CAD = %v, %v, want 1.35", rate, ok)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "not json", input: `{"command":`, wantErr: "line 1"},
		{name: "unknown command", input: "\n" + `{"command":"buy","date":"2024-01-10"}`, wantErr: "line 2: unknown ledger command"},
		{name: "txn without date", input: `{"command":"txn","postings":[]}`, wantErr: "without a date"},
		{name: "bad units", input: `{"command":"txn","date":"2024-01-10","postings":[{"account":"A","units":{"amount":"x","currency":"VFV"}}]}`, wantErr: "invalid transaction"},
		{name: "incomplete price", input: `{"command":"price","date":"2024-01-10","price":{"amount":1.35,"currency":"CAD"}}`, wantErr: "price requires"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("DecodeLedger() expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeLedger() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
