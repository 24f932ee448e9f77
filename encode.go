package acb

import (
	"encoding/json"
	"fmt"
	"io"
)

// encodeLine marshals v to JSON and writes it to w followed by a newline, in JSONL format.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %T: %w", v, err)
	}
	return nil
}

// EncodeResults writes result rows to w in JSONL format, one row per line, in the given order.
func EncodeResults(w io.Writer, rows []Result) error {
	for _, r := range rows {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransactions writes transactions to w in JSONL format.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := encodeLine(w, tx); err != nil {
			return err
		}
	}
	return nil
}
