// Package ledger owns the durable transaction ledger: its CSV codec,
// row identity, and the deduplicating merge.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/priyanshbendre/cashflow/internal/model"
)

// Header is the CSV header for the ledger file.
const Header = "date,amount,description,vendors,cash_flow"

const numFields = 5

var requiredColumns = strings.Split(Header, ",")

// SchemaError reports a ledger file whose header lacks required columns.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ledger is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// columnIndex maps required column names to their positions in a
// header row. Rows are read by name, so a reordered but complete
// header still loads.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}

// Read reads all transactions from a ledger CSV reader.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // width is defined by the header

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	idx, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Write writes transactions to a ledger CSV writer (including header).
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(requiredColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(marshalRow(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// marshalRow converts a Transaction to a CSV row in Header order.
// Amounts are written with Decimal.String(), the normalized form with
// trailing zeros trimmed ("100.00" becomes "100"). Reading parses back
// through NewFromString, so both paths normalize identically and
// identity keys stay stable across runs.
func marshalRow(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[0] = txn.Date
	row[1] = txn.Amount.String()
	row[2] = txn.Description
	row[3] = txn.Vendor
	row[4] = string(txn.CashFlow)
	return row
}

func unmarshalRow(rec []string, idx map[string]int) (model.Transaction, error) {
	for _, name := range requiredColumns {
		if idx[name] >= len(rec) {
			return model.Transaction{}, fmt.Errorf("expected at least %d fields, got %d", idx[name]+1, len(rec))
		}
	}

	amount, err := decimal.NewFromString(rec[idx["amount"]])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[idx["amount"]], err)
	}

	return model.Transaction{
		Date:        rec[idx["date"]],
		Amount:      amount,
		Description: rec[idx["description"]],
		Vendor:      rec[idx["vendors"]],
		CashFlow:    model.CashFlow(rec[idx["cash_flow"]]),
	}, nil
}
