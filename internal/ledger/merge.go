package ledger

import (
	"github.com/priyanshbendre/cashflow/internal/model"
)

// Decider resolves the duplicate-confirmation gate: given the incoming
// rows that already exist in the ledger, return true to append only
// the unique rows, false to abort with no changes.
type Decider func(duplicates []model.Transaction) (bool, error)

// AcceptAll is a Decider that always proceeds.
func AcceptAll([]model.Transaction) (bool, error) { return true, nil }

// RejectAll is a Decider that always aborts.
func RejectAll([]model.Transaction) (bool, error) { return false, nil }

// MergeResult reports what a merge did (or would do).
type MergeResult struct {
	Ledger     []model.Transaction
	Appended   int
	Duplicates int
	Aborted    bool
}

// Merge appends the incoming rows that are not already present in
// existing, keyed by Key. When duplicates exist, decide is consulted
// before anything is appended; a false decision aborts the merge and
// returns the existing ledger untouched.
//
// Row order is preserved: existing rows first, then unique incoming
// rows in their classified order. An empty incoming batch is a no-op.
// Merge never mutates its inputs.
func Merge(existing, incoming []model.Transaction, decide Decider) (MergeResult, error) {
	if len(incoming) == 0 {
		return MergeResult{Ledger: existing}, nil
	}

	known := make(map[string]struct{}, len(existing))
	for _, txn := range existing {
		known[Key(txn)] = struct{}{}
	}

	var unique, duplicates []model.Transaction
	for _, txn := range incoming {
		if _, ok := known[Key(txn)]; ok {
			duplicates = append(duplicates, txn)
		} else {
			unique = append(unique, txn)
		}
	}

	if len(duplicates) > 0 {
		if decide == nil {
			decide = RejectAll
		}
		ok, err := decide(duplicates)
		if err != nil {
			return MergeResult{}, err
		}
		if !ok {
			return MergeResult{Ledger: existing, Duplicates: len(duplicates), Aborted: true}, nil
		}
	}

	merged := make([]model.Transaction, 0, len(existing)+len(unique))
	merged = append(merged, existing...)
	merged = append(merged, unique...)

	return MergeResult{Ledger: merged, Appended: len(unique), Duplicates: len(duplicates)}, nil
}
