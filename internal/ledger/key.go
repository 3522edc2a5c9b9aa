package ledger

import (
	"github.com/priyanshbendre/cashflow/internal/model"
)

// Key returns the deduplication identity of a transaction: the
// delimited (date, amount, description) tuple. The amount contributes
// its normalized Decimal.String() form, which is also what the ledger
// codec writes and re-parses, so a row keeps the same key across runs.
// Vendor and cash-flow are derived fields and never identity-bearing,
// so reclassifying the same export under a different vendor
// configuration finds the same duplicates.
func Key(txn model.Transaction) string {
	return txn.Date + "_" + txn.Amount.String() + "_" + txn.Description
}
