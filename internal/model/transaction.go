package model

import (
	"github.com/shopspring/decimal"
)

// CashFlow classifies the direction of money movement for a transaction.
type CashFlow string

const (
	CashIn          CashFlow = "cash_in"
	CashOut         CashFlow = "cash_out"
	CashInvestments CashFlow = "cash_investments"
)

// Transaction is one classified row in the ledger.
//
// Date stays the verbatim string from the bank export. Exports use
// differing date formats and (date, amount, description) is the
// duplicate-detection identity, so reformatting the date would change
// row identity between runs.
type Transaction struct {
	Date        string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Description string
	Vendor      string // "Other" when no pattern matches
	CashFlow    CashFlow
}
