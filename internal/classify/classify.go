// Package classify turns raw export rows into normalized transactions.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/priyanshbendre/cashflow/internal/config"
	"github.com/priyanshbendre/cashflow/internal/ingest"
	"github.com/priyanshbendre/cashflow/internal/model"
)

// Rows classifies raw rows into transactions using the vendor
// configuration. Rows whose amount does not parse as a number are
// dropped and counted, never an error. Input order is preserved.
//
// Pure: no I/O, no mutation of inputs.
func Rows(rows []ingest.RawRow, cfg *config.Config) (txns []model.Transaction, dropped int) {
	for _, row := range rows {
		amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
		if err != nil {
			dropped++
			continue
		}

		vendor := Vendor(row.Description, cfg.Vendors)
		txns = append(txns, model.Transaction{
			Date:        row.Date,
			Amount:      amount,
			Description: row.Description,
			Vendor:      vendor,
			CashFlow:    Flow(amount, vendor, cfg),
		})
	}
	return txns, dropped
}

// Vendor returns the first configured vendor with a pattern contained
// case-insensitively in the description, or "Other".
func Vendor(description string, rules config.Patterns) string {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if pattern == "" {
				continue
			}
			if strings.Contains(desc, strings.ToLower(pattern)) {
				return rule.Name
			}
		}
	}
	return "Other"
}

// Flow derives the cash-flow category from the amount sign and vendor.
// Any non-negative amount is cash_in, even for investment vendors
// (a positive row is money arriving regardless of counterparty).
func Flow(amount decimal.Decimal, vendor string, cfg *config.Config) model.CashFlow {
	switch {
	case amount.Sign() >= 0:
		return model.CashIn
	case cfg.IsInvestment(vendor):
		return model.CashInvestments
	default:
		return model.CashOut
	}
}
