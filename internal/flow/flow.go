// Package flow aggregates the ledger into cash-flow totals and renders
// them as a Sankey diagram.
package flow

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/priyanshbendre/cashflow/internal/model"
)

// VendorTotal is a per-vendor absolute-amount sum within one category.
type VendorTotal struct {
	Vendor string
	Total  decimal.Decimal
}

// Summary holds the aggregate cash movement of a ledger.
type Summary struct {
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
	TotalInvestments decimal.Decimal

	// Per-vendor breakdowns, sorted by vendor name for stable output.
	OutByVendor         []VendorTotal
	InvestmentsByVendor []VendorTotal
}

// Aggregate sums ledger rows by cash-flow category and, within
// cash_out and cash_investments, by vendor. Outflow sums use absolute
// amounts.
func Aggregate(txns []model.Transaction) Summary {
	s := Summary{}
	outByVendor := make(map[string]decimal.Decimal)
	investByVendor := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		switch txn.CashFlow {
		case model.CashIn:
			s.TotalIn = s.TotalIn.Add(txn.Amount)
		case model.CashOut:
			abs := txn.Amount.Abs()
			s.TotalOut = s.TotalOut.Add(abs)
			outByVendor[txn.Vendor] = outByVendor[txn.Vendor].Add(abs)
		case model.CashInvestments:
			abs := txn.Amount.Abs()
			s.TotalInvestments = s.TotalInvestments.Add(abs)
			investByVendor[txn.Vendor] = investByVendor[txn.Vendor].Add(abs)
		}
	}

	s.OutByVendor = sortedTotals(outByVendor)
	s.InvestmentsByVendor = sortedTotals(investByVendor)
	return s
}

func sortedTotals(byVendor map[string]decimal.Decimal) []VendorTotal {
	totals := make([]VendorTotal, 0, len(byVendor))
	for vendor, total := range byVendor {
		totals = append(totals, VendorTotal{Vendor: vendor, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Vendor < totals[j].Vendor
	})
	return totals
}
