package config

// Default returns a starter configuration for a new workspace.
// The patterns are a seed set meant to be edited, not a taxonomy.
func Default() *Config {
	return &Config{
		Vendors: Patterns{
			{Name: "Amazon", Patterns: []string{"amazon", "amzn"}},
			{Name: "Costco", Patterns: []string{"costco"}},
			{Name: "Groceries", Patterns: []string{"safeway", "trader joe", "whole foods"}},
			{Name: "Utilities", Patterns: []string{"pg&e", "comcast", "xfinity"}},
			{Name: "Rent", Patterns: []string{"rent payment"}},
			{Name: "Vanguard", Patterns: []string{"vanguard"}},
			{Name: "Fidelity", Patterns: []string{"fidelity", "fid bkg"}},
		},
		Investments: []string{"Vanguard", "Fidelity"},
		Import: ImportConfig{
			Layout: "wellsfargo",
		},
	}
}
