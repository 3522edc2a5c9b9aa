package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/priyanshbendre/cashflow/internal/config"
	"github.com/priyanshbendre/cashflow/internal/ingest"
)

// resolveLayout picks the raw-export layout: an explicit --layout flag
// wins, then the config's explicit columns, then its named layout,
// then "generic".
func resolveLayout(cfg *config.Config, flagName string) (ingest.Layout, error) {
	registry := ingest.DefaultRegistry()

	if flagName != "" {
		l, ok := registry.Get(flagName)
		if !ok {
			return ingest.Layout{}, fmt.Errorf("unknown layout %q (available: %s)", flagName, knownLayouts(registry))
		}
		return l, nil
	}

	if cols := cfg.Import.Columns; cols != nil {
		return ingest.Layout{
			Name:      "custom",
			DateCol:   cols.Date,
			AmountCol: cols.Amount,
			DescCol:   cols.Description,
		}, nil
	}

	name := cfg.Import.Layout
	if name == "" {
		name = "generic"
	}
	l, ok := registry.Get(name)
	if !ok {
		return ingest.Layout{}, fmt.Errorf("unknown layout %q in config (available: %s)", name, knownLayouts(registry))
	}
	return l, nil
}

func knownLayouts(r *ingest.Registry) string {
	names := r.Names()
	sort.Strings(names)
	return strings.Join(names, ", ")
}
