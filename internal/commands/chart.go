package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyanshbendre/cashflow/internal/flow"
	"github.com/priyanshbendre/cashflow/internal/ledger"
)

// ChartFileName is the default chart output, kept from the original tool.
const ChartFileName = "cash_flow_sankey_chart.html"

func newChartCommand() *cobra.Command {
	var ledgerPath string
	var outPath string
	var title string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the ledger as a Sankey cash-flow diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(ledgerPath, outPath, title, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&ledgerPath, "ledger", LedgerFileName, "ledger file")
	cmd.Flags().StringVar(&outPath, "out", ChartFileName, "output HTML file")
	cmd.Flags().StringVar(&title, "title", "Cash Flow Sankey Diagram", "chart title")

	return cmd
}

func runChart(ledgerPath, outPath, title string, out io.Writer) error {
	svc := ledger.NewService(ledgerPath)
	if !svc.Exists() {
		return fmt.Errorf("ledger %s not found; run \"cashflow merge\" first", ledgerPath)
	}

	txns, err := svc.Load()
	if err != nil {
		return err
	}

	diagram := flow.BuildSankey(flow.Aggregate(txns))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := flow.RenderHTML(f, diagram, title); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%d nodes, %d links)\n", outPath, len(diagram.Labels), len(diagram.Links))
	return nil
}
