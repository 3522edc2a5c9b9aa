package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/priyanshbendre/cashflow/internal/classify"
	"github.com/priyanshbendre/cashflow/internal/config"
)

func newClassifyCommand() *cobra.Command {
	var configPath string
	var layoutName string

	cmd := &cobra.Command{
		Use:   "classify <raw.csv>",
		Short: "Preview how a raw export would be classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(configPath, args[0], layoutName, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", ConfigFileName, "vendor configuration file")
	cmd.Flags().StringVar(&layoutName, "layout", "", "raw export layout (overrides config)")

	return cmd
}

func runClassify(configPath, rawPath, layoutName string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(rawPath)
	if err != nil {
		return fmt.Errorf("opening raw export: %w", err)
	}
	defer f.Close()

	layout, err := resolveLayout(cfg, layoutName)
	if err != nil {
		return err
	}

	rows, err := layout.Parse(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rawPath, err)
	}

	txns, dropped := classify.Rows(rows, cfg)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tAMOUNT\tVENDOR\tCASH_FLOW\tDESCRIPTION")
	for _, txn := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", txn.Date, txn.Amount.String(), txn.Vendor, txn.CashFlow, txn.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d transaction(s)", len(txns))
	if dropped > 0 {
		fmt.Fprintf(out, ", %d row(s) dropped (non-numeric amount)", dropped)
	}
	fmt.Fprintln(out)
	return nil
}
