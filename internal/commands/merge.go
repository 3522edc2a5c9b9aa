package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/priyanshbendre/cashflow/internal/classify"
	"github.com/priyanshbendre/cashflow/internal/config"
	"github.com/priyanshbendre/cashflow/internal/gitops"
	"github.com/priyanshbendre/cashflow/internal/ledger"
	"github.com/priyanshbendre/cashflow/internal/model"
	"github.com/priyanshbendre/cashflow/internal/runlog"
)

// LedgerFileName is the default ledger file name, kept from the
// original tool so existing ledgers load as-is.
const LedgerFileName = "processed_transactions.csv"

type mergeOptions struct {
	configPath string
	ledgerPath string
	rawPath    string
	layout     string
	assumeYes  bool
	dryRun     bool

	in  io.Reader
	out io.Writer
}

func newMergeCommand() *cobra.Command {
	opts := mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge <raw.csv>",
		Short: "Classify a raw export and append it to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.rawPath = args[0]
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runMerge(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", ConfigFileName, "vendor configuration file")
	cmd.Flags().StringVar(&opts.ledgerPath, "ledger", LedgerFileName, "ledger file")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "raw export layout (overrides config)")
	cmd.Flags().BoolVar(&opts.assumeYes, "yes", false, "append unique rows without asking about duplicates")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would change without writing")

	return cmd
}

func runMerge(opts mergeOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	svc := ledger.NewService(opts.ledgerPath)

	f, err := os.Open(opts.rawPath)
	if errors.Is(err, fs.ErrNotExist) {
		if svc.Exists() {
			// Nothing new to do; the ledger stays as it is.
			fmt.Fprintf(opts.out, "%s not found; nothing new to process.\n", opts.rawPath)
			return nil
		}
		return fmt.Errorf("raw export %s not found and no ledger exists yet", opts.rawPath)
	}
	if err != nil {
		return fmt.Errorf("opening raw export: %w", err)
	}
	defer f.Close()

	layout, err := resolveLayout(cfg, opts.layout)
	if err != nil {
		return err
	}

	rows, err := layout.Parse(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.rawPath, err)
	}

	txns, dropped := classify.Rows(rows, cfg)
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "warning: dropped %d row(s) with non-numeric amounts\n", dropped)
	}
	if len(txns) == 0 {
		if len(rows) > 0 {
			return fmt.Errorf("no usable transactions in %s", opts.rawPath)
		}
		fmt.Fprintf(opts.out, "%s is empty; nothing to do.\n", opts.rawPath)
		return nil
	}

	decide := promptDecider(opts.in, opts.out)
	if opts.assumeYes {
		decide = ledger.AcceptAll
	}

	if opts.dryRun {
		existing, err := svc.Load()
		if err != nil {
			return err
		}
		res, err := ledger.Merge(existing, txns, decide)
		if err != nil {
			return err
		}
		if res.Aborted {
			fmt.Fprintln(opts.out, "Dry run: merge would be cancelled.")
			return nil
		}
		fmt.Fprintf(opts.out, "Dry run: would append %d row(s), skip %d duplicate(s).\n", res.Appended, res.Duplicates)
		return nil
	}

	res, err := svc.Merge(txns, decide)
	if err != nil {
		return err
	}

	outcome := "applied"
	if res.Aborted {
		outcome = "aborted"
		fmt.Fprintln(opts.out, "Merge cancelled; ledger left untouched.")
	} else {
		fmt.Fprintf(opts.out, "Appended %d row(s), skipped %d duplicate(s). Ledger has %d row(s).\n",
			res.Appended, res.Duplicates, len(res.Ledger))
	}

	ledgerDir := filepath.Dir(opts.ledgerPath)
	entry := runlog.Entry{
		Timestamp:  time.Now().UTC(),
		Command:    "merge",
		RawFile:    filepath.Base(opts.rawPath),
		Appended:   res.Appended,
		Duplicates: res.Duplicates,
		Dropped:    dropped,
		Outcome:    outcome,
	}
	if err := runlog.Append(ledgerDir, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}

	if !res.Aborted && res.Appended > 0 && cfg.Git.AutoCommit && gitops.IsRepo(ledgerDir) {
		msg := fmt.Sprintf("merge: append %d transaction(s) from %s", res.Appended, filepath.Base(opts.rawPath))
		paths := []string{filepath.Base(opts.ledgerPath), runlog.FileName}
		if _, err := gitops.Commit(ledgerDir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail, paths...); err != nil {
			fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
		}
	}

	return nil
}

// promptDecider shows the duplicate rows and asks for a y/n answer.
// Anything other than "y" aborts.
func promptDecider(in io.Reader, out io.Writer) ledger.Decider {
	return func(duplicates []model.Transaction) (bool, error) {
		fmt.Fprintf(out, "\n%d transaction(s) in the new data match existing ledger rows:\n", len(duplicates))
		for _, txn := range duplicates {
			fmt.Fprintf(out, "  %s  %s  %s\n", txn.Date, txn.Amount.String(), txn.Description)
		}
		fmt.Fprint(out, "\nAppend only the unique new rows? (y/n): ")

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		return strings.EqualFold(strings.TrimSpace(line), "y"), nil
	}
}
