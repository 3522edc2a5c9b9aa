package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/priyanshbendre/cashflow/internal/config"
	"github.com/priyanshbendre/cashflow/internal/gitops"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "cashflow.yaml"

func newInitCommand() *cobra.Command {
	var withGit bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, withGit, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and create an initial commit")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration")

	return cmd
}

func runInit(dir string, withGit, force bool, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg := config.Default()
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if withGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return fmt.Errorf("git init: %w", err)
			}
		}
		if _, err := gitops.Commit(dir, "init: cash-flow workspace", cfg.Git.AuthorName, cfg.Git.AuthorEmail, ConfigFileName); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Fprintf(out, "Wrote starter configuration to %s\n", path)
	fmt.Fprintln(out, "Edit patterns_wf and cash_investments to match your statements.")
	return nil
}
