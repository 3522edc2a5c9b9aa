// Package gitops keeps the ledger directory under version control by
// shelling out to git.
package gitops

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], bytes.TrimSpace(out), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := run(dir, "init")
	return err
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(dir string) bool {
	out, err := run(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Commit stages the given paths (relative to dir) and commits them.
// With no paths, everything is staged. Returns the short commit hash.
func Commit(dir, message, authorName, authorEmail string, paths ...string) (string, error) {
	addArgs := []string{"add", "-A"}
	if len(paths) > 0 {
		addArgs = append([]string{"add", "--"}, paths...)
	}
	if _, err := run(dir, addArgs...); err != nil {
		return "", err
	}

	var commitArgs []string
	if authorName != "" {
		// Also set committer identity so auto-commit works on machines
		// with no global git config.
		commitArgs = append(commitArgs, "-c", "user.name="+authorName, "-c", "user.email="+authorEmail)
	}
	commitArgs = append(commitArgs, "commit", "-m", message)
	if authorName != "" {
		commitArgs = append(commitArgs, "--author", fmt.Sprintf("%s <%s>", authorName, authorEmail))
	}
	if _, err := run(dir, commitArgs...); err != nil {
		return "", err
	}

	return run(dir, "rev-parse", "--short", "HEAD")
}
