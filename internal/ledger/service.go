package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/priyanshbendre/cashflow/internal/model"
)

// Service owns the ledger artifact on disk.
type Service struct {
	path string
}

// NewService creates a Service for the ledger at path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Path returns the ledger file path.
func (s *Service) Path() string { return s.path }

// Exists reports whether the ledger file exists.
func (s *Service) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the ledger. A missing file is not an error: it returns
// nil, nil (the first-run state).
func (s *Service) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	txns, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return txns, nil
}

// Merge loads the ledger, merges the incoming batch, and persists the
// result. The ledger file is only replaced after a fully successful
// merge; aborted or no-op merges leave it byte-identical. An empty
// incoming batch on first run does not create the file.
func (s *Service) Merge(incoming []model.Transaction, decide Decider) (MergeResult, error) {
	existing, err := s.Load()
	if err != nil {
		return MergeResult{}, err
	}

	res, err := Merge(existing, incoming, decide)
	if err != nil || res.Aborted {
		return res, err
	}

	if res.Appended == 0 && (s.Exists() || len(res.Ledger) == 0) {
		return res, nil
	}

	if err := s.persist(res.Ledger); err != nil {
		return MergeResult{}, err
	}
	return res, nil
}

// persist writes the full ledger to a temp file in the same directory
// and renames it into place, so a failure mid-write never corrupts the
// existing artifact.
func (s *Service) persist(txns []model.Transaction) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, txns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
