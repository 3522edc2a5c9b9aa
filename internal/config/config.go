package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cashflow.yaml configuration.
//
// The loader also accepts the legacy config.json layout: YAML 1.2 is a
// superset of JSON, so the same two recognized fields (patterns_wf,
// cash_investments) parse either way.
type Config struct {
	Vendors     Patterns     `yaml:"patterns_wf"`
	Investments []string     `yaml:"cash_investments"`
	Import      ImportConfig `yaml:"import,omitempty"`
	Git         GitConfig    `yaml:"git,omitempty"`
}

// VendorRule maps a vendor name to its description patterns.
type VendorRule struct {
	Name     string
	Patterns []string
}

// Patterns is the ordered vendor → pattern-list mapping. Order matters:
// the first vendor with a matching pattern wins during classification,
// so decoding must preserve the document order of the mapping keys.
type Patterns []VendorRule

// ImportConfig selects how raw bank exports are interpreted.
// Either a named layout or explicit column positions; explicit columns
// take precedence when both are set.
type ImportConfig struct {
	Layout  string   `yaml:"layout,omitempty"`
	Columns *Columns `yaml:"columns,omitempty"`
}

// Columns gives explicit zero-based column positions in the raw export.
type Columns struct {
	Date        int `yaml:"date"`
	Amount      int `yaml:"amount"`
	Description int `yaml:"description"`
}

// GitConfig controls git integration for the ledger directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
}

// UnmarshalYAML decodes patterns_wf while preserving mapping order.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("patterns_wf: expected a mapping of vendor to pattern list")
	}
	rules := make(Patterns, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		var patterns []string
		if err := node.Content[i+1].Decode(&patterns); err != nil {
			return fmt.Errorf("patterns_wf[%s]: %w", key.Value, err)
		}
		rules = append(rules, VendorRule{Name: key.Value, Patterns: patterns})
	}
	*p = rules
	return nil
}

// MarshalYAML encodes patterns_wf as a mapping in rule order.
func (p Patterns) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, rule := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: rule.Name}
		var val yaml.Node
		if err := val.Encode(rule.Patterns); err != nil {
			return nil, fmt.Errorf("patterns_wf[%s]: %w", rule.Name, err)
		}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}

// IsInvestment reports whether vendor is in the cash_investments set.
func (c *Config) IsInvestment(vendor string) bool {
	for _, v := range c.Investments {
		if v == vendor {
			return true
		}
	}
	return false
}

// Load reads a cashflow.yaml (or config.json) file from disk.
// A missing file is a fatal configuration error for the run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
