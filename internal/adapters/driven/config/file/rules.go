package file

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/translit/rules/tables"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure RuleTableStore implements the interface.
var _ driven.RuleTableStore = (*RuleTableStore)(nil)

// RuleTableStore loads transliteration rule tables from user-editable
// files on disk, falling back to the built-in tables.
//
// The store uses lazy initialisation: files are only created when first
// accessed, not in the constructor.
type RuleTableStore struct {
	mu       sync.RWMutex
	ruleDir  string
	defaults fs.FS
	cache    map[domain.RuleName][]byte
	initOnce sync.Once
	initErr  error
}

// NewRuleTableStore creates a new file-based rule table store.
// If ruleDir is empty, defaults to ~/.zuc/rules/.
func NewRuleTableStore(ruleDir string) (*RuleTableStore, error) {
	if ruleDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		ruleDir = filepath.Join(home, ".zuc", "rules")
	}

	return &RuleTableStore{
		ruleDir:  ruleDir,
		defaults: tables.FS,
		cache:    make(map[domain.RuleName][]byte),
	}, nil
}

// Load returns the table source for rule.
// On first call, initialises the rule directory with the built-in tables.
func (s *RuleTableStore) Load(rule domain.RuleName) ([]byte, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if data, err := s.loadDefault(rule); err == nil {
			return data, nil
		}
		return nil, fmt.Errorf("rule store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if data, ok := s.cache[rule]; ok {
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(s.path(rule))
	if err != nil {
		if def, derr := s.loadDefault(rule); derr == nil {
			return def, nil
		}
		return nil, fmt.Errorf("load rule table %q: %w", rule, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[rule]; ok {
		data = cached
	} else {
		s.cache[rule] = data
	}
	s.mu.Unlock()

	return data, nil
}

// Reload clears the cache, forcing fresh loads from disk.
func (s *RuleTableStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[domain.RuleName][]byte)
	s.mu.Unlock()
}

// Dir returns the rule directory path.
func (s *RuleTableStore) Dir() string {
	return s.ruleDir
}

func (s *RuleTableStore) path(rule domain.RuleName) string {
	return filepath.Join(s.ruleDir, string(rule)+".yaml")
}

func (s *RuleTableStore) loadDefault(rule domain.RuleName) ([]byte, error) {
	return fs.ReadFile(s.defaults, string(rule)+".yaml")
}

// initialise creates the rule directory and copies in the built-in
// tables that are not already present.
func (s *RuleTableStore) initialise() {
	if err := os.MkdirAll(s.ruleDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create rule directory: %w", err)
		return
	}

	names, err := fs.Glob(s.defaults, "*.yaml")
	if err != nil {
		s.initErr = err
		return
	}
	for _, name := range names {
		path := filepath.Join(s.ruleDir, name)
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			continue
		}
		data, err := fs.ReadFile(s.defaults, name)
		if err != nil {
			s.initErr = err
			return
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			s.initErr = fmt.Errorf("create default rule table %q: %w", name, err)
			return
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *RuleTableStore) createReadme() error {
	path := filepath.Join(s.ruleDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	content := `# zuc rule tables

This directory holds the transliteration tables used when
` + "`rules.custom = true`" + ` is set in config.toml.

## Files

- ` + "`zg2uni.yaml`" + ` - Zawgyi to Unicode
- ` + "`uni2zg.yaml`" + ` - Unicode to Zawgyi

## Format

Each rule is a regular expression (` + "`from`" + `) and a replacement
(` + "`to`" + `). Rules run top to bottom, each on the output of the one
before. Use ` + "`${1}`" + ` to refer to capture groups. Delete a file to
restore the built-in table.
`
	return os.WriteFile(path, []byte(content), 0600)
}
