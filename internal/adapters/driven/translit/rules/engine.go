package rules

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/myanmartools/zuc-cli/internal/adapters/driven/translit/rules/tables"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.Transliterator = (*Engine)(nil)

// Rule is a single substitution as written in a table file.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// tableFile is the on-disk shape of a rule table.
type tableFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Rules       []Rule `yaml:"rules"`
}

type compiledRule struct {
	re *regexp.Regexp
	to string
}

// Table is a compiled, ordered list of rules.
type Table struct {
	Name        domain.RuleName
	Description string
	rules       []compiledRule
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Apply runs every rule over text in order. It returns ctx.Err() if the
// context is cancelled between rules.
func (t *Table) Apply(ctx context.Context, text string) (string, error) {
	for _, r := range t.rules {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text = r.re.ReplaceAllString(text, r.to)
	}
	return text, nil
}

// ParseTable parses and compiles a YAML rule table.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidTable)
	}

	t := &Table{
		Name:        domain.RuleName(f.Name),
		Description: f.Description,
		rules:       make([]compiledRule, 0, len(f.Rules)),
	}
	for i, r := range f.Rules {
		if r.From == "" {
			return nil, fmt.Errorf("%w: %s rule %d has empty pattern", ErrInvalidTable, f.Name, i+1)
		}
		re, err := regexp.Compile(r.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %s rule %d: %v", ErrInvalidTable, f.Name, i+1, err)
		}
		t.rules = append(t.rules, compiledRule{re: re, to: r.To})
	}
	return t, nil
}

// Engine applies named rule tables.
// It is safe for concurrent use once constructed.
type Engine struct {
	tables map[domain.RuleName]*Table
	now    func() time.Time
}

// New creates an engine with the built-in zg2uni and uni2zg tables.
func New() (*Engine, error) {
	return Load(tables.FS)
}

// Load creates an engine from every *.yaml file at the root of fsys.
func Load(fsys fs.FS) (*Engine, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing rule tables: %w", err)
	}
	sort.Strings(names)

	e := &Engine{
		tables: make(map[domain.RuleName]*Table, len(names)),
		now:    time.Now,
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		t, err := ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if _, ok := e.tables[t.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, t.Name)
		}
		e.tables[t.Name] = t
	}
	return e, nil
}

// NewFromStore creates an engine with the zg2uni and uni2zg tables
// supplied by store.
func NewFromStore(store driven.RuleTableStore) (*Engine, error) {
	e := &Engine{
		tables: make(map[domain.RuleName]*Table, 2),
		now:    time.Now,
	}
	for _, rule := range []domain.RuleName{domain.RuleZawgyiToUnicode, domain.RuleUnicodeToZawgyi} {
		data, err := store.Load(rule)
		if err != nil {
			return nil, err
		}
		t, err := ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule, err)
		}
		if t.Name != rule {
			return nil, fmt.Errorf("%w: %s declares name %q", ErrInvalidTable, rule, t.Name)
		}
		e.tables[rule] = t
	}
	return e, nil
}

// Table returns the compiled table for rule, if loaded.
func (e *Engine) Table(rule domain.RuleName) (*Table, bool) {
	t, ok := e.tables[rule]
	return t, ok
}

// Rules lists the loaded table names in sorted order.
func (e *Engine) Rules() []domain.RuleName {
	out := make([]domain.RuleName, 0, len(e.tables))
	for name := range e.tables {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Translit applies rule to text.
func (e *Engine) Translit(ctx context.Context, text string, rule domain.RuleName) (*domain.ConversionResult, error) {
	t, ok := e.tables[rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedRule, rule)
	}

	start := e.now()
	out, err := t.Apply(ctx, text)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionResult{
		OutputText:  out,
		RuleApplied: rule,
		WasReplaced: out != text,
		Duration:    e.now().Sub(start),
	}, nil
}
