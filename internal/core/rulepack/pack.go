// Package rulepack loads and compiles the sentence validation rules from the
// embedded rules.yaml (or an operator supplied override)
package rulepack

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	perr "thaicurate/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embedded []byte

// Scope says which kind of text unit a rule applies to
type Scope uint8

const (
	// ScopeSentence is a whole candidate sentence
	ScopeSentence Scope = 1 << iota
	// ScopeWord is one word produced by salvage
	ScopeWord
	// ScopeBoth applies everywhere
	ScopeBoth = ScopeSentence | ScopeWord
)

func (s Scope) String() string {
	switch s {
	case ScopeSentence:
		return "sentence"
	case ScopeWord:
		return "word"
	case ScopeBoth:
		return "both"
	default:
		return "none"
	}
}

func parseScope(s string) (Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return ScopeBoth, true
	case "sentence":
		return ScopeSentence, true
	case "word":
		return ScopeWord, true
	}
	return 0, false
}

type rawRepeat struct {
	Class string `yaml:"class"`
	Max   int    `yaml:"max"`
}

type rawRule struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label"`
	Scope    string     `yaml:"scope"`
	Pattern  string     `yaml:"pattern"`
	Repeat   *rawRepeat `yaml:"repeat"`
	Examples []string   `yaml:"examples"`
}

type rawPack struct {
	Version   int               `yaml:"version"`
	MinLength int               `yaml:"min_length"`
	MaxLength int               `yaml:"max_length"`
	Classes   map[string]string `yaml:"classes"`
	Rules     []rawRule         `yaml:"rules"`
}

// Pack is an ordered, compiled rule list. It is immutable after Load and safe
// for concurrent use
type Pack struct {
	Version   int
	MinLength int
	MaxLength int
	Rules     []Rule
}

// Rule is one structural predicate over a text unit
type Rule struct {
	ID       string
	Label    string
	Scope    Scope
	Pattern  string // expanded regexp, or a description of the repeat matcher
	Examples []string

	m matcher
}

type matcher interface {
	find(s string) (loc []int)
}

// Match reports whether the rule fires on s
func (r *Rule) Match(s string) bool { return r.m.find(s) != nil }

// Find returns the offending substring when the rule fires
func (r *Rule) Find(s string) (string, bool) {
	loc := r.m.find(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

// AppliesTo reports whether the rule is evaluated for units of scope
func (r *Rule) AppliesTo(scope Scope) bool { return r.Scope&scope != 0 }

// Load returns the compiled pack from the embedded rules.yaml
func Load() (*Pack, error) { return Parse(embedded) }

// LoadFile compiles the pack at path
func LoadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read rule pack %s", path)
	}
	p, err := Parse(b)
	if err != nil {
		return nil, perr.WithOp(err, path)
	}
	return p, nil
}

// MustLoad is Load for package init and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse compiles a rule pack document
func Parse(data []byte) (*Pack, error) {
	var rp rawPack
	if err := yaml.Unmarshal(data, &rp); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeRulePack, "parse rule pack")
	}
	if rp.Version != 1 {
		return nil, perr.RulePackf("unsupported rule pack version %d (want 1)", rp.Version)
	}
	if rp.MinLength <= 0 || rp.MaxLength < rp.MinLength {
		return nil, perr.RulePackf("invalid length bounds [%d, %d]", rp.MinLength, rp.MaxLength)
	}

	p := &Pack{Version: rp.Version, MinLength: rp.MinLength, MaxLength: rp.MaxLength}
	seen := make(map[string]struct{}, len(rp.Rules))
	for i, raw := range rp.Rules {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			return nil, perr.RulePackf("rule %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, perr.RulePackf("duplicate rule id %q", id)
		}
		seen[id] = struct{}{}

		scope, ok := parseScope(raw.Scope)
		if !ok {
			return nil, perr.RulePackf("rule %s: unknown scope %q", id, raw.Scope)
		}
		label := strings.TrimSpace(raw.Label)
		if label == "" {
			label = id
		}

		r := Rule{ID: id, Label: label, Scope: scope, Examples: raw.Examples}
		switch {
		case raw.Pattern != "" && raw.Repeat != nil:
			return nil, perr.RulePackf("rule %s: pattern and repeat are exclusive", id)
		case raw.Pattern != "":
			exp, err := expandClasses(raw.Pattern, rp.Classes)
			if err != nil {
				return nil, perr.WithOp(err, id)
			}
			re, err := regexp.Compile(exp)
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeRulePack, "rule %s: compile %q", id, exp)
			}
			r.Pattern = exp
			r.m = regexpMatcher{re}
		case raw.Repeat != nil:
			rm, err := newRepeatMatcher(raw.Repeat.Class, raw.Repeat.Max)
			if err != nil {
				return nil, perr.WithOp(err, id)
			}
			r.Pattern = rm.String()
			r.m = rm
		default:
			return nil, perr.RulePackf("rule %s: needs a pattern or a repeat matcher", id)
		}
		p.Rules = append(p.Rules, r)
	}
	return p, nil
}

// classRef also matches \p{..}, \P{..} and \x{..} so RE2 escapes can be skipped
var classRef = regexp.MustCompile(`\\[pPx]\{[0-9A-Za-z_]+\}|\{([A-Z][A-Z_]*)\}`)

// expandClasses replaces {NAME} with the named class body. Counted repetitions
// such as {2} or {31,} and escapes such as \p{P} or \x{FEFF} are left alone;
// an unknown name is an error
func expandClasses(pattern string, classes map[string]string) (string, error) {
	var missing string
	out := classRef.ReplaceAllStringFunc(pattern, func(tok string) string {
		if tok[0] == '\\' {
			return tok
		}
		name := tok[1 : len(tok)-1]
		body, ok := classes[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return tok
		}
		return body
	})
	if missing != "" {
		return "", perr.RulePackf("unknown class {%s}", missing)
	}
	return out, nil
}

// Rule returns the rule with id
func (p *Pack) Rule(id string) (*Rule, bool) {
	for i := range p.Rules {
		if p.Rules[i].ID == id {
			return &p.Rules[i], true
		}
	}
	return nil, false
}

// VerifyExamples checks that every example fires its own rule
func (p *Pack) VerifyExamples() error {
	for i := range p.Rules {
		r := &p.Rules[i]
		for _, ex := range r.Examples {
			if !r.Match(ex) {
				return perr.RulePackf("rule %s: example %q does not match", r.ID, ex)
			}
		}
	}
	return nil
}

type regexpMatcher struct{ re *regexp.Regexp }

func (m regexpMatcher) find(s string) []int { return m.re.FindStringIndex(s) }

// repeatMatcher fires when one rune of its class occurs more than max times in
// a row. RE2 has no backreferences, so this cannot be a pattern
type repeatMatcher struct {
	class string
	in    func(rune) bool
	max   int
}

func newRepeatMatcher(class string, max int) (repeatMatcher, error) {
	if max < 1 {
		return repeatMatcher{}, perr.RulePackf("repeat max must be >= 1, got %d", max)
	}
	var in func(rune) bool
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "any":
		in = func(r rune) bool { return !unicode.IsSpace(r) }
	case "consonant":
		in = func(r rune) bool { return r >= 0x0E01 && r <= 0x0E2E }
	case "thai_vowel_mark":
		in = func(r rune) bool { return r == 0x0E31 || (r >= 0x0E34 && r <= 0x0E3A) || (r >= 0x0E47 && r <= 0x0E4E) }
	default:
		return repeatMatcher{}, perr.RulePackf("unknown repeat class %q", class)
	}
	return repeatMatcher{class: class, in: in, max: max}, nil
}

func (m repeatMatcher) String() string {
	return "repeat(" + m.class + ") > " + strconv.Itoa(m.max)
}

func (m repeatMatcher) find(s string) []int {
	var (
		prev  rune = -1
		start int
		count int
	)
	for i, r := range s {
		if r == prev {
			count++
		} else {
			prev, start, count = r, i, 1
		}
		if count > m.max && m.in(r) {
			// extend to the end of the run
			end := i + utf8.RuneLen(r)
			for end < len(s) {
				nr, size := utf8.DecodeRuneInString(s[end:])
				if nr != r {
					break
				}
				end += size
			}
			return []int{start, end}
		}
	}
	return nil
}
