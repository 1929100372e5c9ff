// Package validator admits or rejects text units against a rule pack.
// Length is checked first, then rules in declaration order; the first rule that
// fires decides the diagnostic and later rules are not evaluated
package validator

import (
	"unicode/utf8"

	"thaicurate/internal/core/rulepack"
	perr "thaicurate/internal/platform/errors"
)

// Scope re-exports the rule scopes callers validate at
type Scope = rulepack.Scope

const (
	// Sentence validates a whole candidate sentence
	Sentence = rulepack.ScopeSentence
	// Word validates one salvaged word
	Word = rulepack.ScopeWord
)

// Violation classifies why a unit was rejected
type Violation uint8

const (
	// None means the unit was accepted
	None Violation = iota
	// Length means the rune count fell outside the pack bounds
	Length
	// Rule means a pattern rule fired
	Rule
)

// Result is produced fresh per call
type Result struct {
	Accepted  bool
	Violation Violation
	Rule      *rulepack.Rule // set when Violation == Rule
	Length    int            // rune count of the unit
	Match     string         // offending substring when Violation == Rule
}

// Label is the diagnostic label of the violation, empty when accepted
func (r Result) Label() string {
	switch r.Violation {
	case Length:
		return "length"
	case Rule:
		return r.Rule.Label
	}
	return ""
}

// Err renders a rejection as an error for logging; nil when accepted
func (r Result) Err() error {
	switch r.Violation {
	case Length:
		return perr.Newf(perr.ErrorCodeLengthViolation, "length %d out of bounds", r.Length)
	case Rule:
		return perr.WithField(perr.Newf(perr.ErrorCodeRuleViolation, "%s: %q", r.Rule.Label, r.Match), r.Rule.ID)
	}
	return nil
}

// Validator is immutable and safe for concurrent use
type Validator struct {
	pack *rulepack.Pack
}

// New returns a validator over pack
func New(pack *rulepack.Pack) *Validator {
	return &Validator{pack: pack}
}

// Default returns a validator over the embedded rule pack
func Default() *Validator {
	return New(rulepack.MustLoad())
}

// Pack returns the rule pack in use
func (v *Validator) Pack() *rulepack.Pack { return v.pack }

// Validate checks unit at scope
func (v *Validator) Validate(unit string, scope Scope) Result {
	n := utf8.RuneCountInString(unit)
	if n < v.pack.MinLength || n > v.pack.MaxLength {
		return Result{Violation: Length, Length: n}
	}
	for i := range v.pack.Rules {
		r := &v.pack.Rules[i]
		if !r.AppliesTo(scope) {
			continue
		}
		if m, ok := r.Find(unit); ok {
			return Result{Violation: Rule, Rule: r, Length: n, Match: m}
		}
	}
	return Result{Accepted: true, Length: n}
}

// Accepts is Validate(unit, scope).Accepted
func (v *Validator) Accepts(unit string, scope Scope) bool {
	return v.Validate(unit, scope).Accepted
}

// Check evaluates every rule without short-circuiting and returns those that
// fire, in declaration order. The length gate is not part of the result
func (v *Validator) Check(unit string, scope Scope) []*rulepack.Rule {
	var out []*rulepack.Rule
	for i := range v.pack.Rules {
		r := &v.pack.Rules[i]
		if r.AppliesTo(scope) && r.Match(unit) {
			out = append(out, r)
		}
	}
	return out
}
