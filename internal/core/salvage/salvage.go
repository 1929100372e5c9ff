// Package salvage recovers well-formed words from a rejected sentence.
// It only re-validates; it never rewrites text
package salvage

import (
	"unicode/utf8"

	"thaicurate/internal/core/segment"
	"thaicurate/internal/core/validator"
)

// Status distinguishes the ways a salvage attempt can end
type Status uint8

const (
	// Recovered means at least one word passed
	Recovered Status = iota + 1
	// NoSurvivors means the split worked but every word was rejected
	NoSurvivors
	// MalformedSplit means the sentence produced no candidate words
	MalformedSplit
)

func (s Status) String() string {
	switch s {
	case Recovered:
		return "recovered"
	case NoSurvivors:
		return "no_survivors"
	case MalformedSplit:
		return "malformed_split"
	default:
		return "unknown"
	}
}

// SpellingLabel is reported for words dropped by the spelling gate
const SpellingLabel = "spelling"

// SpellChecker is the optional spelling oracle
type SpellChecker interface {
	IsCorrect(word string) bool
}

// Rejection records one dropped word and why
type Rejection struct {
	Word  string
	Label string
}

// Outcome is the result of one Salvage call
type Outcome struct {
	Status   Status
	Words    []string // survivors in sentence order
	Rejected []Rejection
}

// Salvager is immutable and safe for concurrent use
type Salvager struct {
	v     *validator.Validator
	spell SpellChecker
}

// Option configures a Salvager
type Option func(*Salvager)

// WithSpellChecker requires survivors to also pass sc
func WithSpellChecker(sc SpellChecker) Option {
	return func(s *Salvager) { s.spell = sc }
}

// New returns a Salvager validating words with v
func New(v *validator.Validator, opts ...Option) *Salvager {
	s := &Salvager{v: v}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Salvage splits sentence on spaces and keeps the words that validate at word scope
func (s *Salvager) Salvage(sentence string) Outcome {
	if !utf8.ValidString(sentence) {
		return Outcome{Status: MalformedSplit}
	}
	words := segment.Words(sentence)
	if len(words) == 0 {
		return Outcome{Status: MalformedSplit}
	}

	var out Outcome
	for _, w := range words {
		res := s.v.Validate(w, validator.Word)
		switch {
		case !res.Accepted:
			out.Rejected = append(out.Rejected, Rejection{Word: w, Label: res.Label()})
		case s.spell != nil && !s.spell.IsCorrect(w):
			out.Rejected = append(out.Rejected, Rejection{Word: w, Label: SpellingLabel})
		default:
			out.Words = append(out.Words, w)
		}
	}
	out.Status = NoSurvivors
	if len(out.Words) > 0 {
		out.Status = Recovered
	}
	return out
}
