// Package transform rewrites candidate sentences into canonical lexical form
// Stage order
// 1 remove_newlines
// 2 remove_symbols (before gloss removal so stray glyphs cannot hide a boundary)
// 3 remove_latin_glosses
// 4 remove_enumerator
// 5 expand_percent
// 6 lexicalize_numbers (before any length or repetition rule sees the text)
// 7 expand_maiyamok
// 8 collapse_spaces
// 9 strip_quotes
package transform

import (
	"thaicurate/internal/core/lexicon"
)

// Pipeline applies an ordered list of stages. It holds no mutable state and is
// safe for concurrent use
type Pipeline struct {
	stages []Stage
}

// Step records the output of one stage during Trace
type Step struct {
	Stage string
	Out   string
}

// New builds the canonical pipeline using tok for repetition-mark expansion
func New(tok Tokenizer) *Pipeline {
	return &Pipeline{stages: []Stage{
		RemoveNewlines,
		RemoveSymbols,
		RemoveLatinGlosses,
		RemoveEnumerator,
		ExpandPercent,
		LexicalizeNumbers,
		ExpandMaiyamok(tok),
		CollapseSpaces,
		StripQuotes,
	}}
}

// Default builds the canonical pipeline over the embedded lexicon
func Default() *Pipeline {
	return New(lexicon.Default())
}

// Apply runs every stage in order. It never fails; stages with nothing to
// rewrite return their input unchanged
func (p *Pipeline) Apply(s string) string {
	for _, st := range p.stages {
		s = st.Apply(s)
	}
	return s
}

// Stages returns the stage names in execution order
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, st := range p.stages {
		out[i] = st.Name
	}
	return out
}

// Trace is Apply that also returns every intermediate output
func (p *Pipeline) Trace(s string) (string, []Step) {
	steps := make([]Step, 0, len(p.stages))
	for _, st := range p.stages {
		s = st.Apply(s)
		steps = append(steps, Step{Stage: st.Name, Out: s})
	}
	return s, steps
}
