// Package normalize provides the canonicalization oracle and low-level text cleanup
// shared by the curate pipeline
// Canonicalize order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC (reorders Thai combining marks into canonical order)
// 3 Remove invisible zero-width space and byte order marks
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonicalizer is concurrency safe when used with the pool below
type Canonicalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(invisible)),
		)
	},
}

func invisible(r rune) bool {
	return r == '\u200B' || r == '\uFEFF'
}

// New constructs a Canonicalizer
func New() *Canonicalizer { return &Canonicalizer{} }

// Canonicalize returns the canonical form of s. It is idempotent
func (c *Canonicalizer) Canonicalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// the chain never fails on valid UTF-8; keep the input rather than lose it
		return s
	}
	return out
}

// IsCanonical reports whether s is already in canonical form
func (c *Canonicalizer) IsCanonical(s string) bool {
	return c.Canonicalize(s) == s
}

// CollapseSpaces converts every whitespace run to a single ASCII space and trims both ends
func CollapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}

// CollapseLines is CollapseSpaces except that a run containing a line break
// becomes a single newline
func CollapseLines(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS, sawNL := false, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		if inWS && b.Len() > 0 {
			if sawNL {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		inWS, sawNL = false, false
		b.WriteRune(r)
	}
	return b.String()
}
