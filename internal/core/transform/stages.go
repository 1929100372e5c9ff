package transform

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"thaicurate/internal/core/normalize"
	"thaicurate/internal/core/numeral"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
)

// Stage is one named, pure rewrite of a text unit
type Stage struct {
	Name string
	fn   func(string) string
}

// Apply runs the stage on s
func (st Stage) Apply(s string) string {
	if s == "" {
		return s
	}
	return st.fn(s)
}

// NewStage wraps fn as a Stage
func NewStage(name string, fn func(string) string) Stage {
	return Stage{Name: name, fn: fn}
}

// Tokenizer splits text into words; satisfied by *lexicon.Lexicon
type Tokenizer interface {
	Tokenize(s string) []string
}

var newlines = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// RemoveNewlines replaces embedded line breaks with single spaces
var RemoveNewlines = NewStage("remove_newlines", newlines.Replace)

// decorative glyphs stripped on sight; everything else is judged by category
var decorative = map[rune]struct{}{
	'●': {}, '*': {}, '•': {}, ',': {}, '·': {}, '‣': {}, '⁃': {},
	'▪': {}, '■': {}, '◆': {}, '★': {}, '☆': {}, '※': {},
}

func isDecorative(r rune) bool {
	if _, ok := decorative[r]; ok {
		return true
	}
	switch {
	case unicode.Is(unicode.So, r):
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	case r == 0xFE0E || r == 0xFE0F || r == 0x200D || r == 0x20E3:
		return true
	}
	return false
}

var symbolPool = sync.Pool{
	New: func() any { return runes.Remove(runes.Predicate(isDecorative)) },
}

// RemoveSymbols strips decorative glyphs and emoji by character class
var RemoveSymbols = NewStage("remove_symbols", func(s string) string {
	tr := symbolPool.Get().(xtransform.Transformer)
	out, _, err := xtransform.String(tr, s)
	tr.Reset()
	symbolPool.Put(tr)
	if err != nil {
		return s
	}
	return out
})

var latinGloss = regexp.MustCompile(`\s\([A-Za-z ]+\)\s`)

// RemoveLatinGlosses drops space-bounded parenthesized Latin glosses
var RemoveLatinGlosses = NewStage("remove_latin_glosses", func(s string) string {
	return latinGloss.ReplaceAllString(s, " ")
})

var enumerator = regexp.MustCompile(`^\s*[0-9๐-๙]+\.(?:\s+|$)`)

// RemoveEnumerator drops a leading "N. " list marker
var RemoveEnumerator = NewStage("remove_enumerator", func(s string) string {
	return enumerator.ReplaceAllString(s, "")
})

// PercentWord is the spoken form of the percent sign
const PercentWord = "เปอร์เซ็นต์"

var percent = strings.NewReplacer("%", PercentWord, "％", PercentWord)

// ExpandPercent spells out percent signs
var ExpandPercent = NewStage("expand_percent", percent.Replace)

var digitRun = regexp.MustCompile(`[0-9๐-๙]+(?:\.[0-9๐-๙]+)?\s*`)

// LexicalizeNumbers reads every digit run aloud. Whitespace after a run is
// consumed so a number joins the following word; whitespace before it stays
var LexicalizeNumbers = NewStage("lexicalize_numbers", func(s string) string {
	return digitRun.ReplaceAllStringFunc(s, func(m string) string {
		m = strings.TrimRightFunc(m, unicode.IsSpace)
		intPart, fracPart, _ := strings.Cut(m, ".")
		return numeral.Read(intPart, fracPart)
	})
})

// Maiyamok is the Thai repetition mark
const Maiyamok = 'ๆ'

// ExpandMaiyamok replaces each repetition mark with the last word before it,
// as split by tok. A mark with no word before it is left in place
func ExpandMaiyamok(tok Tokenizer) Stage {
	return NewStage("expand_maiyamok", func(s string) string {
		markLen := utf8.RuneLen(Maiyamok)
		out, from := s, 0
		for {
			i := strings.IndexRune(out[from:], Maiyamok)
			if i < 0 {
				return out
			}
			i += from
			head := strings.TrimRightFunc(out[:i], unicode.IsSpace)
			word := lastWord(tok, head)
			if word == "" {
				from = i + markLen
				continue
			}
			out = head + word + out[i+markLen:]
			from = len(head) + len(word)
		}
	})
}

func lastWord(tok Tokenizer, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	chunk := fields[len(fields)-1]
	toks := tok.Tokenize(chunk)
	if len(toks) == 0 {
		return chunk
	}
	return toks[len(toks)-1]
}

// CollapseSpaces squeezes whitespace runs to one space and trims the ends
var CollapseSpaces = NewStage("collapse_spaces", normalize.CollapseSpaces)

var quotePairs = [][2]string{
	{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"}, {"«", "»"},
}

// StripQuotes removes one wrapping quotation pair
var StripQuotes = NewStage("strip_quotes", func(s string) string {
	for _, q := range quotePairs {
		if len(s) >= len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			return strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
		}
	}
	return s
})
