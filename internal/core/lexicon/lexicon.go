// Package lexicon holds the Thai word list used for dictionary tokenization
// and as the optional spelling oracle
package lexicon

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	perr "thaicurate/internal/platform/errors"
)

//go:embed words_th.txt
var embeddedWords string

// Lexicon is immutable after construction and safe for concurrent use
type Lexicon struct {
	words map[string]struct{}
	index []string // word id -> word
	ac    *automaton
}

// New builds a lexicon over words; blanks and duplicates are ignored
func New(words []string) *Lexicon {
	lx := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || !utf8.ValidString(w) {
			continue
		}
		if _, ok := lx.words[w]; ok {
			continue
		}
		lx.words[w] = struct{}{}
		lx.index = append(lx.index, w)
	}

	ac := newAutomaton()
	for id, w := range lx.index {
		ac.add([]byte(w), id)
	}
	ac.build()
	lx.ac = ac
	return lx
}

// Default returns a lexicon built from the embedded starter word list
func Default() *Lexicon {
	return New(parseWords(strings.NewReader(embeddedWords)))
}

// LoadFile returns the embedded word list extended with the words in path
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "open dictionary %s", path)
	}
	defer func() { _ = f.Close() }()

	extra := parseWords(f)
	base := parseWords(strings.NewReader(embeddedWords))
	return New(append(base, extra...)), nil
}

func parseWords(r io.Reader) []string {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Len reports the number of distinct words
func (lx *Lexicon) Len() int { return len(lx.index) }

// Words returns the word list in sorted order
func (lx *Lexicon) Words() []string {
	out := append([]string(nil), lx.index...)
	sort.Strings(out)
	return out
}

// IsCorrect reports exact membership of word
func (lx *Lexicon) IsCorrect(word string) bool {
	_, ok := lx.words[word]
	return ok
}

// Tokenize splits s into dictionary words by greedy longest match, left to right.
// Runs of text not covered by any word are returned as single tokens, and
// whitespace separates tokens without being emitted
func (lx *Lexicon) Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	// longest[i] is the byte length of the longest word starting at i
	longest := make([]int, len(s)+1)
	lx.ac.findAll([]byte(s), func(end, id int) bool {
		n := len(lx.index[id])
		start := end - n
		if n > longest[start] && clusterEnd(s, end) {
			longest[start] = n
		}
		return true
	})

	var (
		out     []string
		unknown = -1
	)
	flush := func(at int) {
		if unknown >= 0 {
			out = append(out, s[unknown:at])
			unknown = -1
		}
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case isSpace(r):
			flush(i)
			i += size
		case longest[i] > 0:
			flush(i)
			out = append(out, s[i:i+longest[i]])
			i += longest[i]
		default:
			if unknown < 0 {
				unknown = i
			}
			i += size
		}
	}
	flush(len(s))
	return out
}

// clusterEnd reports whether a word may end at byte offset end: the next rune
// must not be a mark or vowel that attaches to the preceding consonant
func clusterEnd(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !attaches(r)
}

func attaches(r rune) bool {
	switch {
	case r == 0x0E30 || r == 0x0E32 || r == 0x0E33: // ะ า ำ
		return true
	case r == 0x0E31: // mai han-akat
		return true
	case r >= 0x0E34 && r <= 0x0E3A: // above and below vowels, phinthu
		return true
	case r >= 0x0E47 && r <= 0x0E4E: // maitaikhu, tone marks, thanthakhat, signs
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == 0x00A0
}
