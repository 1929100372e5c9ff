// Package segment turns raw text blocks into candidate sentences and sentences
// into candidate words
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Granularity selects how a corpus is cut into partitionable units
type Granularity string

const (
	// Paragraph units are separated by one or more blank lines
	Paragraph Granularity = "paragraph"
	// Line units are single lines
	Line Granularity = "line"
)

// Units splits text into non-empty units at the given granularity.
// Units keep their inner newlines; surrounding whitespace is trimmed
func Units(text string, g Granularity) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var parts []string
	if g == Line {
		parts = strings.Split(text, "\n")
	} else {
		parts = splitParagraphs(text)
	}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitParagraphs(text string) []string {
	var (
		out   []string
		cur   strings.Builder
		blank bool
	)
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) == "" {
			blank = true
			continue
		}
		if blank && cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
		blank = false
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(ln)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// Sentences splits a block into candidate sentences. Boundaries are '!', '?',
// '…' and a '.' that is followed by whitespace or end of text and closes a word
// of at least two letters, so "พ.ศ." and "1." stay intact. Terminators are
// dropped, embedded newlines are kept for the pipeline to flatten
func Sentences(block string) []string {
	var (
		out     []string
		start   int
		letters int // letters since the last space or dot
	)
	emit := func(end int) {
		if s := strings.TrimSpace(block[start:end]); s != "" {
			out = append(out, s)
		}
	}
	for i := 0; i < len(block); {
		r, size := utf8.DecodeRuneInString(block[i:])
		next := i + size
		switch {
		case r == '!' || r == '?' || r == '…':
			emit(i)
			start = next
			letters = 0
		case r == '.':
			if letters >= 2 && (next == len(block) || nextIsSpace(block[next:])) {
				emit(i)
				start = next
			}
			letters = 0
		case unicode.IsSpace(r):
			letters = 0
		case unicode.IsLetter(r):
			letters++
		}
		i = next
	}
	emit(len(block))
	return out
}

func nextIsSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

// Words splits a sentence on single spaces, dropping empty fields
func Words(sentence string) []string {
	parts := strings.Split(sentence, " ")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
