// Package langhint provides coarse script statistics used to skip blocks that
// are not Thai text
package langhint

import (
	"unicode"
)

// Counts tallies letters by script
type Counts struct {
	Thai    int
	Latin   int
	Other   int
	Letters int
}

// Count tallies the letters of s by script. Thai vowel and tone marks count as
// Thai letters so that marked text is not under-weighted
func Count(s string) Counts {
	var c Counts
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.Thai):
			if unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) {
				c.Thai++
				c.Letters++
			}
		case !unicode.IsLetter(r):
			continue
		case unicode.In(r, unicode.Latin):
			c.Latin++
			c.Letters++
		default:
			c.Other++
			c.Letters++
		}
	}
	return c
}

// ThaiShare is the fraction of letters in s that are Thai; 0 when s has no letters
func ThaiShare(s string) float64 {
	c := Count(s)
	if c.Letters == 0 {
		return 0
	}
	return float64(c.Thai) / float64(c.Letters)
}

// DominantScript returns "Thai", "Latin", "Other", or "" when s has no letters.
// Ties prefer Thai
func DominantScript(s string) string {
	c := Count(s)
	switch {
	case c.Letters == 0:
		return ""
	case c.Thai >= c.Latin && c.Thai >= c.Other:
		return "Thai"
	case c.Latin >= c.Other:
		return "Latin"
	default:
		return "Other"
	}
}
