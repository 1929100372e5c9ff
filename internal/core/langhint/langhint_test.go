package langhint

import (
	"math"
	"testing"
)

func TestThaiShare(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"สวัสดี", 1},
		{"abcd", 0},
		{"กข ab", 0.5},
		{"123 !!", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := ThaiShare(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("ThaiShare(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCount_ThaiDigitsAreNotLetters(t *testing.T) {
	c := Count("๒๕๖๗ ปี")
	if c.Thai != 2 || c.Letters != 2 {
		t.Fatalf("Count = %+v", c)
	}
}

func TestDominantScript(t *testing.T) {
	tests := map[string]string{
		"สวัสดี hello": "Thai",
		"hello ดี":     "Latin",
		"привет":       "Other",
		"12345":        "",
	}
	for in, want := range tests {
		if got := DominantScript(in); got != want {
			t.Fatalf("DominantScript(%q) = %q, want %q", in, got, want)
		}
	}
}
