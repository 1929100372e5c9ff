package lexicon

import (
	"reflect"
	"testing"

	"thaicurate/internal/platform/testkit"
)

func TestTokenize_Table(t *testing.T) {
	lx := Default()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two words", "บัญญัติต่าง", []string{"บัญญัติ", "ต่าง"}},
		{"greeting", "สวัสดีโลก", []string{"สวัสดี", "โลก"}},
		{"longest wins", "วันนี้", []string{"วันนี้"}},
		{"unknown run grouped", "xyzบ้าน", []string{"xyz", "บ้าน"}},
		{"spaces separate", "บ้าน  แมว", []string{"บ้าน", "แมว"}},
		{"empty", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lx.Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize_NoSplitInsideCluster(t *testing.T) {
	lx := New([]string{"ที"})
	got := lx.Tokenize("ที่")
	if len(got) != 1 || got[0] != "ที่" {
		t.Fatalf("word must not end before a tone mark, got %q", got)
	}
}

func TestIsCorrect(t *testing.T) {
	lx := Default()
	if !lx.IsCorrect("สวัสดี") {
		t.Fatalf("expected สวัสดี to be known")
	}
	if lx.IsCorrect("สวัสดีโลก") {
		t.Fatalf("compound should not be an exact entry")
	}
}

func TestNew_DedupesAndSkipsBlanks(t *testing.T) {
	lx := New([]string{"แมว", " แมว ", "", "หมา"})
	if lx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", lx.Len())
	}
	if got := lx.Words(); !reflect.DeepEqual(got, []string{"หมา", "แมว"}) {
		t.Fatalf("Words = %q", got)
	}
}

func TestLoadFile_ExtendsEmbedded(t *testing.T) {
	p := testkit.WriteTemp(t, "dict.txt", []byte("# extra\nกะเพรา\n\n"))
	lx, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !lx.IsCorrect("กะเพรา") || !lx.IsCorrect("สวัสดี") {
		t.Fatalf("expected both file and embedded words")
	}
	if lx.Len() != Default().Len()+1 {
		t.Fatalf("Len = %d, want %d", lx.Len(), Default().Len()+1)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/dict.txt"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
