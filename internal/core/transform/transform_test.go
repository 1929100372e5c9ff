package transform

import (
	"reflect"
	"testing"

	"thaicurate/internal/core/lexicon"
)

func TestStages_Table(t *testing.T) {
	maiyamok := ExpandMaiyamok(lexicon.Default())

	tests := []struct {
		name  string
		stage Stage
		in    string
		out   string
	}{
		{"newlines", RemoveNewlines, "หนึ่ง\nสอง\r\nสาม", "หนึ่ง สอง สาม"},
		{"symbols leading bullet", RemoveSymbols, "● สวัสดี", " สวัสดี"},
		{"symbols inner star", RemoveSymbols, "สวัส*ดีโลก", "สวัสดีโลก"},
		{"symbols inner dot", RemoveSymbols, "สวัสดี•โลก", "สวัสดีโลก"},
		{"symbols emoji with modifier", RemoveSymbols, "ดี👍🏽มาก", "ดีมาก"},
		{"symbols keep percent and baht", RemoveSymbols, "ลด 5% ราคา ฿", "ลด 5% ราคา ฿"},
		{"gloss removed", RemoveLatinGlosses, "คอมพิวเตอร์ (computer) ดี", "คอมพิวเตอร์ ดี"},
		{"gloss needs spaces", RemoveLatinGlosses, "คอม(computer) ดี", "คอม(computer) ดี"},
		{"gloss thai kept", RemoveLatinGlosses, "ไป (บ้าน) ดี", "ไป (บ้าน) ดี"},
		{"enumerator", RemoveEnumerator, "1. หวัดดี", "หวัดดี"},
		{"enumerator thai digits", RemoveEnumerator, "๑๒. ไปเที่ยว", "ไปเที่ยว"},
		{"enumerator only at start", RemoveEnumerator, "ข้อ 1. ไป", "ข้อ 1. ไป"},
		{"percent", ExpandPercent, "50%", "50เปอร์เซ็นต์"},
		{"percent fullwidth", ExpandPercent, "๕๐％", "๕๐เปอร์เซ็นต์"},
		{"numbers thai digits", LexicalizeNumbers, "พ.ศ. ๒๔๙๗", "พ.ศ. สองพันสี่ร้อยเก้าสิบเจ็ด"},
		{"numbers join next word", LexicalizeNumbers, "20 บาท", "ยี่สิบบาท"},
		{"numbers decimal", LexicalizeNumbers, "2.5 กิโล", "สองจุดห้ากิโล"},
		{"numbers eleven", LexicalizeNumbers, "ห้อง 11", "ห้อง สิบเอ็ด"},
		{"maiyamok with space", maiyamok, "บัญญัติต่าง ๆ", "บัญญัติต่างต่าง"},
		{"maiyamok attached", maiyamok, "เด็กๆ เล่น", "เด็กเด็ก เล่น"},
		{"maiyamok alone kept", maiyamok, "ๆ ไป", "ๆ ไป"},
		{"collapse", CollapseSpaces, "  ไป   บ้าน ", "ไป บ้าน"},
		{"quotes curly", StripQuotes, "“สวัสดี”", "สวัสดี"},
		{"quotes straight", StripQuotes, `" ไปบ้าน "`, "ไปบ้าน"},
		{"quotes unbalanced", StripQuotes, `"ไปบ้าน`, `"ไปบ้าน`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stage.Apply(tc.in); got != tc.out {
				t.Fatalf("%s(%q) = %q, want %q", tc.stage.Name, tc.in, got, tc.out)
			}
		})
	}
}

func TestPipeline_Order(t *testing.T) {
	want := []string{
		"remove_newlines",
		"remove_symbols",
		"remove_latin_glosses",
		"remove_enumerator",
		"expand_percent",
		"lexicalize_numbers",
		"expand_maiyamok",
		"collapse_spaces",
		"strip_quotes",
	}
	if got := Default().Stages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Stages = %q, want %q", got, want)
	}
}

func TestPipeline_Apply(t *testing.T) {
	p := Default()
	tests := []struct {
		in, out string
	}{
		{"20 บาท", "ยี่สิบบาท"},
		{"● 1. สวัสดี (hello) ครับ", "สวัสดี ครับ"},
		{"“ลด 50 %\nทุกวัน”", "ลด ห้าสิบเปอร์เซ็นต์ ทุกวัน"},
		{"บัญญัติต่าง ๆ", "บัญญัติต่างต่าง"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := p.Apply(tc.in); got != tc.out {
			t.Fatalf("Apply(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	p := Default()
	inputs := []string{
		"ปี ๒๕๖๗ ฝนตกหนัก",
		"* เด็กๆ ชอบเล่น",
		"ราคา 3.75 บาท ★",
		"สวัสดี\nโลก",
		"1. บ้าน (home) สวย",
	}
	for _, in := range inputs {
		once := p.Apply(in)
		if twice := p.Apply(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestPipeline_Trace(t *testing.T) {
	p := Default()
	out, steps := p.Trace("● 20 บาท")
	if out != p.Apply("● 20 บาท") {
		t.Fatalf("Trace output %q differs from Apply", out)
	}
	if len(steps) != len(p.Stages()) {
		t.Fatalf("steps = %d, want %d", len(steps), len(p.Stages()))
	}
	if steps[1].Stage != "remove_symbols" || steps[1].Out != " 20 บาท" {
		t.Fatalf("unexpected remove_symbols step: %+v", steps[1])
	}
	if steps[len(steps)-1].Out != out {
		t.Fatalf("last step %q != output %q", steps[len(steps)-1].Out, out)
	}
}
