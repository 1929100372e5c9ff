package textfile

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/testkit"
)

func TestRead_PlainStripsBOMAndControls(t *testing.T) {
	p := testkit.WriteTemp(t, "in.txt", []byte("\uFEFFสวัสดี\x00ครับ\nบรรทัดสอง\n"))
	got, err := New().Read(context.Background(), p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "สวัสดีครับ\nบรรทัดสอง\n" {
		t.Fatalf("Read = %q", got)
	}
}

func TestRead_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("ฝนตกหนักมาก\n"))
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	p := testkit.WriteTemp(t, "in.txt.gz", buf.Bytes())

	got, err := New().Read(context.Background(), p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "ฝนตกหนักมาก\n" {
		t.Fatalf("Read = %q", got)
	}
}

func TestRead_Errors(t *testing.T) {
	f := New()
	ctx := context.Background()

	bad := testkit.WriteTemp(t, "bad.txt", []byte{'o', 'k', 0xff, 0xfe})
	if _, err := f.Read(ctx, bad); !perr.IsCode(err, perr.ErrorCodeMalformedInput) {
		t.Fatalf("invalid utf8 should be MalformedInput, got %v", err)
	}

	notGz := testkit.WriteTemp(t, "plain.gz", []byte("not gzip"))
	if _, err := f.Read(ctx, notGz); !perr.IsCode(err, perr.ErrorCodeMalformedInput) {
		t.Fatalf("bad gzip should be MalformedInput, got %v", err)
	}

	if _, err := f.Read(ctx, filepath.Join(t.TempDir(), "missing.txt")); !perr.IsCode(err, perr.ErrorCodeIO) {
		t.Fatalf("missing file should be IO, got %v", err)
	}
}

func TestWriteLines_Atomic(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(out, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := New().WriteLines(context.Background(), out, []string{"ยี่สิบบาท", "สวัสดีครับ"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "ยี่สิบบาท\nสวัสดีครับ\n" {
		t.Fatalf("file = %q", b)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestWriteLines_Errors(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "nope", "out.txt")
	if err := New().WriteLines(context.Background(), missingDir, []string{"x"}); !perr.IsCode(err, perr.ErrorCodeIO) {
		t.Fatalf("unwritable path should be IO, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "out.txt")
	if err := New().WriteLines(ctx, out, []string{"x"}); err == nil {
		t.Fatalf("expected cancellation error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("cancelled write must not create %s", out)
	}
}
