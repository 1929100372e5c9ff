package textfile

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"thaicurate/internal/core/normalize"
	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/logger"
)

const bom = "\uFEFF"

// Files implements the curate ReaderPort and WriterPort over the local filesystem
type Files struct {
	// Perm is applied to written files; zero means 0o644
	Perm os.FileMode
}

// New returns a Files adapter with default permissions
func New() *Files { return &Files{Perm: 0o644} }

// Read loads path (gunzipping .gz files) and returns sanitized UTF-8 text
func (f *Files) Read(ctx context.Context, path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeIO, "open %s", path)
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeMalformedInput, "gzip header %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	b, err := io.ReadAll(readerWithCtx(ctx, r))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", perr.Wrapf(err, perr.ErrorCodeIO, "read %s", path)
	}
	if !utf8.Valid(b) {
		return "", perr.WithField(perr.MalformedInputf("%s is not valid UTF-8", path), path)
	}

	text := normalize.Sanitize(strings.TrimPrefix(string(b), bom))
	logger.C(ctx).Debug().Str("path", path).Int("bytes", len(b)).Msg("corpus read")
	return text, nil
}

// WriteLines writes one line per entry to path atomically
func (f *Files) WriteLines(ctx context.Context, path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".thaicurate-*")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "create temp in %s", dir)
	}
	tmpPath := tmp.Name()
	fail := func(err error, msg string) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return perr.Wrapf(err, perr.ErrorCodeIO, "%s %s", msg, path)
	}

	perm := f.Perm
	if perm == 0 {
		perm = 0o644
	}
	_ = os.Chmod(tmpPath, perm)

	bw := bufio.NewWriter(tmp)
	for _, ln := range lines {
		if err := ctx.Err(); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return err
		}
		if _, err := bw.WriteString(ln); err != nil {
			return fail(err, "write")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fail(err, "write")
		}
	}
	if err := bw.Flush(); err != nil {
		return fail(err, "flush")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "sync")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return perr.Wrapf(err, perr.ErrorCodeIO, "close %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return perr.Wrapf(err, perr.ErrorCodeIO, "rename into %s", path)
	}
	return nil
}

// readerWithCtx checks ctx before every Read
func readerWithCtx(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
