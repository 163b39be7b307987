// Package source opens CSV inputs: files on an afero filesystem,
// optionally compressed, in any charset known to the WHATWG encoding index.
// The result is a UTF-8 io.ReadCloser ready for the tokenizer.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Compression names accepted by Options.Compression.
const (
	CompressionAuto = "auto"
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrUnknownCompression is returned for an unsupported Options.Compression.
var ErrUnknownCompression = errors.New("source: unknown compression")

// Options configures Open.
type Options struct {
	// Compression is one of auto, none, gzip or zstd. Auto picks by file
	// extension, then by magic bytes.
	// Default: auto
	Compression string

	// Charset names the input encoding (for example "windows-1252",
	// "shift_jis", "utf-16le"). A leading byte order mark overrides it.
	// Default: utf-8
	Charset string

	// Logger receives debug records about how the input was opened.
	// Default: slog.Default()
	Logger *slog.Logger
}

// Open opens name on fs and returns its content decoded to UTF-8.
// Closing the result closes every layer, the file last.
func Open(fs afero.Fs, name string, opts Options) (io.ReadCloser, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}

	rc, err := Wrap(f, name, opts)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: open %s: %w", name, err)
	}
	return rc, nil
}

// Wrap decompresses and decodes rc. name is used only for extension-based
// compression detection and may be empty. On success the returned closer
// owns rc.
func Wrap(rc io.ReadCloser, name string, opts Options) (io.ReadCloser, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enc, err := lookupCharset(opts.Charset)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(rc)
	compression, err := detectCompression(br, name, opts.Compression)
	if err != nil {
		return nil, err
	}

	stack := &readCloser{closers: []io.Closer{rc}}
	var r io.Reader = br

	switch compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		stack.push(zr)
		r = zr
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		dec := zr.IOReadCloser()
		stack.push(dec)
		r = dec
	}

	stack.Reader = transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))

	logger.Debug("opened source",
		"name", name,
		"compression", compression,
		"charset", charsetName(opts.Charset))
	return stack, nil
}

// detectCompression resolves the requested compression against the name and
// the first bytes of br.
func detectCompression(br *bufio.Reader, name, requested string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case "", CompressionAuto:
	case CompressionNone:
		return CompressionNone, nil
	case CompressionGzip, "gz":
		return CompressionGzip, nil
	case CompressionZstd, "zst":
		return CompressionZstd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, requested)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip, nil
	case ".zst", ".zstd":
		return CompressionZstd, nil
	}

	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip, nil
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd, nil
	}
	return CompressionNone, nil
}

// lookupCharset returns the encoding for name; empty means UTF-8.
func lookupCharset(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	return enc, nil
}

func charsetName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "utf-8"
	}
	return name
}

// readCloser reads from the outermost layer and closes every layer in
// reverse order of opening.
type readCloser struct {
	io.Reader
	closers []io.Closer
	closed  bool
}

func (c *readCloser) push(cl io.Closer) {
	c.closers = append(c.closers, cl)
}

func (c *readCloser) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
