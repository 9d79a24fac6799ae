// Package compression reads and writes xz-compressed scheme files.
package compression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/okbase16/internal/security"
)

// Ext is the file extension of compressed scheme files.
const Ext = ".xz"

// Compress returns data compressed with xz.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return buf.Bytes(), nil
}

// IsCompressed reports whether data starts with the xz magic header.
func IsCompressed(data []byte) bool {
	return len(data) >= xz.HeaderLen && xz.ValidHeader(data[:xz.HeaderLen])
}

// NewReader returns a reader over r that transparently decompresses xz
// input. Plain input is passed through. Either way at most maxBytes of
// decoded data can be read.
func NewReader(r io.Reader, maxBytes int64) (io.Reader, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(xz.HeaderLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if !IsCompressed(header) {
		return security.NewLimitedReader(br, maxBytes), nil
	}

	xzr, err := xz.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	return security.NewLimitedReader(xzr, maxBytes), nil
}

// Decompress decodes data, which may or may not be xz compressed.
func Decompress(data []byte, maxBytes int64) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data), maxBytes)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
}
