// Package security provides path and size checks for files read and written
// by okbase16.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxSchemeFileSize bounds how much a scheme file may expand to when read.
const MaxSchemeFileSize = 1 << 20

// ErrSizeLimit is returned by LimitedReader once its budget is used up.
var ErrSizeLimit = errors.New("size limit exceeded")

// ValidateFilePath checks that a plugin-supplied file name stays inside
// baseDir once joined to it.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if strings.Contains(filePath, "..") {
		return fmt.Errorf("file path %q contains directory traversal (..)", filePath)
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("file path %q must be relative", filePath)
	}

	finalPath := filepath.Clean(filepath.Join(baseDir, filePath))
	cleanBase := filepath.Clean(baseDir)

	if !strings.HasPrefix(finalPath, cleanBase+string(filepath.Separator)) &&
		finalPath != cleanBase && cleanBase != "." {
		return fmt.Errorf("file path %q would escape %s", filePath, baseDir)
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails once more than Remaining bytes
// have been read. Unlike io.LimitedReader it reports an error instead of a
// silent EOF, so truncated input is never mistaken for a complete file.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Allow a clean EOF exactly at the limit.
		var probe [1]byte
		if n, err := l.R.Read(probe[:]); n == 0 && err == io.EOF {
			return 0, io.EOF
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader returns a reader that allows at most maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
