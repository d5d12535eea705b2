package store

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/13byte/highmark/logging"
)

// DefaultMaxSize is the largest document FileStore will read.
const DefaultMaxSize = 10 * 1024 * 1024 // 10MB

// fingerprint identifies a document revision on disk.
type fingerprint struct {
	modTime time.Time
	size    int64
}

// FileStore persists documents on the OS file system.
//
// Read records a fingerprint for each document; Overwrite compares it so
// an external change between the read and the write is visible. The write
// still proceeds (last writer wins, the toggle flow is read, compute,
// overwrite wholesale) but the overlap is logged.
type FileStore struct {
	mu           sync.Mutex
	fingerprints map[string]fingerprint

	maxSize int64
	logger  *logging.Logger
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithMaxSize sets the maximum document size in bytes. Zero means
// unlimited.
func WithMaxSize(size int64) FileOption {
	return func(s *FileStore) {
		s.maxSize = size
	}
}

// WithFileLogger sets the logger used for external-change warnings.
func WithFileLogger(logger *logging.Logger) FileOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore creates a FileStore.
func NewFileStore(opts ...FileOption) *FileStore {
	s := &FileStore{
		fingerprints: make(map[string]fingerprint),
		maxSize:      DefaultMaxSize,
		logger:       logging.NullLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

// Read returns the full document text and records its on-disk
// fingerprint.
func (s *FileStore) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewPathError("read", name, err)
	}

	absPath, err := filepath.Abs(name)
	if err != nil {
		return "", NewPathError("read", name, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewPathError("read", name, ErrNotFound)
		}
		return "", NewPathError("read", name, err)
	}
	if info.IsDir() {
		return "", NewPathError("read", name, ErrIsDirectory)
	}
	if s.maxSize > 0 && info.Size() > s.maxSize {
		return "", NewPathError("read", name, ErrTooLarge)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", NewPathError("read", name, err)
	}
	if isBinary(content) {
		return "", NewPathError("read", name, ErrBinaryFile)
	}

	s.mu.Lock()
	s.fingerprints[absPath] = fingerprint{modTime: info.ModTime(), size: info.Size()}
	s.mu.Unlock()

	return string(content), nil
}

// Overwrite replaces the full document text, preserving the file's
// permissions. A fingerprint mismatch since the last Read means the file
// changed externally; the overwrite proceeds and the overlap is logged.
func (s *FileStore) Overwrite(ctx context.Context, name string, text string) error {
	if err := ctx.Err(); err != nil {
		return NewPathError("overwrite", name, err)
	}

	absPath, err := filepath.Abs(name)
	if err != nil {
		return NewPathError("overwrite", name, err)
	}

	s.mu.Lock()
	fp, tracked := s.fingerprints[absPath]
	s.mu.Unlock()

	perm := fs.FileMode(0o644)
	if info, statErr := os.Stat(absPath); statErr == nil {
		perm = info.Mode().Perm()
		if tracked && (!info.ModTime().Equal(fp.modTime) || info.Size() != fp.size) {
			s.logger.WithComponent("store").Warn(
				"document %s changed on disk since read, overwriting", name)
		}
	}

	if err := os.WriteFile(absPath, []byte(text), perm); err != nil {
		return NewPathError("overwrite", name, err)
	}

	if info, statErr := os.Stat(absPath); statErr == nil {
		s.mu.Lock()
		s.fingerprints[absPath] = fingerprint{modTime: info.ModTime(), size: info.Size()}
		s.mu.Unlock()
	}

	return nil
}

// Forget drops the change-tracking fingerprint for a document.
func (s *FileStore) Forget(name string) {
	absPath, err := filepath.Abs(name)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.fingerprints, absPath)
	s.mu.Unlock()
}

// isBinary attempts to detect if content is binary (not text).
// Uses heuristics: presence of null bytes, high ratio of non-printable
// characters.
func isBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	// Check first 8KB at most
	checkLen := len(content)
	if checkLen > 8192 {
		checkLen = 8192
	}

	sample := content[:checkLen]

	// Null bytes are a strong indicator of binary
	if bytes.Contains(sample, []byte{0}) {
		return true
	}

	// Count non-text bytes (control characters except tab, newline, carriage return)
	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}

	// If more than 10% are non-text, consider it binary
	return float64(nonText)/float64(checkLen) > 0.1
}
