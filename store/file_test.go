package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/13byte/highmark/logging"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	return path
}

func TestFileStoreReadOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.md", "The cat sat.")

	s := NewFileStore()
	ctx := context.Background()

	text, err := s.Read(ctx, path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if text != "The cat sat." {
		t.Errorf("Read = %q, want %q", text, "The cat sat.")
	}

	if err := s.Overwrite(ctx, path, "The ==cat== sat."); err != nil {
		t.Fatalf("Overwrite error = %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(onDisk) != "The ==cat== sat." {
		t.Errorf("on disk = %q, want %q", onDisk, "The ==cat== sat.")
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	s := NewFileStore()

	_, err := s.Read(context.Background(), filepath.Join(t.TempDir(), "absent.md"))
	if !IsNotFound(err) {
		t.Errorf("Read missing error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreReadDirectory(t *testing.T) {
	s := NewFileStore()

	_, err := s.Read(context.Background(), t.TempDir())
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("Read directory error = %v, want ErrIsDirectory", err)
	}
}

func TestFileStoreMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "big.md", "0123456789")

	s := NewFileStore(WithMaxSize(4))

	_, err := s.Read(context.Background(), path)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Read oversized error = %v, want ErrTooLarge", err)
	}
}

func TestFileStoreBinary(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "blob.bin", "text\x00more")

	s := NewFileStore()

	_, err := s.Read(context.Background(), path)
	if !errors.Is(err, ErrBinaryFile) {
		t.Errorf("Read binary error = %v, want ErrBinaryFile", err)
	}
}

func TestFileStoreOverwriteCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.md")

	s := NewFileStore()
	if err := s.Overwrite(context.Background(), path, "fresh"); err != nil {
		t.Fatalf("Overwrite error = %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(onDisk) != "fresh" {
		t.Errorf("on disk = %q, want %q", onDisk, "fresh")
	}
}

func TestFileStoreExternalChangeWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.md", "original")

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	s := NewFileStore(WithFileLogger(logger))
	ctx := context.Background()

	if _, err := s.Read(ctx, path); err != nil {
		t.Fatalf("Read error = %v", err)
	}

	// Simulate an external editor writing the file between our read and
	// write. A different length guarantees the fingerprint mismatches
	// regardless of timestamp granularity.
	if err := os.WriteFile(path, []byte("changed externally meanwhile"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	if err := s.Overwrite(ctx, path, "toggled"); err != nil {
		t.Fatalf("Overwrite error = %v", err)
	}

	if !strings.Contains(buf.String(), "changed on disk") {
		t.Errorf("expected external-change warning, got %q", buf.String())
	}

	onDisk, _ := os.ReadFile(path)
	if string(onDisk) != "toggled" {
		t.Errorf("last writer must win, on disk = %q", onDisk)
	}
}

func TestFileStoreNoWarningWhenUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.md", "original")

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	s := NewFileStore(WithFileLogger(logger))
	ctx := context.Background()

	if _, err := s.Read(ctx, path); err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if err := s.Overwrite(ctx, path, "toggled text"); err != nil {
		t.Fatalf("Overwrite error = %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("expected no warning for an unchanged file, got %q", buf.String())
	}
}

func TestFileStoreForget(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.md", "original")

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	s := NewFileStore(WithFileLogger(logger))
	ctx := context.Background()

	if _, err := s.Read(ctx, path); err != nil {
		t.Fatalf("Read error = %v", err)
	}
	s.Forget(path)

	if err := os.WriteFile(path, []byte("changed externally meanwhile"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if err := s.Overwrite(ctx, path, "toggled"); err != nil {
		t.Fatalf("Overwrite error = %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("expected no warning after Forget, got %q", buf.String())
	}
}

func TestFileStoreCanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.md", "text")

	s := NewFileStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Read(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("Read error = %v, want context.Canceled", err)
	}
	if err := s.Overwrite(ctx, path, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Overwrite error = %v, want context.Canceled", err)
	}
}

func TestIsBinary(t *testing.T) {
	cases := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello world"), false},
		{"unicode text", []byte("héllo wörld 日本語"), false},
		{"text with newlines", []byte("line1\nline2\r\n\tindent"), false},
		{"null byte", []byte("abc\x00def"), true},
		{"control heavy", bytes.Repeat([]byte{0x01, 'a'}, 100), true},
	}

	for _, tc := range cases {
		if got := isBinary(tc.content); got != tc.want {
			t.Errorf("%s: isBinary() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
