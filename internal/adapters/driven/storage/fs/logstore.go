package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure LogStore implements the interface.
var _ driven.LogStore = (*LogStore)(nil)

// DefaultTailWindow is how many trailing bytes are scanned for an entry reference.
const DefaultTailWindow = 2000

// LogStore appends blocks to Markdown logs under a root directory.
// Duplicate detection scans only the tail of each log, so an entry
// appended long ago may be written again; pair it with a route index
// for exact detection.
type LogStore struct {
	root       string
	tailWindow int
}

// NewLogStore creates a log store rooted at the data directory.
func NewLogStore(root string, tailWindow int) *LogStore {
	if tailWindow <= 0 {
		tailWindow = DefaultTailWindow
	}
	return &LogStore{root: root, tailWindow: tailWindow}
}

// Append writes block to destination unless its tail already references the entry.
func (s *LogStore) Append(ctx context.Context, destination, entryID, block string) (bool, error) {
	path, err := s.resolve(destination)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	seen, err := s.tailContains(path, entryID)
	if err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening log: %w", err)
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return false, fmt.Errorf("appending to log: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing log: %w", err)
	}
	return true, nil
}

func (s *LogStore) resolve(destination string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(destination))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", fmt.Errorf("%w: destination %q escapes the data directory", domain.ErrInvalidInput, destination)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LogStore) tailContains(path, entryID string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("reading log size: %w", err)
	}
	offset := info.Size() - int64(s.tailWindow)
	if offset < 0 {
		offset = 0
	}

	tail := make([]byte, info.Size()-offset)
	if _, err := f.ReadAt(tail, offset); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading log tail: %w", err)
	}
	return bytes.Contains(tail, []byte(domain.LogRef(entryID))), nil
}
