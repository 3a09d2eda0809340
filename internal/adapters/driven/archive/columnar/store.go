package columnar

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/fs"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArchiveStore = (*Store)(nil)

// FileName is the archive file inside the archive directory.
const FileName = "journal.lfa"

const (
	formatVersion  = 1
	headerSize     = 4 + 1 + 1 + 8 + blake3Size
	blake3Size     = 32
	maxPayloadSize = 1 << 31
)

var magic = [4]byte{'L', 'F', 'A', '1'}

// Store reads and writes the columnar archive file.
type Store struct {
	path string
	tag  compressionTag
}

// NewStore creates a store for archive/journal.lfa using the given compression
// for writes. Reads accept any compression.
func NewStore(paths domain.PathSettings, compression domain.Compression) *Store {
	return &Store{
		path: filepath.Join(paths.ArchiveDir(), FileName),
		tag:  tagFor(compression),
	}
}

// Path returns the archive file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the archived records. A missing file is an empty archive;
// any damage is reported as domain.ErrArchiveCorrupt.
func (s *Store) Load(_ context.Context) ([]domain.ArchiveRecord, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("reading archive: %w", err)
	}

	records, err := decode(data)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", domain.ErrArchiveCorrupt, s.path, err)
	}
	return records, true, nil
}

// Save replaces the archive atomically.
func (s *Store) Save(_ context.Context, records []domain.ArchiveRecord) error {
	data, err := encode(records, s.tag)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(s.path, data, 0644)
}

func encode(records []domain.ArchiveRecord, tag compressionTag) ([]byte, error) {
	payload, err := encMode.Marshal(toColumns(records))
	if err != nil {
		return nil, fmt.Errorf("encoding archive: %w", err)
	}
	sum := blake3.Sum256(payload)

	body, used, err := compress(payload, tag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(body))
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)
	buf.WriteByte(byte(used))
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(payload)))
	buf.Write(size[:])
	buf.Write(sum[:])
	buf.Write(body)
	return buf.Bytes(), nil
}

func decode(data []byte) ([]domain.ArchiveRecord, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("file is %d bytes, shorter than the header", len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, errors.New("bad magic")
	}
	if v := data[4]; v != formatVersion {
		return nil, fmt.Errorf("unsupported format version %d", v)
	}
	tag := compressionTag(data[5])
	size := binary.BigEndian.Uint64(data[6:14])
	if size > maxPayloadSize {
		return nil, fmt.Errorf("payload size %d out of range", size)
	}
	var want [blake3Size]byte
	copy(want[:], data[14:headerSize])

	payload, err := decompress(data[headerSize:], tag, size)
	if err != nil {
		return nil, err
	}
	if blake3.Sum256(payload) != want {
		return nil, errors.New("checksum mismatch")
	}

	var cols columns
	if err := decMode.Unmarshal(payload, &cols); err != nil {
		return nil, fmt.Errorf("decoding columns: %w", err)
	}
	return cols.records()
}
