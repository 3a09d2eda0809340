package columnar

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// compressionTag is stored in the file header. Values are format constants.
type compressionTag uint8

const (
	tagNone compressionTag = 0
	tagLZ4  compressionTag = 1
	tagZstd compressionTag = 2
)

func tagFor(c domain.Compression) compressionTag {
	switch c {
	case domain.CompressionNone:
		return tagNone
	case domain.CompressionLZ4:
		return tagLZ4
	default:
		return tagZstd
	}
}

func (t compressionTag) String() string {
	switch t {
	case tagNone:
		return "none"
	case tagLZ4:
		return "lz4"
	case tagZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// zstd encoders and decoders are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic("columnar: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("columnar: zstd decoder initialization failed: " + err.Error())
	}
}

// compress returns the payload and the tag actually used. LZ4 falls back to
// no compression when the payload does not shrink.
func compress(data []byte, tag compressionTag) ([]byte, compressionTag, error) {
	switch tag {
	case tagNone:
		return data, tagNone, nil
	case tagLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(data) {
			return data, tagNone, nil
		}
		return dst[:n], tagLZ4, nil
	case tagZstd:
		return zstdEncoder.EncodeAll(data, nil), tagZstd, nil
	default:
		return nil, 0, fmt.Errorf("unsupported compression %s", tag)
	}
}

func decompress(data []byte, tag compressionTag, size uint64) ([]byte, error) {
	switch tag {
	case tagNone:
		if uint64(len(data)) != size {
			return nil, fmt.Errorf("payload is %d bytes, header says %d", len(data), size)
		}
		return data, nil
	case tagLZ4:
		dst := make([]byte, size)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if uint64(n) != size {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", n, size)
		}
		return dst, nil
	case tagZstd:
		out, err := zstdDecoder.DecodeAll(data, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if uint64(len(out)) != size {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(out), size)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", tag)
	}
}
