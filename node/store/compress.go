package store

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// valueTag prefixes every stored blob and names its compression.
// Values are persisted; do not renumber.
type valueTag uint8

const (
	valueRaw  valueTag = 0
	valueZstd valueTag = 1
)

func (tag valueTag) String() string {
	switch tag {
	case valueRaw:
		return "raw"
	case valueZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

// Shared coders; both are safe for concurrent EncodeAll/DecodeAll.
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
		panic("store: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		panic("store: zstd decoder initialization failed: " + err.Error())
	}
}

// packValue tags b and compresses it when asked and when that saves space.
func packValue(b []byte, compress bool) []byte {
	if compress {
		z := zstdEncoder.EncodeAll(b, make([]byte, 1, 1+len(b)))
		if len(z) < 1+len(b) {
			z[0] = byte(valueZstd)
			return z
		}
	}
	out := make([]byte, 1+len(b))
	out[0] = byte(valueRaw)
	copy(out[1:], b)
	return out
}

func unpackValue(v []byte) ([]byte, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("store: empty value")
	}
	switch tag := valueTag(v[0]); tag {
	case valueRaw:
		return append([]byte(nil), v[1:]...), nil
	case valueZstd:
		out, err := zstdDecoder.DecodeAll(v[1:], nil)
		if err != nil {
			return nil, fmt.Errorf("store: zstd: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("store: value tag %s", tag)
	}
}
