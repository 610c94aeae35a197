package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how data files are compressed on disk.
type Compression uint8

const (
	// None stores the binary serialization as is.
	None Compression = iota
	// LZ4 uses lz4 block compression, fast.
	LZ4
	// Zstd uses zstd, better ratio.
	Zstd
)

var (
	// ErrCorrupted is returned when a compressed data file can not be decoded.
	ErrCorrupted = errors.New("corrupted data file")

	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

// ParseCompression returns the compression named by s.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd", "zst":
		return Zstd, nil
	}
	return None, fmt.Errorf("unknown compression '%s', valid options are 'none', 'lz4' and 'zstd'", s)
}

func (c Compression) String() string {
	switch c {
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	}
	return "none"
}

// Ext returns the file extension of data files using this compression.
func (c Compression) Ext() string {
	switch c {
	case LZ4:
		return DatFileExt + lz4FileExt
	case Zstd:
		return DatFileExt + zstdFileExt
	}
	return DatFileExt
}

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// lz4 blocks do not carry their uncompressed size, they are prefixed by
// [uncompressed uint32][compressed uint32], a zero compressed size meaning the
// payload did not compress and is stored as is.
const lz4HeaderSize = 8

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case LZ4:
		buf := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf[lz4HeaderSize:], nil)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(buf[0:], uint32(len(data)))
		if n == 0 {
			// incompressible
			binary.LittleEndian.PutUint32(buf[4:], 0)
			n = copy(buf[lz4HeaderSize:], data)
		} else {
			binary.LittleEndian.PutUint32(buf[4:], uint32(n))
		}
		return buf[:lz4HeaderSize+n], nil
	}
	return nil, fmt.Errorf("unsupported compression %d", c)
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		return out, nil
	case LZ4:
		if len(data) < lz4HeaderSize {
			return nil, fmt.Errorf("%w: block too small for header", ErrCorrupted)
		}
		size := binary.LittleEndian.Uint32(data[0:])
		csize := binary.LittleEndian.Uint32(data[4:])
		payload := data[lz4HeaderSize:]
		if csize == 0 {
			if uint32(len(payload)) < size {
				return nil, fmt.Errorf("%w: block data too small", ErrCorrupted)
			}
			return payload[:size], nil
		} else if uint32(len(payload)) < csize {
			return nil, fmt.Errorf("%w: compressed block data too small", ErrCorrupted)
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload[:csize], out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		} else if uint32(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupted)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported compression %d", c)
}
