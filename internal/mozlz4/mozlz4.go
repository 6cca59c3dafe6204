// Package mozlz4 reads and writes the mozLz4 block framing Firefox uses for
// session files: an 8-byte header, a 4-byte little-endian uncompressed size,
// then a single lz4 block.
package mozlz4

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	headerLen = 8
	sizeLen   = 4

	// An lz4 block sequence emits at most 255 output bytes per input byte
	// (run-length extension), so any size field beyond that bound is a lie
	// and not worth allocating for.
	maxExpansion = 255
)

// Magic is the header Firefox writes. Decompress skips the first 8 bytes
// without comparing them; the size-field consistency check below is what
// rejects garbage input.
var Magic = [headerLen]byte{'m', 'o', 'z', 'L', 'z', '4', '0', 0}

var errTruncated = errors.New("buffer too short for mozLz4 framing")

// Decompress strips the header and inflates the size-prepended lz4 block.
// A corrupt candidate file is expected input: every failure mode is a
// returned error, never a panic.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < headerLen+sizeLen {
		return nil, errTruncated
	}
	size := binary.LittleEndian.Uint32(data[headerLen:])
	block := data[headerLen+sizeLen:]
	if uint64(size) > uint64(len(block))*maxExpansion {
		return nil, fmt.Errorf("lz4 block: size field says %d bytes from a %d-byte block", size, len(block))
	}
	out := make([]byte, size)
	n, err := lz4.UncompressBlock(block, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 block: %w", err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("lz4 block: decompressed %d bytes, size field says %d", n, size)
	}
	return out, nil
}

// Compress frames buf in the mozLz4 layout. Firefox never reads what we
// write; this exists for test fixtures and round-trip verification.
func Compress(buf []byte) []byte {
	dst := make([]byte, lz4.CompressBlockBound(len(buf)))
	n, err := lz4.CompressBlock(buf, dst, nil)
	if err != nil || n == 0 {
		// CompressBlock gives up on incompressible input; store it as a
		// bare literal run, which is still a valid lz4 block.
		dst = literalBlock(buf)
		n = len(dst)
	}
	out := make([]byte, headerLen+sizeLen, headerLen+sizeLen+n)
	copy(out, Magic[:])
	binary.LittleEndian.PutUint32(out[headerLen:], uint32(len(buf)))
	return append(out, dst[:n]...)
}

// literalBlock encodes src as a single literal-only lz4 sequence.
func literalBlock(src []byte) []byte {
	n := len(src)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		out = append(out, byte(n)<<4)
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}
	return append(out, src...)
}
