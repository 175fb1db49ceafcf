// Package ripemd160 implements batched, lane-parallel RIPEMD-160
// compression: one call computes Width() digests from Width() independent,
// already-framed 512-bit blocks. The scalar path is compiled on every
// target; wider backends are picked at startup from CPU features.
//
// Only single-block compression is provided. Callers frame messages into
// blocks themselves (PadBlock handles any message that fits one block) and
// receive raw digest words; the Sum helpers wrap both ends for
// convenience. Multi-block chaining, padding of longer messages, and
// spreading batches across threads belong to the caller.
package ripemd160

import (
	"github.com/lanehash/ripemd160/internal/engine"
	"github.com/lanehash/ripemd160/internal/lane"
)

const (
	// Size is the digest length in bytes.
	Size = 20

	// BlockSize is the message block length in bytes.
	BlockSize = 64
)

// Width reports how many independent blocks one CompressBlocks call
// consumes on this build. Always at least 1.
func Width() int { return width }

// CompressBlocks computes Width() digests from Width() pre-framed blocks.
// blocks holds 16 words per lane, row-major by lane; digests receives 5
// words per lane in the same order. It allocates nothing and validates no
// framing; a wrong-shaped slice is a programmer error.
//
// Calls are independent and safe to run concurrently as long as each call
// gets its own buffers.
func CompressBlocks(blocks, digests []uint32) {
	if len(blocks) != width*16 || len(digests) != width*5 {
		panic("ripemd160: batch needs Width()*16 block words and Width()*5 digest words")
	}
	compressBatch(blocks, digests)
}

// Fixed-width entry points. All three are compiled on every target, so any
// width can be exercised and checked against the scalar path no matter
// what the dispatcher picked.

// Compress1 is the scalar reference path: one block in, one digest out.
func Compress1(block *[16]uint32, digest *[5]uint32) {
	engine.Compress[lane.V1](block[:], digest[:])
}

// Compress4 compresses four independent blocks, row-major by lane.
func Compress4(blocks *[64]uint32, digests *[20]uint32) {
	engine.Compress[lane.V4](blocks[:], digests[:])
}

// Compress8 compresses eight independent blocks, row-major by lane.
func Compress8(blocks *[128]uint32, digests *[40]uint32) {
	engine.Compress[lane.V8](blocks[:], digests[:])
}
