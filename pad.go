package ripemd160

import (
	"encoding/binary"
	"errors"
)

var (
	errTooLong    = errors.New("ripemd160: message does not fit a single block")
	errBatchWidth = errors.New("ripemd160: batch must hold exactly Width() messages")
)

// PadBlock frames msg into one 512-bit block: the 0x80 terminator, zero
// fill, and the 64-bit little-endian bit length. msg may hold at most
// BlockSize-9 = 55 bytes; longer messages would span multiple blocks,
// which this package does not chain.
func PadBlock(msg []byte, block *[16]uint32) error {
	if len(msg) > BlockSize-9 {
		return errTooLong
	}
	var buf [BlockSize]byte
	copy(buf[:], msg)
	buf[len(msg)] = 0x80
	binary.LittleEndian.PutUint64(buf[BlockSize-8:], uint64(len(msg))<<3)
	for i := range block {
		block[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return nil
}

// Sum returns the RIPEMD-160 digest of a message that fits a single
// block. It always runs the scalar path; the batched paths are checked
// against it. Sum panics if msg is longer than 55 bytes.
func Sum(msg []byte) [Size]byte {
	var block [16]uint32
	if err := PadBlock(msg, &block); err != nil {
		panic(err)
	}
	var words [5]uint32
	Compress1(&block, &words)
	var out [Size]byte
	putWords(out[:], words[:])
	return out
}

// SumBatch frames exactly Width() single-block messages and compresses
// them in one batched call, writing one digest per message.
func SumBatch(msgs [][]byte, digests [][Size]byte) error {
	if len(msgs) != width || len(digests) != width {
		return errBatchWidth
	}
	blocks := make([]uint32, width*16)
	words := make([]uint32, width*5)
	for l, msg := range msgs {
		var block [16]uint32
		if err := PadBlock(msg, &block); err != nil {
			return err
		}
		copy(blocks[l*16:], block[:])
	}
	compressBatch(blocks, words)
	for l := range digests {
		putWords(digests[l][:], words[l*5:l*5+5])
	}
	return nil
}

// putWords serializes digest words in the standard's little-endian order.
func putWords(dst []byte, words []uint32) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(dst[4*i:], w)
	}
}
