package ripemd160

import (
	"fmt"
	"testing"

	"github.com/lanehash/ripemd160/internal/engine"
	"github.com/lanehash/ripemd160/internal/lane"
)

// Round issue order moves throughput a lot on real hardware without ever
// changing results, so both drivers are benchmarked per width.
func BenchmarkCompress(b *testing.B) {
	run := func(b *testing.B, lanes int, fn func(blocks, digests []uint32)) {
		blocks := make([]uint32, lanes*16)
		digests := make([]uint32, lanes*5)
		b.ReportAllocs()
		b.SetBytes(int64(lanes * BlockSize))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fn(blocks, digests)
		}
	}

	for _, bc := range []struct {
		lanes       int
		interleaved func(blocks, digests []uint32)
		sequential  func(blocks, digests []uint32)
	}{
		{1, engine.Compress[lane.V1], engine.CompressSequential[lane.V1]},
		{4, engine.Compress[lane.V4], engine.CompressSequential[lane.V4]},
		{8, engine.Compress[lane.V8], engine.CompressSequential[lane.V8]},
	} {
		b.Run(fmt.Sprintf("%dlane/interleaved", bc.lanes), func(b *testing.B) { run(b, bc.lanes, bc.interleaved) })
		b.Run(fmt.Sprintf("%dlane/sequential", bc.lanes), func(b *testing.B) { run(b, bc.lanes, bc.sequential) })
	}
}

func BenchmarkSumBatch(b *testing.B) {
	msgs := make([][]byte, Width())
	digests := make([][Size]byte, Width())
	for l := range msgs {
		msgs[l] = []byte("the quick brown fox jumps over the lazy dog")
	}

	b.ReportAllocs()
	b.SetBytes(int64(Width() * BlockSize))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := SumBatch(msgs, digests); err != nil {
			b.Fatal(err)
		}
	}
}
