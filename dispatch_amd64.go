package ripemd160

import (
	"github.com/lanehash/ripemd160/internal/consts"
	"github.com/lanehash/ripemd160/internal/engine"
	"github.com/lanehash/ripemd160/internal/lane"
)

// Widest batch the CPU's vector registers can hold: 8 lanes on AVX2,
// 4 on SSE4.1, scalar otherwise. Decided once at startup.
var width, compressBatch = func() (int, func(blocks, digests []uint32)) {
	switch {
	case consts.HasAVX2:
		return 8, engine.Compress[lane.V8]
	case consts.HasSSE41:
		return 4, engine.Compress[lane.V4]
	default:
		return 1, engine.Compress[lane.V1]
	}
}()
