//go:build !amd64

package ripemd160

import (
	"github.com/lanehash/ripemd160/internal/engine"
	"github.com/lanehash/ripemd160/internal/lane"
)

// The scalar fallback serves every target without vector dispatch.
const width = 1

var compressBatch = engine.Compress[lane.V1]
