package lane

import "math/bits"

// V1 is the scalar fallback: a single lane of plain uint32 arithmetic.
type V1 uint32

func (V1) Lanes() int { return 1 }

func (V1) Splat(k uint32) V1 { return V1(k) }

func (V1) Gather(rows []uint32, stride, idx int) V1 { return V1(rows[idx]) }

func (v V1) Scatter(rows []uint32, stride, idx int) { rows[idx] = uint32(v) }

func (v V1) And(o V1) V1 { return v & o }
func (v V1) Or(o V1) V1  { return v | o }
func (v V1) Xor(o V1) V1 { return v ^ o }
func (v V1) Not() V1     { return ^v }
func (v V1) Add(o V1) V1 { return v + o }

func (v V1) RotL(n uint) V1 { return V1(bits.RotateLeft32(uint32(v), int(n))) }

func (v V1) Bswap() V1 { return V1(bits.ReverseBytes32(uint32(v))) }
