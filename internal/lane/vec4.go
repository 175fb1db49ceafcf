package lane

import "math/bits"

// V4 packs four lanes, the shape of one 128-bit register. The fixed-count
// loops below compile to straight-line code the compiler can vectorize.
type V4 [4]uint32

func (V4) Lanes() int { return 4 }

func (V4) Splat(k uint32) V4 { return V4{k, k, k, k} }

func (V4) Gather(rows []uint32, stride, idx int) (r V4) {
	for l := range r {
		r[l] = rows[l*stride+idx]
	}
	return r
}

func (v V4) Scatter(rows []uint32, stride, idx int) {
	for l, x := range v {
		rows[l*stride+idx] = x
	}
}

func (v V4) And(o V4) V4 {
	for l := range v {
		v[l] &= o[l]
	}
	return v
}

func (v V4) Or(o V4) V4 {
	for l := range v {
		v[l] |= o[l]
	}
	return v
}

func (v V4) Xor(o V4) V4 {
	for l := range v {
		v[l] ^= o[l]
	}
	return v
}

func (v V4) Not() V4 {
	for l := range v {
		v[l] = ^v[l]
	}
	return v
}

func (v V4) Add(o V4) V4 {
	for l := range v {
		v[l] += o[l]
	}
	return v
}

func (v V4) RotL(n uint) V4 {
	for l := range v {
		v[l] = bits.RotateLeft32(v[l], int(n))
	}
	return v
}

func (v V4) Bswap() V4 {
	for l := range v {
		v[l] = bits.ReverseBytes32(v[l])
	}
	return v
}
