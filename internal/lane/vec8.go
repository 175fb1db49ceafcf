package lane

import "math/bits"

// V8 packs eight lanes, the shape of one 256-bit register.
type V8 [8]uint32

func (V8) Lanes() int { return 8 }

func (V8) Splat(k uint32) V8 { return V8{k, k, k, k, k, k, k, k} }

func (V8) Gather(rows []uint32, stride, idx int) (r V8) {
	for l := range r {
		r[l] = rows[l*stride+idx]
	}
	return r
}

func (v V8) Scatter(rows []uint32, stride, idx int) {
	for l, x := range v {
		rows[l*stride+idx] = x
	}
}

func (v V8) And(o V8) V8 {
	for l := range v {
		v[l] &= o[l]
	}
	return v
}

func (v V8) Or(o V8) V8 {
	for l := range v {
		v[l] |= o[l]
	}
	return v
}

func (v V8) Xor(o V8) V8 {
	for l := range v {
		v[l] ^= o[l]
	}
	return v
}

func (v V8) Not() V8 {
	for l := range v {
		v[l] = ^v[l]
	}
	return v
}

func (v V8) Add(o V8) V8 {
	for l := range v {
		v[l] += o[l]
	}
	return v
}

func (v V8) RotL(n uint) V8 {
	for l := range v {
		v[l] = bits.RotateLeft32(v[l], int(n))
	}
	return v
}

func (v V8) Bswap() V8 {
	for l := range v {
		v[l] = bits.ReverseBytes32(v[l])
	}
	return v
}
