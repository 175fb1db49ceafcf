package lane

import (
	"math/bits"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func testOps[V Vector[V]](t *testing.T) {
	var z V
	n := z.Lanes()

	a := make([]uint32, n)
	b := make([]uint32, n)
	for l := range a {
		a[l], b[l] = pcg.Uint32(), pcg.Uint32()
	}

	va := z.Gather(a, 1, 0)
	vb := z.Gather(b, 1, 0)

	check := func(v V, exp func(x, y uint32) uint32) {
		out := make([]uint32, n)
		v.Scatter(out, 1, 0)
		for l := range out {
			assert.Equal(t, exp(a[l], b[l]), out[l])
		}
	}

	check(va.And(vb), func(x, y uint32) uint32 { return x & y })
	check(va.Or(vb), func(x, y uint32) uint32 { return x | y })
	check(va.Xor(vb), func(x, y uint32) uint32 { return x ^ y })
	check(va.Not(), func(x, y uint32) uint32 { return ^x })
	check(va.Add(vb), func(x, y uint32) uint32 { return x + y })
	check(va.Bswap(), func(x, y uint32) uint32 { return bits.ReverseBytes32(x) })
	check(z.Splat(0xdecafbad), func(x, y uint32) uint32 { return 0xdecafbad })

	for _, s := range []uint{0, 1, 10, 13, 31} {
		s := s
		check(va.RotL(s), func(x, y uint32) uint32 { return bits.RotateLeft32(x, int(s)) })
	}
}

func TestOpsV1(t *testing.T) { testOps[V1](t) }
func TestOpsV4(t *testing.T) { testOps[V4](t) }
func TestOpsV8(t *testing.T) { testOps[V8](t) }

func testAddWraps[V Vector[V]](t *testing.T) {
	var z V
	n := z.Lanes()

	got := make([]uint32, n)
	z.Splat(0xffffffff).Add(z.Splat(2)).Scatter(got, 1, 0)
	for _, w := range got {
		assert.Equal(t, uint32(1), w)
	}
}

func TestAddWrapsV1(t *testing.T) { testAddWraps[V1](t) }
func TestAddWrapsV4(t *testing.T) { testAddWraps[V4](t) }
func TestAddWrapsV8(t *testing.T) { testAddWraps[V8](t) }

func testGatherScatter[V Vector[V]](t *testing.T) {
	const stride = 16

	var z V
	n := z.Lanes()

	rows := make([]uint32, n*stride)
	for i := range rows {
		rows[i] = pcg.Uint32()
	}

	out := make([]uint32, n*stride)
	for idx := 0; idx < stride; idx++ {
		z.Gather(rows, stride, idx).Scatter(out, stride, idx)
	}
	assert.DeepEqual(t, rows, out)

	// lane l of a gather must come from row l only
	for idx := 0; idx < stride; idx++ {
		got := make([]uint32, n)
		z.Gather(rows, stride, idx).Scatter(got, 1, 0)
		for l := 0; l < n; l++ {
			assert.Equal(t, rows[l*stride+idx], got[l])
		}
	}
}

func TestGatherScatterV1(t *testing.T) { testGatherScatter[V1](t) }
func TestGatherScatterV4(t *testing.T) { testGatherScatter[V4](t) }
func TestGatherScatterV8(t *testing.T) { testGatherScatter[V8](t) }
