// Package engine drives the two-branch compression over any lane vector:
// the five base functions, one parameterized round, two round-ordering
// drivers, and the block finalizer. All of it is written once against
// lane.Vector; the width is picked by instantiation.
package engine

import (
	"github.com/lanehash/ripemd160/internal/consts"
	"github.com/lanehash/ripemd160/internal/lane"
)

// f applies base function fn to b, c and d. fn comes from the schedule,
// never from message data, so the switch is uniform across lanes.
func f[V lane.Vector[V]](fn uint8, b, c, d V) V {
	switch fn {
	case 1:
		return b.Xor(c).Xor(d)
	case 2:
		return b.And(c).Or(b.Not().And(d))
	case 3:
		return b.Or(c.Not()).Xor(d)
	case 4:
		return b.And(d).Or(c.And(d.Not()))
	default:
		return b.Xor(c.Or(d.Not()))
	}
}

// round applies one schedule entry to a branch quintuple. Every one of the
// 160 round applications per block goes through here; rounds differ only
// in the parameters the schedule supplies.
func round[V lane.Vector[V]](r *consts.Round, a, b, c, d, e, x V) (V, V, V, V, V) {
	t := a.Add(f(r.Fn, b, c, d)).Add(x).Add(a.Splat(r.K))
	t = t.RotL(uint(r.S)).Add(e)
	return e, t, b, c.RotL(10), d
}

// quintuple is one branch's running registers.
type quintuple[V lane.Vector[V]] struct{ a, b, c, d, e V }

func (q *quintuple[V]) apply(r *consts.Round, x *[consts.BlockWords]V) {
	q.a, q.b, q.c, q.d, q.e = round(r, q.a, q.b, q.c, q.d, q.e, x[r.X])
}

// Compress computes one digest per lane from pre-framed blocks. blocks is
// row-major [lanes][16]uint32 and digests row-major [lanes][5]uint32.
//
// The left and right branches are interleaved one round for one, which
// doubles the independent dependency chains in flight. The issue order is
// a throughput knob only; CompressSequential runs the identical schedule
// and produces identical digests.
func Compress[V lane.Vector[V]](blocks, digests []uint32) {
	x, s := load[V](blocks)
	l, r := s, s
	for i := range consts.ScheduleLeft {
		l.apply(&consts.ScheduleLeft[i], &x)
		r.apply(&consts.ScheduleRight[i], &x)
	}
	finalize(digests, &s, &l, &r)
}

// CompressSequential issues all 80 left rounds, then all 80 right rounds.
// Kept wired so orderings can be benchmarked against each other per
// target; results are bit-identical to Compress.
func CompressSequential[V lane.Vector[V]](blocks, digests []uint32) {
	x, s := load[V](blocks)
	l, r := s, s
	for i := range consts.ScheduleLeft {
		l.apply(&consts.ScheduleLeft[i], &x)
	}
	for i := range consts.ScheduleRight {
		r.apply(&consts.ScheduleRight[i], &x)
	}
	finalize(digests, &s, &l, &r)
}

// load gathers the 16 message word vectors and broadcasts the initial
// chaining value. No state survives a call; both come fresh every time.
func load[V lane.Vector[V]](blocks []uint32) (x [consts.BlockWords]V, s quintuple[V]) {
	var z V
	for i := range x {
		x[i] = z.Gather(blocks, consts.BlockWords, i)
	}
	s = quintuple[V]{
		a: z.Splat(consts.Init0),
		b: z.Splat(consts.Init1),
		c: z.Splat(consts.Init2),
		d: z.Splat(consts.Init3),
		e: z.Splat(consts.Init4),
	}
	return x, s
}

// finalize combines both branches with the pre-round state through the
// fixed permutation and writes the digest words. s.a feeds the last word,
// so all five are built before any store clobbers anything.
func finalize[V lane.Vector[V]](digests []uint32, s, l, r *quintuple[V]) {
	d0 := s.b.Add(l.c).Add(r.d)
	d1 := s.c.Add(l.d).Add(r.e)
	d2 := s.d.Add(l.e).Add(r.a)
	d3 := s.e.Add(l.a).Add(r.b)
	d4 := s.a.Add(l.b).Add(r.c)

	d0.Scatter(digests, consts.DigestWords, 0)
	d1.Scatter(digests, consts.DigestWords, 1)
	d2.Scatter(digests, consts.DigestWords, 2)
	d3.Scatter(digests, consts.DigestWords, 3)
	d4.Scatter(digests, consts.DigestWords, 4)
}
