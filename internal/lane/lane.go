// Package lane defines the vector capability set the compression engine is
// written against: one 32-bit value per lane, every operation applied to
// each lane independently. One implementation exists per lane width; V1 is
// the scalar fallback and is compiled on every target.
package lane

// Vector is the contract each backend satisfies. All operations are pure
// and lane-independent: lane i of any result depends only on lane i of the
// inputs, never on another lane and never on a lane-varying branch. That is
// what makes batching unrelated messages valid.
//
// Splat and Gather construct new vectors; they ignore the receiver value
// and exist on the interface so generic code can mint vectors from a zero
// value of the concrete type.
type Vector[V any] interface {
	// Lanes reports the number of independent 32-bit lanes.
	Lanes() int

	// Splat returns a vector with every lane set to k.
	Splat(k uint32) V

	// Gather loads rows[l*stride+idx] into lane l for each lane.
	Gather(rows []uint32, stride, idx int) V

	// Scatter stores lane l into rows[l*stride+idx] for each lane.
	Scatter(rows []uint32, stride, idx int)

	And(V) V
	Or(V) V
	Xor(V) V
	Not() V

	// Add is wraparound addition modulo 2^32 per lane. Overflow is the
	// required arithmetic, not an error.
	Add(V) V

	// RotL rotates each lane left by n bits, n in 0..31. The round
	// schedule supplies only constants, so backends whose rotate needs an
	// immediate operand can unroll from the same table.
	RotL(n uint) V

	// Bswap reverses the byte order of each lane independently.
	Bswap() V
}
