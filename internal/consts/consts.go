package consts

// Initial chaining value, loaded into both branch quintuples at the start
// of every compression.
const (
	Init0 = 0x67452301
	Init1 = 0xefcdab89
	Init2 = 0x98badcfe
	Init3 = 0x10325476
	Init4 = 0xc3d2e1f0
)

const (
	// BlockWords is the number of 32-bit message words per lane per block.
	BlockWords = 16

	// DigestWords is the number of 32-bit digest words per lane.
	DigestWords = 5

	// Rounds is the number of round applications per branch.
	Rounds = 80
)

// Round is one entry of the fixed schedule: which base function combines
// b, c and d, the additive constant, the block word feeding the round, and
// the left-rotate amount. 80 entries per branch, never mutated.
type Round struct {
	Fn uint8 // base function id, 1 through 5
	K  uint32
	X  uint8 // block word index
	S  uint8 // rotate amount
}

// Per-group additive constants. The left branch walks F1..F5, the right
// branch walks F5..F1 with its own constants.
var (
	kLeft  = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	kRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
)

// Word selection order per round.
var (
	idxLeft = [Rounds]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}

	idxRight = [Rounds]uint8{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
)

// Rotate amount per round.
var (
	rotLeft = [Rounds]uint8{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}

	rotRight = [Rounds]uint8{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
)

// ScheduleLeft and ScheduleRight are the two branch schedules, assembled
// once from the standard's tables.
var ScheduleLeft, ScheduleRight [Rounds]Round

func init() {
	for i := 0; i < Rounds; i++ {
		g := i / 16
		ScheduleLeft[i] = Round{Fn: uint8(1 + g), K: kLeft[g], X: idxLeft[i], S: rotLeft[i]}
		ScheduleRight[i] = Round{Fn: uint8(5 - g), K: kRight[g], X: idxRight[i], S: rotRight[i]}
	}
}
