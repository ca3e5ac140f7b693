package puzzle

import "math/rand/v2"

// Source supplies uniform random indices. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Shuffle draws a fresh board. Starting from an all-empty grid, each value
// 1..15 in ascending order is placed at a uniformly drawn index, redrawing
// until the index is still free. A nil src uses the process-wide generator.
//
// With ShuffleSolvable the draw is then parity-corrected by swapping the
// first two numbered tiles, which maps the unsolvable half of the outcome
// space one-to-one onto the solvable half.
func Shuffle(src Source, policy ShufflePolicy) Board {
	if src == nil {
		src = globalSource{}
	}

	var b Board
	for v := 1; v < Cells; v++ {
		pos := src.IntN(Cells)
		for b[pos] != Empty {
			pos = src.IntN(Cells)
		}
		b[pos] = v
	}

	if policy == ShuffleSolvable && !b.IsSolvable() {
		b.swapFirstTiles()
	}
	return b
}

// swapFirstTiles exchanges the two lowest-index numbered tiles, flipping
// permutation parity without moving the gap.
func (b *Board) swapFirstTiles() {
	first := -1
	for i, v := range b {
		if v == Empty {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		b[first], b[i] = b[i], b[first]
		return
	}
}
