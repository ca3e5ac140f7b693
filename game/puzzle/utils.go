package puzzle

// Inversions counts pairs of numbered tiles that appear in the wrong
// relative order when the board is read row by row.
func (b Board) Inversions() int {
	count := 0
	for i := 0; i < Cells; i++ {
		if b[i] == Empty {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != Empty && b[i] > b[j] {
				count++
			}
		}
	}
	return count
}

// IsSolvable reports whether the board can reach SolvedBoard through legal
// slides. On an even-width grid that holds exactly when the inversion count
// plus the gap's row (counted from the top, zero-based) is odd.
func (b Board) IsSolvable() bool {
	row := b.EmptyIndex() / Size
	return (b.Inversions()+row)%2 == 1
}

// ManhattanDistance sums, over every numbered tile, the grid distance from its
// current cell to its cell on the solved board.
func (b Board) ManhattanDistance() int {
	sum := 0
	for i, v := range b {
		if v == Empty {
			continue
		}
		sum += abs(i/Size-(v-1)/Size) + abs(i%Size-(v-1)%Size)
	}
	return sum
}

// MisplacedTiles counts numbered tiles not on their solved cell
func (b Board) MisplacedTiles() int {
	count := 0
	for i, v := range b {
		if v != Empty && v != i+1 {
			count++
		}
	}
	return count
}

// PossibleMoves returns every direction that would change the board
func (b Board) PossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions {
		if b.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
