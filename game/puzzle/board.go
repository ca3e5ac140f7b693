package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Board is the 4x4 grid in row-major order. Index i is row i/Size, column
// i%Size. The value Empty marks the empty slot.
type Board [Cells]int

// SolvedBoard returns the canonical ordered board with the gap in the last cell
func SolvedBoard() Board {
	var b Board
	for i := 0; i < Cells-1; i++ {
		b[i] = i + 1
	}
	b[Cells-1] = Empty
	return b
}

// slide describes the legality check and neighbour offset for one direction.
// Horizontal moves are named for the tile that slides, vertical moves for the
// path of the gap.
type slide struct {
	legal  func(row, col int) bool
	offset int
}

var slides = map[Direction]slide{
	Left:  {legal: func(_, col int) bool { return col < Size-1 }, offset: 1},
	Right: {legal: func(_, col int) bool { return col > 0 }, offset: -1},
	Up:    {legal: func(row, _ int) bool { return row >= 1 }, offset: -Size},
	Down:  {legal: func(row, _ int) bool { return row < Size-1 }, offset: Size},
}

// ParseDirection converts user input into a Direction
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := slides[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Opposite returns the direction that undoes d
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return d
}

// IndexOf returns the index holding v, or -1
func (b Board) IndexOf(v int) int {
	for i, cell := range b {
		if cell == v {
			return i
		}
	}
	return -1
}

// EmptyIndex returns the index of the empty slot
func (b Board) EmptyIndex() int {
	return b.IndexOf(Empty)
}

// EmptyPosition returns the row and column of the empty slot
func (b Board) EmptyPosition() Position {
	return positionOf(b.EmptyIndex())
}

func positionOf(idx int) Position {
	return Position{Row: idx / Size, Col: idx % Size}
}

// target returns the index of the tile that would slide for d, or -1 when
// the move is not legal from the current gap.
func (b Board) target(d Direction) int {
	s, ok := slides[d]
	if !ok {
		return -1
	}
	p := b.EmptyIndex()
	if p < 0 {
		return -1
	}
	if !s.legal(p/Size, p%Size) {
		return -1
	}
	return p + s.offset
}

// CanMove reports whether a move in direction d would change the board
func (b Board) CanMove(d Direction) bool {
	return b.target(d) >= 0
}

// Move slides the neighbouring tile into the empty slot. It returns false and
// leaves the board untouched when the gap has no neighbour in that direction.
func (b *Board) Move(d Direction) bool {
	t := b.target(d)
	if t < 0 {
		return false
	}
	p := b.EmptyIndex()
	b[p], b[t] = b[t], Empty
	return true
}

func (b *Board) MoveLeft() bool  { return b.Move(Left) }
func (b *Board) MoveRight() bool { return b.Move(Right) }
func (b *Board) MoveUp() bool    { return b.Move(Up) }
func (b *Board) MoveDown() bool  { return b.Move(Down) }

// Validate checks that the board holds each of 0..15 exactly once
func (b Board) Validate() error {
	var seen [Cells]bool
	for i, v := range b {
		if v < 0 || v >= Cells {
			return fmt.Errorf("%w: value %d at index %d out of range", ErrInvalidBoard, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears more than once", ErrInvalidBoard, v)
		}
		seen[v] = true
	}
	return nil
}

// IsSolved reports whether the board is in canonical order
func (b Board) IsSolved() bool {
	return b == SolvedBoard()
}

// Rows returns a copy of the board as Size rows of Size values
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := 0; r < Size; r++ {
		rows[r] = append([]int(nil), b[r*Size:(r+1)*Size]...)
	}
	return rows
}

// String renders the board as four slash-separated rows, e.g.
// "1 2 3 4 / 5 6 7 8 / 9 10 11 12 / 13 14 15 0".
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			if i%Size == 0 {
				sb.WriteString(" / ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// ParseBoard reads 16 integers separated by spaces, commas or slashes
func ParseBoard(s string) (Board, error) {
	var b Board
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '\t' || r == '\n' || r == '[' || r == ']'
	})
	if len(fields) != Cells {
		return b, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidBoard, Cells, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return b, fmt.Errorf("%w: %q is not a number", ErrInvalidBoard, f)
		}
		b[i] = v
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}
