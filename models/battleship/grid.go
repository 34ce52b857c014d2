package battleship

import (
	"bufio"
	"io"
)

const GridSize = 8

const (
	PositionStateEmpty rune = ' '
	PositionStateHit   rune = 'U'
	PositionStateMiss  rune = 'o'
	PositionStateSunk  rune = 'X'
)

type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) IsInGrid() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// The board only displays what happened; it knows nothing about ships.
type Grid [GridSize][GridSize]rune

func NewGrid() *Grid {
	var grid Grid
	grid.Reset()
	return &grid
}

func (g *Grid) Reset() {
	for row := range g {
		for col := range g[row] {
			g[row][col] = PositionStateEmpty
		}
	}
}

func (g *Grid) At(row, col int) rune {
	return g[row][col]
}

func (g *Grid) MarkHit(row, col int) {
	g[row][col] = PositionStateHit
}

func (g *Grid) MarkMiss(row, col int) {
	g[row][col] = PositionStateMiss
}

// Marks the cell as sunk and splashes the orthogonal
// neighbours as misses unless they are sunk already.
func (g *Grid) MarkSunk(row, col int) {
	g[row][col] = PositionStateSunk

	neighbours := []Coordinates{
		NewCoordinates(row-1, col),
		NewCoordinates(row+1, col),
		NewCoordinates(row, col-1),
		NewCoordinates(row, col+1),
	}
	for _, n := range neighbours {
		if n.IsInGrid() && g[n.Row][n.Col] != PositionStateSunk {
			g[n.Row][n.Col] = PositionStateMiss
		}
	}
}

// Writes column letters as header followed by one
// line per row prefixed with its 1-based number.
func (g *Grid) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("\n  ")
	for col := 0; col < GridSize; col++ {
		bw.WriteRune(rune('A' + col))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')

	for row := range g {
		bw.WriteRune(rune('1' + row))
		bw.WriteByte(' ')
		for _, cell := range g[row] {
			bw.WriteRune(cell)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
