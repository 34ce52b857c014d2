package battleship

import "slices"

// A ship is sunk once it took as many hits as it has cells.
type Ship struct {
	hits      int
	positions []string
}

func NewShip(length int) *Ship {
	return &Ship{
		hits:      0,
		positions: make([]string, 0, length),
	}
}

// Every session starts with the same three ships.
// Placement is fixed: A1 | C3,C4 | F7,G7
func NewFleet() []*Ship {
	boat := NewShip(1)
	boat.Place("A1")

	destroyer := NewShip(2)
	destroyer.Place("C3", "C4")

	cruiser := NewShip(2)
	cruiser.Place("F7", "G7")

	return []*Ship{boat, destroyer, cruiser}
}

// No validation against grid bounds or other ships.
func (sh *Ship) Place(positions ...string) {
	sh.positions = append(sh.positions, positions...)
}

func (sh *Ship) CheckHit(shot string) bool {
	return slices.Contains(sh.positions, shot)
}

// Hitting the same cell twice counts twice.
func (sh *Ship) GotHit() {
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == len(sh.positions)
}

func (sh *Ship) Hits() int {
	return sh.hits
}

func (sh *Ship) Positions() []string {
	return slices.Clone(sh.positions)
}
