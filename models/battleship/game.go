package battleship

import (
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	MatchStatusAbandoned = -1
	MatchStatusOngoing   = 0
	MatchStatusWon       = 1
)

type ShotResult struct {
	Coords        Coordinates
	Shot          string
	PositionState rune
	ShipsLeft     int
	Elapsed       time.Duration
}

func (sr ShotResult) IsHit() bool {
	return sr.PositionState == PositionStateHit || sr.PositionState == PositionStateSunk
}

func (sr ShotResult) IsSunk() bool {
	return sr.PositionState == PositionStateSunk
}

// ElapsedSeconds truncates to whole seconds.
func (sr ShotResult) ElapsedSeconds() int64 {
	return int64(sr.Elapsed / time.Second)
}

// A Game is one session: from a blank board to a win or an exit.
type Game struct {
	uuid        string
	ships       []*Ship
	grid        *Grid
	startedAt   time.Time
	finishedAt  time.Time
	matchStatus int
	clock       func() time.Time
}

func newGame(clock func() time.Time) *Game {
	return &Game{
		uuid:        uuid.NewString()[:6],
		ships:       NewFleet(),
		grid:        NewGrid(),
		startedAt:   clock(),
		matchStatus: MatchStatusOngoing,
		clock:       clock,
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Grid() *Grid {
	return g.grid
}

func (g *Game) ShipsLeft() int {
	return len(g.ships)
}

func (g *Game) MatchStatus() int {
	return g.matchStatus
}

func (g *Game) IsFinished() bool {
	return g.matchStatus != MatchStatusOngoing
}

// Zero until the game is won.
func (g *Game) Elapsed() time.Duration {
	if g.matchStatus != MatchStatusWon {
		return 0
	}
	return g.finishedAt.Sub(g.startedAt)
}

func (g *Game) Abandon() {
	if g.IsFinished() {
		return
	}
	g.matchStatus = MatchStatusAbandoned
	g.finishedAt = g.clock()
}

// Attack resolves one normalized shot against the active ships.
// Invalid shots leave the game untouched.
func (g *Game) Attack(shot string) (ShotResult, error) {
	if g.IsFinished() {
		return ShotResult{}, cerr.ErrGameFinished(g.uuid)
	}

	coords, err := ParseShot(shot)
	if err != nil {
		return ShotResult{}, err
	}

	result := ShotResult{Coords: coords, Shot: shot}

	hitIdx := -1
	for i, ship := range g.ships {
		if ship.CheckHit(shot) {
			hitIdx = i
			break
		}
	}

	if hitIdx == -1 {
		g.grid.MarkMiss(coords.Row, coords.Col)
		result.PositionState = PositionStateMiss
		result.ShipsLeft = len(g.ships)
		return result, nil
	}

	ship := g.ships[hitIdx]
	ship.GotHit()
	if !ship.IsSunk() {
		g.grid.MarkHit(coords.Row, coords.Col)
		result.PositionState = PositionStateHit
		result.ShipsLeft = len(g.ships)
		return result, nil
	}

	g.grid.MarkSunk(coords.Row, coords.Col)
	g.ships = append(g.ships[:hitIdx], g.ships[hitIdx+1:]...)
	result.PositionState = PositionStateSunk
	result.ShipsLeft = len(g.ships)

	if len(g.ships) == 0 {
		g.matchStatus = MatchStatusWon
		g.finishedAt = g.clock()
		result.Elapsed = g.Elapsed()
	}

	return result, nil
}
