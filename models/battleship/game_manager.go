package battleship

import (
	"log"
	"time"
)

type GameManager interface {
	CreateGame() *Game
	FinishGame(game *Game)
	TopResults() []int64
}

// BattleshipGameManager hands out a fresh game for every
// "new game" request and collects the results of won ones.
// Results live only as long as the process.
type BattleshipGameManager struct {
	results *Results
	clock   func() time.Time
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(clock func() time.Time) *BattleshipGameManager {
	if clock == nil {
		clock = time.Now
	}

	return &BattleshipGameManager{
		results: NewResults(),
		clock:   clock,
	}
}

func (bgm *BattleshipGameManager) CreateGame() *Game {
	game := newGame(bgm.clock)
	log.Printf("game created: %s", game.Uuid())
	return game
}

// Records the elapsed time when the game was won.
// Abandoned games leave no result.
func (bgm *BattleshipGameManager) FinishGame(game *Game) {
	switch game.MatchStatus() {
	case MatchStatusWon:
		seconds := int64(game.Elapsed() / time.Second)
		bgm.results.Add(seconds)
		log.Printf("game won: %s\telapsed: %ds", game.Uuid(), seconds)

	case MatchStatusAbandoned:
		log.Printf("game abandoned: %s", game.Uuid())
	}
}

func (bgm *BattleshipGameManager) TopResults() []int64 {
	return bgm.results.Top(TopResultsCount)
}
