package battleship

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsTop(t *testing.T) {
	tests := []struct {
		name     string
		added    []int64
		expected []int64
	}{
		{name: "empty", added: nil, expected: []int64{}},
		{name: "fewer than three", added: []int64{40, 12}, expected: []int64{12, 40}},
		{name: "more than three", added: []int64{90, 5, 33, 17, 61}, expected: []int64{5, 17, 33}},
		{name: "equal times kept", added: []int64{20, 20, 30}, expected: []int64{20, 20, 30}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			results := NewResults()
			for _, seconds := range test.added {
				results.Add(seconds)
			}

			assert.Equal(t, test.expected, results.Top(TopResultsCount))
			assert.Equal(t, len(test.added), results.Len())
		})
	}
}

func TestResultsTopBounds(t *testing.T) {
	results := NewResults()
	results.Add(8)
	results.Add(2)

	assert.Empty(t, results.Top(-1))
	assert.Empty(t, results.Top(0))
	assert.Equal(t, []int64{2, 8}, results.Top(10))
}

func TestResultsTopDoesNotReorderStorage(t *testing.T) {
	results := NewResults()
	results.Add(9)
	results.Add(3)

	_ = results.Top(1)

	assert.Equal(t, []int64{9, 3}, results.seconds)
}

func TestGameManagerFinishGame(t *testing.T) {
	bgm := NewBattleshipGameManager(steppingClock(4 * time.Second))

	won := bgm.CreateGame()
	for _, shot := range []string{"A1", "C3", "C4", "F7", "G7"} {
		_, err := won.Attack(shot)
		require.NoError(t, err)
	}
	bgm.FinishGame(won)

	abandoned := bgm.CreateGame()
	abandoned.Abandon()
	bgm.FinishGame(abandoned)

	assert.Equal(t, []int64{4}, bgm.TopResults())
}

func TestGameManagerCreatesFreshGames(t *testing.T) {
	bgm := NewBattleshipGameManager(nil)

	first := bgm.CreateGame()
	for _, shot := range []string{"A1", "C3", "C4", "F7", "G7"} {
		_, err := first.Attack(shot)
		require.NoError(t, err)
	}
	require.True(t, first.IsFinished())

	second := bgm.CreateGame()
	assert.NotEqual(t, first.Uuid(), second.Uuid())
	assert.Equal(t, 3, second.ShipsLeft())
	assert.False(t, second.IsFinished())
	assert.Equal(t, PositionStateEmpty, second.Grid().At(0, 0))
}
