package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroussel/barbu/internal/models"
)

func card(rank models.Rank, suit models.Suit) models.Card {
	return models.Card{Rank: rank, Suit: suit}
}

func TestParseRoundType(t *testing.T) {
	for _, rt := range AllRoundTypes() {
		parsed, err := ParseRoundType(string(rt))
		require.NoError(t, err)
		assert.Equal(t, rt, parsed)
	}
	_, err := ParseRoundType("Ravage City")
	assert.Error(t, err)
}

func TestScoreFoldsRound(t *testing.T) {
	// Player 1 claims two folds, player 2 claims one; pile size is
	// irrelevant under the Folds rule.
	folds := map[int][]Fold{
		1: {
			{card(models.Two, models.Clubs), card(models.Nine, models.Hearts)},
			{card(models.Ace, models.Spades)},
		},
		2: {
			{card(models.King, models.Hearts), card(models.Four, models.Diamonds), card(models.Jack, models.Clubs)},
		},
	}
	deltas := ScoreRound(RoundFolds, folds, 1, 2)
	assert.Equal(t, 10, deltas[1])
	assert.Equal(t, 5, deltas[2])
	assert.Zero(t, deltas[3])
}

func TestScoreQueensRound(t *testing.T) {
	// A fold holding a queen and the king of spades is worth exactly
	// one queen under the Queens rule, not the Barbu value.
	folds := map[int][]Fold{
		1: {{card(models.Queen, models.Hearts), card(models.King, models.Spades)}},
	}
	deltas := ScoreRound(RoundQueens, folds, 1, 1)
	assert.Equal(t, 20, deltas[1])
}

func TestScoreHeartsRound(t *testing.T) {
	folds := map[int][]Fold{
		1: {{card(models.Two, models.Hearts), card(models.Ace, models.Hearts), card(models.Ace, models.Clubs)}},
		2: {{card(models.King, models.Spades)}},
	}
	deltas := ScoreRound(RoundHearts, folds, 1, 2)
	assert.Equal(t, 10, deltas[1])
	assert.Zero(t, deltas[2])
}

func TestScoreBarbuRound(t *testing.T) {
	withKing := map[int][]Fold{
		2: {{card(models.King, models.Spades), card(models.Two, models.Clubs)}},
	}
	deltas := ScoreRound(RoundBarbu, withKing, 2, 2)
	assert.Equal(t, 50, deltas[2])

	// No fold ever contains the king of spades: everyone stays flat.
	withoutKing := map[int][]Fold{
		1: {{card(models.King, models.Hearts)}},
		2: {{card(models.Queen, models.Spades)}},
	}
	deltas = ScoreRound(RoundBarbu, withoutKing, 1, 2)
	assert.Zero(t, deltas[1])
	assert.Zero(t, deltas[2])
}

func TestScoreFirstAndLastSamePlayer(t *testing.T) {
	// The first and last awards are independent: a player claiming both
	// the opening and the hand-emptying fold is paid twice.
	folds := map[int][]Fold{
		1: {{card(models.Two, models.Clubs)}, {card(models.Three, models.Clubs)}},
		2: {{card(models.Four, models.Clubs)}},
	}
	deltas := ScoreRound(RoundFirstAndLast, folds, 1, 1)
	assert.Equal(t, 40, deltas[1])
	assert.Zero(t, deltas[2])

	deltas = ScoreRound(RoundFirstAndLast, folds, 1, 2)
	assert.Equal(t, 20, deltas[1])
	assert.Equal(t, 20, deltas[2])
}

func TestScoreCompositeRound(t *testing.T) {
	// The composite round applies Folds, First-and-Last and the three
	// card-value tables independently and sums the results.
	folds := map[int][]Fold{
		1: {{
			card(models.Queen, models.Hearts), // 20 (queens) + 5 (hearts)
			card(models.King, models.Spades),  // 50 (barbu)
		}},
		2: {{
			card(models.Seven, models.Hearts), // 5 (hearts)
			card(models.Two, models.Clubs),
		}},
	}
	deltas := ScoreRound(RoundEverything, folds, 1, 2)

	// Player 1: 5 fold + 20 first + 20 queen + 5 heart + 50 barbu.
	assert.Equal(t, 100, deltas[1])
	// Player 2: 5 fold + 20 last + 5 heart.
	assert.Equal(t, 30, deltas[2])
}

func TestScoreIgnoresRanksOfHearts(t *testing.T) {
	// Every heart is worth the same 5 regardless of rank.
	folds := map[int][]Fold{1: {}}
	for _, rank := range models.Ranks {
		folds[1] = append(folds[1], Fold{card(rank, models.Hearts)})
	}
	deltas := ScoreRound(RoundHearts, folds, 1, 1)
	assert.Equal(t, 5*len(models.Ranks), deltas[1])
}
