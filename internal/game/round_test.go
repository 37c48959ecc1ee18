package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroussel/barbu/internal/models"
)

func TestRoundPhaseMachine(t *testing.T) {
	r := newRound(1)
	assert.Equal(t, PhaseAwaitingRoundType, r.Phase)

	// Playing before a type is chosen is invalid.
	_, err := r.playToCenter(1, card(models.Two, models.Clubs), 2)
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, r.setType(RoundHearts))
	assert.Equal(t, PhaseAwaitingPlays, r.Phase)

	// Re-selecting once play has begun is invalid.
	assert.ErrorIs(t, r.setType(RoundBarbu), ErrInvalidState)

	allPlayed, err := r.playToCenter(1, card(models.Two, models.Clubs), 2)
	require.NoError(t, err)
	assert.False(t, allPlayed)
	assert.Equal(t, 1, r.CurrentTurn, "turn unchanged until advanceTurn")

	r.CurrentTurn = 2
	allPlayed, err = r.playToCenter(2, card(models.Three, models.Clubs), 2)
	require.NoError(t, err)
	assert.True(t, allPlayed)
	assert.Equal(t, PhaseAwaitingClaim, r.Phase)

	// No further plays until the pile is claimed.
	_, err = r.playToCenter(2, card(models.Four, models.Clubs), 2)
	assert.ErrorIs(t, err, ErrInvalidState)

	fold, err := r.claim(2, false)
	require.NoError(t, err)
	assert.Len(t, fold, 2)
	assert.Equal(t, PhaseAwaitingPlays, r.Phase)
	assert.Equal(t, 2, r.CurrentTurn, "claimer leads")
	assert.Empty(t, r.CenterCards)
}

func TestRoundFirstAndLastFoldOwners(t *testing.T) {
	r := newRound(1)
	require.NoError(t, r.setType(RoundFirstAndLast))

	r.CenterCards = []models.Card{card(models.Two, models.Clubs)}
	_, err := r.claim(3, false)
	require.NoError(t, err)
	assert.Equal(t, 3, r.FirstFoldOwner, "first claim of the round")
	assert.Zero(t, r.LastFoldOwner)

	r.CenterCards = []models.Card{card(models.Three, models.Clubs)}
	_, err = r.claim(2, false)
	require.NoError(t, err)
	assert.Equal(t, 3, r.FirstFoldOwner, "first owner is sticky")

	// The claim that empties every hand marks the last fold.
	r.CenterCards = []models.Card{card(models.Four, models.Clubs)}
	_, err = r.claim(3, true)
	require.NoError(t, err)
	assert.Equal(t, 3, r.LastFoldOwner)
	assert.Equal(t, PhaseRoundComplete, r.Phase)
}

func TestRoundClaimEmptyCenter(t *testing.T) {
	r := newRound(1)
	require.NoError(t, r.setType(RoundFolds))
	_, err := r.claim(1, false)
	assert.ErrorIs(t, err, ErrEmptyCenter)
	assert.Empty(t, r.Folds)
}

func TestAdvanceTurnSkipsEmptyHands(t *testing.T) {
	r := newRound(1)
	require.NoError(t, r.setType(RoundFolds))

	players := map[int]*models.Player{
		1: {ID: 1, Hand: []models.Card{card(models.Two, models.Clubs)}},
		2: {ID: 2, Hand: []models.Card{}},
		3: {ID: 3, Hand: []models.Card{card(models.Three, models.Clubs)}},
	}
	r.advanceTurn([]int{1, 2, 3}, players)
	assert.Equal(t, 3, r.CurrentTurn, "player 2 has no cards and is skipped")
}
