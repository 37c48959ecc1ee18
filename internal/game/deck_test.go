package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroussel/barbu/internal/models"
)

func TestNewDeckContents(t *testing.T) {
	d := NewDeckFromSource(rand.New(rand.NewSource(1)))
	require.Len(t, d.Cards, DeckSize)

	seen := make(map[models.Card]bool)
	for _, c := range d.Cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.False(t, seen[models.Card{Rank: models.Ten, Suit: models.Diamonds}],
		"ten of diamonds must be excluded")
}

func TestShuffleKeepsCardSet(t *testing.T) {
	a := NewDeckFromSource(rand.New(rand.NewSource(7)))
	b := NewDeckFromSource(rand.New(rand.NewSource(8)))

	setA := make(map[models.Card]bool, len(a.Cards))
	for _, c := range a.Cards {
		setA[c] = true
	}
	for _, c := range b.Cards {
		assert.True(t, setA[c], "card %s missing from other shuffle", c)
	}
	assert.Len(t, setA, DeckSize)
}

func TestDealRoundRobin(t *testing.T) {
	d := NewDeckFromSource(rand.New(rand.NewSource(3)))
	hands := d.Deal([]int{1, 2, 3, 4})

	total := 0
	min, max := DeckSize, 0
	for _, hand := range hands {
		total += len(hand)
		if len(hand) < min {
			min = len(hand)
		}
		if len(hand) > max {
			max = len(hand)
		}
	}
	assert.Equal(t, DeckSize, total, "every card must be dealt")
	assert.LessOrEqual(t, max-min, 1, "hand sizes differ by at most one")
	assert.Empty(t, d.Cards, "deck is consumed by dealing")
}
