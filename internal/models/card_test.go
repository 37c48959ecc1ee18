package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	c := Card{Rank: Queen, Suit: Hearts}
	assert.Equal(t, "queen of hearts", c.String())
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard(map[string]interface{}{"rank": "10", "suit": "spades"})
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ten, Suit: Spades}, c)

	_, err = ParseCard(map[string]interface{}{"suit": "spades"})
	assert.Error(t, err)
	_, err = ParseCard(map[string]interface{}{"rank": 7, "suit": "spades"})
	assert.Error(t, err)
}

func TestPlayerHandOps(t *testing.T) {
	p := NewPlayer(1)
	c1 := Card{Rank: Two, Suit: Clubs}
	c2 := Card{Rank: Ace, Suit: Hearts}
	p.AddCard(c1)
	p.AddCard(c2)

	assert.True(t, p.HasCard(c1))
	assert.True(t, p.RemoveCard(c1))
	assert.False(t, p.HasCard(c1))
	assert.False(t, p.RemoveCard(c1), "removing twice fails")
	assert.Equal(t, []Card{c2}, p.Hand)
}
