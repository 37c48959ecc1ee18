package models

import (
	"fmt"
)

// Suit is one of the four French suits.
type Suit string

const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Rank runs from two up through ace.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
	Ace   Rank = "ace"
)

// Suits lists every suit in a fixed order, used for deck construction.
var Suits = []Suit{Hearts, Clubs, Diamonds, Spades}

// Ranks lists every rank in a fixed order, used for deck construction.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card is an immutable (rank, suit) pair. Equality is by value, so cards
// can be used directly as map keys and compared with ==.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ParseCard extracts a Card from a decoded JSON payload of the form
// {"rank": "...", "suit": "..."}. Returns an error on missing or
// non-string fields; rank/suit values themselves are validated against
// the player's hand at play time.
func ParseCard(payload map[string]interface{}) (Card, error) {
	rank, ok := payload["rank"].(string)
	if !ok || rank == "" {
		return Card{}, fmt.Errorf("card payload missing rank")
	}
	suit, ok := payload["suit"].(string)
	if !ok || suit == "" {
		return Card{}, fmt.Errorf("card payload missing suit")
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}
