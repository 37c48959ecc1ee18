package game

import (
	"math/rand"
	"time"

	"github.com/nroussel/barbu/internal/models"
)

// excludedCard is the one card missing from the play deck. A full pack
// minus the ten of diamonds leaves 51 cards, so hand sizes are uneven
// for most table sizes and one trick per round is short a card.
var excludedCard = models.Card{Rank: models.Ten, Suit: models.Diamonds}

// DeckSize is the number of cards in a freshly built deck.
const DeckSize = 51

// Deck is an ordered pile of cards. It only lives through a deal: a
// fresh deck is built and shuffled at the start of every round, drained
// into the players' hands, and discarded.
type Deck struct {
	Cards []models.Card
}

// NewDeck builds the 51-card play deck and shuffles it with a
// time-seeded source.
func NewDeck() *Deck {
	return NewDeckFromSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDeckFromSource builds and shuffles a deck using the given source,
// so deals can be made deterministic in tests and the demo driver.
func NewDeckFromSource(r *rand.Rand) *Deck {
	cards := make([]models.Card, 0, DeckSize)
	for _, rank := range models.Ranks {
		for _, suit := range models.Suits {
			card := models.Card{Rank: rank, Suit: suit}
			if card == excludedCard {
				continue
			}
			cards = append(cards, card)
		}
	}
	d := &Deck{Cards: cards}
	d.shuffle(r)
	return d
}

func (d *Deck) shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal distributes the whole deck round-robin over the given player ids,
// in order, until the deck is empty. 51 is not divisible by typical
// table sizes, so hands may differ in size by one card. The deck is
// consumed.
func (d *Deck) Deal(playerIDs []int) map[int][]models.Card {
	hands := make(map[int][]models.Card, len(playerIDs))
	for _, id := range playerIDs {
		hands[id] = []models.Card{}
	}
	for i, card := range d.Cards {
		id := playerIDs[i%len(playerIDs)]
		hands[id] = append(hands[id], card)
	}
	d.Cards = nil
	return hands
}
