package models

// Player is one seat at the table. IDs are small positive integers
// assigned in join order when the game starts and stable for the
// lifetime of the game.
type Player struct {
	ID   int    `json:"id"`
	Hand []Card `json:"hand"`
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(id int) *Player {
	return &Player{
		ID:   id,
		Hand: []Card{},
	}
}

// AddCard appends a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes the first matching card from the player's hand.
// Returns false if the card is not held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the player currently holds the card.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}
