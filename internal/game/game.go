// internal/game/game.go
package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nroussel/barbu/internal/models"
)

// OnGameEndFunc is invoked once when the last round has been scored,
// with the final cumulative scores.
type OnGameEndFunc func(scores map[int]int)

// BarbuGame holds the entire state for a single game instance in
// memory: the player registry, the turn order, the active round, the
// cumulative scores and the shrinking round-type menu. One event is
// processed to completion at a time; the single Mu protects the whole
// aggregate because its invariants span hands, center pile and scores.
type BarbuGame struct {
	ID uuid.UUID

	Players []*models.Player // in join order; ids assigned at Start
	Round   *Round
	Scores  map[int]int

	RoundsPlayed []RoundType
	IsLastRound  bool

	Started  bool
	GameOver bool

	Mu sync.Mutex

	// BroadcastFn is used to send events to all players. If nil, no
	// broadcast is done.
	BroadcastFn func(ev GameEvent)

	// BroadcastToPlayerFn sends an event to a single specific player.
	BroadcastToPlayerFn func(playerID int, ev GameEvent)

	// OnGameEnd is invoked at game end to surface final results.
	OnGameEnd OnGameEndFunc

	connections  map[string]int // connection key -> player id (0 before Start)
	joinOrder    []string       // connection keys in join order
	turnOrder    []int          // player ids in join order, fixed at Start
	playersByID  map[int]*models.Player
	nextPlayerID int
	availableSet map[RoundType]bool
	rng          *rand.Rand
}

// NewBarbuGame builds an empty pre-game instance with a time-seeded
// dealing source.
func NewBarbuGame() *BarbuGame {
	return NewBarbuGameFromSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewBarbuGameFromSource builds a game that deals from the given
// source, for deterministic tests and the demo driver.
func NewBarbuGameFromSource(r *rand.Rand) *BarbuGame {
	id, _ := uuid.NewRandom()
	g := &BarbuGame{
		ID:           id,
		Players:      []*models.Player{},
		Scores:       make(map[int]int),
		connections:  make(map[string]int),
		playersByID:  make(map[int]*models.Player),
		nextPlayerID: 1,
		rng:          r,
	}
	g.resetRoundTypes()
	return g
}

func (g *BarbuGame) resetRoundTypes() {
	g.availableSet = make(map[RoundType]bool, len(AllRoundTypes()))
	for _, rt := range AllRoundTypes() {
		g.availableSet[rt] = true
	}
}

// AddPlayer registers a connection-scoped identity ahead of game start.
// Re-adding an existing key is a no-op returning false.
func (g *BarbuGame) AddPlayer(connKey string) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if _, exists := g.connections[connKey]; exists {
		return false
	}
	if g.Started {
		log.Printf("Game %s: connection %s cannot join, game already started.", g.ID, connKey)
		return false
	}
	g.connections[connKey] = 0
	g.joinOrder = append(g.joinOrder, connKey)
	return true
}

// PlayerID returns the stable id assigned to a connection at Start.
func (g *BarbuGame) PlayerID(connKey string) (int, bool) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	id, ok := g.connections[connKey]
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// Start assigns sequential player ids in join order, deals the first
// hand and sets the initial turn. Fails with ErrNoPlayersConnected if
// nobody registered and with ErrInvalidState if already started.
func (g *BarbuGame) Start() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started {
		return ErrInvalidState
	}
	if len(g.joinOrder) == 0 {
		return ErrNoPlayersConnected
	}

	g.assignPlayerIDs()
	g.dealCards()

	g.Round = newRound(g.turnOrder[0])
	g.Started = true
	g.GameOver = false
	log.Printf("Game %s: started with %d players. Player %d leads.", g.ID, len(g.Players), g.Round.CurrentTurn)

	for _, p := range g.Players {
		g.fireEventToPlayer(p.ID, GameEvent{
			Type:    EventPlayerIDAssigned,
			Payload: map[string]interface{}{"player_id": p.ID},
		})
	}
	g.fireEvent(GameEvent{
		Type: EventGameStarted,
		Payload: map[string]interface{}{
			"hands":        handSnapshot(g.Players),
			"players":      append([]int{}, g.turnOrder...),
			"center_cards": []models.Card{},
			"current_turn": g.Round.CurrentTurn,
		},
	})
	return nil
}

// assignPlayerIDs converts registered connections into stable
// sequential ids. Runs exactly once per game start; ids are immutable
// afterwards. Assumes lock is held.
func (g *BarbuGame) assignPlayerIDs() {
	for _, key := range g.joinOrder {
		if g.connections[key] != 0 {
			continue
		}
		id := g.nextPlayerID
		g.nextPlayerID++
		g.connections[key] = id
		p := models.NewPlayer(id)
		g.Players = append(g.Players, p)
		g.playersByID[id] = p
		g.turnOrder = append(g.turnOrder, id)
		g.Scores[id] = 0
	}
	log.Printf("Game %s: player ids assigned: %v", g.ID, g.turnOrder)
}

// dealCards builds a fresh shuffled deck and distributes it round-robin
// across all players until empty. Assumes lock is held.
func (g *BarbuGame) dealCards() {
	deck := NewDeckFromSource(g.rng)
	hands := deck.Deal(g.turnOrder)
	for _, p := range g.Players {
		p.Hand = hands[p.ID]
	}
	log.Printf("Game %s: dealt %d cards to %d players.", g.ID, DeckSize, len(g.Players))
}

// RoundTypeCatalog returns the full fixed menu of six round types,
// unfiltered by in-game availability.
func (g *BarbuGame) RoundTypeCatalog() []RoundType {
	return AllRoundTypes()
}

// AvailableRoundTypes returns the not-yet-played round types in catalog
// order.
func (g *BarbuGame) AvailableRoundTypes() []RoundType {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.availableRoundTypesLocked()
}

func (g *BarbuGame) availableRoundTypesLocked() []RoundType {
	out := []RoundType{}
	for _, rt := range AllRoundTypes() {
		if g.availableSet[rt] {
			out = append(out, rt)
		}
	}
	return out
}

// SetRoundType selects the scoring rule for the current round and
// removes it from the menu. The selecting player takes the lead, as in
// the table game where the chooser opens the round. Once the menu
// empties the current round is flagged as the game's last. Fails with
// ErrInvalidState if the type was already used or a round is active.
func (g *BarbuGame) SetRoundType(playerID int, rt RoundType) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver {
		return ErrInvalidState
	}
	if !g.availableSet[rt] {
		return ErrInvalidState
	}
	if _, ok := g.playersByID[playerID]; !ok {
		return ErrInvalidState
	}
	if err := g.Round.setType(rt); err != nil {
		return err
	}
	g.Round.CurrentTurn = playerID
	delete(g.availableSet, rt)
	if len(g.availableSet) == 0 {
		g.IsLastRound = true
		log.Printf("Game %s: all round types used, this is the last round.", g.ID)
	}
	log.Printf("Game %s: round type set to %q by player %d.", g.ID, rt, playerID)

	g.fireEvent(GameEvent{
		Type:    EventRoundTypeSelected,
		Payload: map[string]interface{}{"round_type": string(rt)},
	})
	g.fireEvent(GameEvent{
		Type:    EventRoundTypesUpdated,
		Payload: map[string]interface{}{"round_types": roundTypeNames(g.availableRoundTypesLocked())},
	})
	return nil
}

// PlayCard moves a card from the player's hand to the center pile and
// advances the turn. Returns true when every player has contributed to
// the current trick, signalling that a claim is now expected. All
// validation happens before any mutation, so a failed play leaves the
// game untouched and emits nothing.
func (g *BarbuGame) PlayCard(playerID int, card models.Card) (bool, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver || g.Round == nil {
		return false, ErrInvalidState
	}
	player, ok := g.playersByID[playerID]
	if !ok {
		return false, ErrNotPlayersTurn
	}
	if g.Round.Phase == PhaseAwaitingPlays && playerID != g.Round.CurrentTurn {
		return false, ErrNotPlayersTurn
	}
	if !player.HasCard(card) {
		return false, ErrCardNotInHand
	}

	allPlayed, err := g.Round.playToCenter(playerID, card, len(g.Players))
	if err != nil {
		return false, err
	}
	player.RemoveCard(card)
	g.Round.advanceTurn(g.turnOrder, g.playersByID)
	log.Printf("Game %s: player %d played %s.", g.ID, playerID, card)

	g.fireEvent(GameEvent{
		Type:    EventCardPlayed,
		Payload: map[string]interface{}{"player_id": playerID, "card": card},
	})
	g.fireEvent(GameEvent{
		Type:    EventHandsUpdated,
		Payload: map[string]interface{}{"hands": handSnapshot(g.Players)},
	})
	g.fireCenterUpdated()
	g.fireEvent(GameEvent{
		Type:    EventTurnUpdated,
		Payload: map[string]interface{}{"current_turn": g.Round.CurrentTurn},
	})
	if allPlayed {
		g.fireEvent(GameEvent{Type: EventAllPlayedAwaitClaim})
	}
	return allPlayed, nil
}

// ClaimCards hands the current center pile to playerID as a new fold.
// The claimer leads the next trick. If the claim emptied every hand the
// round is scored and the game either deals the next round or ends.
func (g *BarbuGame) ClaimCards(playerID int) (Fold, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver || g.Round == nil {
		return nil, ErrInvalidState
	}
	if _, ok := g.playersByID[playerID]; !ok {
		return nil, ErrInvalidState
	}

	handsEmpty := g.allHandsEmpty()
	fold, err := g.Round.claim(playerID, handsEmpty)
	if err != nil {
		return nil, err
	}
	log.Printf("Game %s: player %d claimed %d card(s).", g.ID, playerID, len(fold))

	// The claimer leads the next trick, unless their hand ran dry on a
	// short trick; then the lead passes to the next player with cards.
	if g.Round.Phase == PhaseAwaitingPlays && len(g.playersByID[playerID].Hand) == 0 {
		g.Round.advanceTurn(g.turnOrder, g.playersByID)
	}

	g.fireEvent(GameEvent{
		Type:    EventCardsClaimed,
		Payload: map[string]interface{}{"player_id": playerID, "claimed_cards": []models.Card(fold)},
	})
	g.fireCenterUpdated()
	g.fireEvent(GameEvent{
		Type:    EventTurnUpdated,
		Payload: map[string]interface{}{"current_turn": g.Round.CurrentTurn},
	})

	if g.Round.Phase == PhaseRoundComplete {
		g.endRound()
	}
	return fold, nil
}

// allHandsEmpty reports whether every player has run out of cards.
// Assumes lock is held.
func (g *BarbuGame) allHandsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// endRound scores the finished round, applies the deltas onto the
// cumulative scores and either deals the next round or ends the game.
// Assumes lock is held.
func (g *BarbuGame) endRound() {
	deltas := ScoreRound(g.Round.Type, g.Round.Folds, g.Round.FirstFoldOwner, g.Round.LastFoldOwner)
	for id, d := range deltas {
		g.Scores[id] += d
	}
	g.RoundsPlayed = append(g.RoundsPlayed, g.Round.Type)
	log.Printf("Game %s: round %q over. Deltas: %v, totals: %v", g.ID, g.Round.Type, deltas, g.Scores)

	g.fireEvent(GameEvent{
		Type:    EventRoundOver,
		Payload: map[string]interface{}{"scores": scoreSnapshot(g.Scores)},
	})

	if g.IsLastRound {
		g.endGame()
		return
	}

	lead := g.Round.CurrentTurn
	g.dealCards()
	g.Round = newRound(lead)
	g.fireEvent(GameEvent{
		Type: EventNewRound,
		Payload: map[string]interface{}{
			"hands":        handSnapshot(g.Players),
			"center_cards": []models.Card{},
			"current_turn": g.Round.CurrentTurn,
		},
	})
}

// endGame marks the game over and surfaces the final scores. The
// instance stays resident until an explicit Reset. Assumes lock is
// held.
func (g *BarbuGame) endGame() {
	if g.GameOver {
		return
	}
	g.GameOver = true
	g.Started = false
	log.Printf("Game %s: game over. Final scores: %v", g.ID, g.Scores)

	g.fireEvent(GameEvent{
		Type:    EventGameOver,
		Payload: map[string]interface{}{"scores": scoreSnapshot(g.Scores)},
	})
	if g.OnGameEnd != nil {
		g.OnGameEnd(scoreSnapshot(g.Scores))
	}
}

// Reset discards all state (players, hands, folds, scores, round
// history) and returns the instance to its pre-game state.
func (g *BarbuGame) Reset() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	g.Players = []*models.Player{}
	g.Round = nil
	g.Scores = make(map[int]int)
	g.RoundsPlayed = nil
	g.IsLastRound = false
	g.Started = false
	g.GameOver = false
	g.connections = make(map[string]int)
	g.joinOrder = nil
	g.turnOrder = nil
	g.playersByID = make(map[int]*models.Player)
	g.nextPlayerID = 1
	g.resetRoundTypes()
	log.Printf("Game %s: reset. Ready for a new game.", g.ID)

	g.fireEvent(GameEvent{Type: EventGameReset})
}

// HandlePlayerAction routes an inbound action envelope to the matching
// operation. Malformed or out-of-turn actions are logged and dropped
// with no state change and no outbound event; the caller is expected to
// simply ignore them.
func (g *BarbuGame) HandlePlayerAction(playerID int, action models.GameAction) {
	switch action.ActionType {
	case "action_set_round_type":
		name, _ := action.Payload["round_type"].(string)
		rt, err := ParseRoundType(name)
		if err != nil {
			log.Printf("Game %s: player %d sent invalid round type %q. Ignoring.", g.ID, playerID, name)
			return
		}
		if err := g.SetRoundType(playerID, rt); err != nil {
			log.Printf("Game %s: set_round_type %q by player %d rejected: %v", g.ID, name, playerID, err)
		}
	case "action_play_card":
		card, err := models.ParseCard(action.Payload)
		if err != nil {
			log.Printf("Game %s: player %d sent invalid card payload: %v", g.ID, playerID, err)
			return
		}
		if _, err := g.PlayCard(playerID, card); err != nil {
			log.Printf("Game %s: play_card %s by player %d rejected: %v", g.ID, card, playerID, err)
		}
	case "action_claim":
		if _, err := g.ClaimCards(playerID); err != nil {
			log.Printf("Game %s: claim by player %d rejected: %v", g.ID, playerID, err)
		}
	default:
		log.Printf("Game %s: unknown action type %q from player %d. Ignoring.", g.ID, action.ActionType, playerID)
	}
}

// fireEvent broadcasts an event to all connected players.
// Assumes lock is held.
func (g *BarbuGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

// fireEventToPlayer sends an event only to a specific player.
// Assumes lock is held.
func (g *BarbuGame) fireEventToPlayer(playerID int, ev GameEvent) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}

func (g *BarbuGame) fireCenterUpdated() {
	center := make([]models.Card, len(g.Round.CenterCards))
	copy(center, g.Round.CenterCards)
	g.fireEvent(GameEvent{
		Type:    EventCenterUpdated,
		Payload: map[string]interface{}{"center_cards": center},
	})
}

// CurrentTurn returns the id of the player expected to act next, or 0
// when no round is in progress.
func (g *BarbuGame) CurrentTurn() int {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.Round == nil {
		return 0
	}
	return g.Round.CurrentTurn
}
