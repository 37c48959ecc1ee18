package game

import (
	"github.com/nroussel/barbu/internal/models"
)

// GameEventType is an enum-like type for broadcasting game outcomes.
type GameEventType string

const (
	EventPlayerIDAssigned    GameEventType = "player_id"             // Private id notification on start
	EventGameStarted         GameEventType = "game_started"          // Hands dealt, initial turn set
	EventCardPlayed          GameEventType = "card_played"           // Public play notification
	EventHandsUpdated        GameEventType = "hands_updated"         // Hand sizes/snapshots after a play or deal
	EventCenterUpdated       GameEventType = "center_updated"        // Center pile contents changed
	EventTurnUpdated         GameEventType = "turn_updated"          // Turn pointer advanced
	EventAllPlayedAwaitClaim GameEventType = "all_played_await_claim" // A claim action is now valid
	EventCardsClaimed        GameEventType = "cards_claimed"         // A fold was taken
	EventRoundTypeSelected   GameEventType = "round_type_selected"   // Round type locked in
	EventRoundTypesUpdated   GameEventType = "available_round_types" // Remaining menu after a selection
	EventRoundOver           GameEventType = "round_over"            // Round scored
	EventNewRound            GameEventType = "new_round"             // Fresh deal, round type unset
	EventGameOver            GameEventType = "game_over"             // Last round complete
	EventGameReset           GameEventType = "game_reset"            // Full reset to pre-game state
)

// GameEvent is the transport-agnostic outbound envelope. The engine
// never talks to a socket directly; a transport layer registers
// BroadcastFn/BroadcastToPlayerFn on the game and forwards these.
type GameEvent struct {
	Type    GameEventType          `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// handSnapshot copies every player's current hand, keyed by player id.
// The copy keeps broadcast payloads detached from engine-owned slices.
func handSnapshot(players []*models.Player) map[int][]models.Card {
	hands := make(map[int][]models.Card, len(players))
	for _, p := range players {
		hand := make([]models.Card, len(p.Hand))
		copy(hand, p.Hand)
		hands[p.ID] = hand
	}
	return hands
}

// scoreSnapshot copies the cumulative score map for a broadcast payload.
func scoreSnapshot(scores map[int]int) map[int]int {
	out := make(map[int]int, len(scores))
	for id, s := range scores {
		out[id] = s
	}
	return out
}

// roundTypeNames converts a menu of round types to their wire names.
func roundTypeNames(types []RoundType) []string {
	names := make([]string, len(types))
	for i, rt := range types {
		names[i] = string(rt)
	}
	return names
}
