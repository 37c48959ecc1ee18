package game

import "errors"

// All engine failures are recoverable and local: the offending action
// is rejected with one of these sentinels, no state is mutated, and no
// event is broadcast. Callers are expected to drop the action rather
// than treat it as fatal.
var (
	// ErrInvalidState is returned for actions issued in the wrong phase,
	// including selecting a round type that has already been used.
	ErrInvalidState = errors.New("invalid game state for action")

	// ErrNotPlayersTurn is returned when a player plays out of turn.
	ErrNotPlayersTurn = errors.New("not player's turn")

	// ErrCardNotInHand is returned when a played card is not held.
	ErrCardNotInHand = errors.New("card not in player's hand")

	// ErrEmptyCenter is returned for a claim with nothing to claim.
	ErrEmptyCenter = errors.New("center pile is empty")

	// ErrNoPlayersConnected is returned when starting with zero players.
	ErrNoPlayersConnected = errors.New("no players connected")
)
