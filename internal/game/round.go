package game

import (
	"github.com/nroussel/barbu/internal/models"
)

// Fold is an immutable snapshot of the center pile at the moment it
// was claimed. A player may own several folds per round.
type Fold []models.Card

// RoundPhase tracks where a round is in its lifecycle. The play/claim
// loop is modeled explicitly rather than inferred from pile emptiness.
type RoundPhase string

const (
	PhaseAwaitingRoundType RoundPhase = "awaiting_round_type" // Round dealt, type not chosen yet
	PhaseAwaitingPlays     RoundPhase = "awaiting_plays"      // Trick in progress
	PhaseAwaitingClaim     RoundPhase = "awaiting_claim"      // Every player has played; only a claim is valid
	PhaseRoundComplete     RoundPhase = "round_complete"      // Folds scored, awaiting next deal or game over
)

// Round owns one round's mutable progress: the center pile, the
// per-trick played set, the folds claimed so far and the ownership of
// the first and last fold. The owning BarbuGame validates hand
// membership and drives deals; the round validates turn and phase.
type Round struct {
	Type            RoundType
	Phase           RoundPhase
	CenterCards     []models.Card
	Folds           map[int][]Fold
	CurrentTurn     int
	FirstFoldOwner  int
	LastFoldOwner   int
	playedThisTrick map[int]bool
	anyFoldClaimed  bool
}

// newRound creates a round awaiting a type selection, led by the given
// player. The leader carries over from the previous round's last
// claimer, or is the first seat on the opening round.
func newRound(currentTurn int) *Round {
	return &Round{
		Phase:           PhaseAwaitingRoundType,
		CenterCards:     []models.Card{},
		Folds:           make(map[int][]Fold),
		CurrentTurn:     currentTurn,
		playedThisTrick: make(map[int]bool),
	}
}

// setType locks in the round's scoring rule. Fails with ErrInvalidState
// once play has begun; availability of the type within the game is the
// aggregate's concern.
func (r *Round) setType(rt RoundType) error {
	if r.Phase != PhaseAwaitingRoundType {
		return ErrInvalidState
	}
	r.Type = rt
	r.Phase = PhaseAwaitingPlays
	return nil
}

// playToCenter moves a card (already removed from the player's hand by
// the caller) onto the center pile and records the contribution.
// Returns true when every player has now contributed to this trick.
func (r *Round) playToCenter(playerID int, card models.Card, numPlayers int) (bool, error) {
	if r.Phase != PhaseAwaitingPlays {
		return false, ErrInvalidState
	}
	if playerID != r.CurrentTurn {
		return false, ErrNotPlayersTurn
	}
	if r.playedThisTrick[playerID] {
		// Turn order wrapped back around on a short trick; the player
		// already contributed and must wait for a claim.
		return false, ErrInvalidState
	}

	r.CenterCards = append(r.CenterCards, card)
	r.playedThisTrick[playerID] = true

	allPlayed := len(r.playedThisTrick) == numPlayers
	if allPlayed {
		r.Phase = PhaseAwaitingClaim
	}
	return allPlayed, nil
}

// claim snapshots the center pile into a new fold owned by playerID,
// resolves first/last fold ownership, clears per-trick state and hands
// the lead to the claimer. handsEmpty reports whether every hand is now
// empty, which makes this the round's last fold and completes the
// round. Fails with ErrEmptyCenter when there is nothing to claim.
func (r *Round) claim(playerID int, handsEmpty bool) (Fold, error) {
	if r.Phase != PhaseAwaitingPlays && r.Phase != PhaseAwaitingClaim {
		return nil, ErrInvalidState
	}
	if len(r.CenterCards) == 0 {
		return nil, ErrEmptyCenter
	}

	fold := make(Fold, len(r.CenterCards))
	copy(fold, r.CenterCards)

	if !r.anyFoldClaimed {
		r.FirstFoldOwner = playerID
		r.anyFoldClaimed = true
	}
	if handsEmpty {
		r.LastFoldOwner = playerID
	}

	r.Folds[playerID] = append(r.Folds[playerID], fold)
	r.CenterCards = []models.Card{}
	r.playedThisTrick = make(map[int]bool)
	r.CurrentTurn = playerID

	if handsEmpty {
		r.Phase = PhaseRoundComplete
	} else {
		r.Phase = PhaseAwaitingPlays
	}
	return fold, nil
}

// advanceTurn rotates the turn pointer to the next id in the fixed
// order, skipping players whose hands are already empty so the pointer
// always names someone able to play.
func (r *Round) advanceTurn(order []int, players map[int]*models.Player) {
	cur := -1
	for i, id := range order {
		if id == r.CurrentTurn {
			cur = i
			break
		}
	}
	if cur == -1 {
		return
	}
	for step := 1; step <= len(order); step++ {
		next := order[(cur+step)%len(order)]
		if p, ok := players[next]; ok && len(p.Hand) > 0 && !r.playedThisTrick[next] {
			r.CurrentTurn = next
			return
		}
	}
	// Nobody left holding a card this trick; the pointer stays on the
	// last player until the claim resets it.
}
