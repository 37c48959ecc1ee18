// internal/game/rules.go
package game

import (
	"fmt"

	"github.com/nroussel/barbu/internal/models"
)

// RoundType names one of the six scoring rules a round can be played
// under. Each type is selectable exactly once per game.
type RoundType string

const (
	RoundQueens       RoundType = "Queens"
	RoundFirstAndLast RoundType = "First and Last"
	RoundHearts       RoundType = "Hearts"
	RoundFolds        RoundType = "Folds"
	RoundBarbu        RoundType = "Barbu"
	RoundEverything   RoundType = "Everything Everywhere All At Once"
)

const (
	queenValue        = 20
	heartValue        = 5
	barbuValue        = 50
	foldAward         = 5
	firstAndLastAward = 20
)

// AllRoundTypes returns the full fixed menu in catalog order. This is
// the static list served to clients; availability within a game is
// tracked separately on the game aggregate.
func AllRoundTypes() []RoundType {
	return []RoundType{
		RoundQueens,
		RoundFirstAndLast,
		RoundHearts,
		RoundFolds,
		RoundBarbu,
		RoundEverything,
	}
}

// ParseRoundType validates a client-supplied round type name.
func ParseRoundType(s string) (RoundType, error) {
	for _, rt := range AllRoundTypes() {
		if string(rt) == s {
			return rt, nil
		}
	}
	return "", fmt.Errorf("unknown round type %q", s)
}

// cardValues returns the per-card point table for a value-scored round
// type, or nil for types scored on folds or fold ordering.
func cardValues(rt RoundType) map[models.Card]int {
	switch rt {
	case RoundQueens:
		return map[models.Card]int{
			{Rank: models.Queen, Suit: models.Hearts}:   queenValue,
			{Rank: models.Queen, Suit: models.Diamonds}: queenValue,
			{Rank: models.Queen, Suit: models.Clubs}:    queenValue,
			{Rank: models.Queen, Suit: models.Spades}:   queenValue,
		}
	case RoundHearts:
		values := make(map[models.Card]int, len(models.Ranks))
		for _, rank := range models.Ranks {
			values[models.Card{Rank: rank, Suit: models.Hearts}] = heartValue
		}
		return values
	case RoundBarbu:
		return map[models.Card]int{
			{Rank: models.King, Suit: models.Spades}: barbuValue,
		}
	default:
		return nil
	}
}

// ScoreRound computes the per-player score deltas for a finished round.
// It reads only the folds accumulated during the round plus the first
// and last fold owners; center pile and hand state never feed into
// scoring. The returned map has an entry for every player that owns at
// least one fold or an ordering award; callers apply it onto the
// cumulative score map.
//
// The composite type applies the Folds and First-and-Last awards plus
// the Queens, Hearts and Barbu value tables independently, summing the
// results.
func ScoreRound(rt RoundType, folds map[int][]Fold, firstFoldOwner, lastFoldOwner int) map[int]int {
	deltas := make(map[int]int)

	switch rt {
	case RoundQueens, RoundHearts, RoundBarbu:
		scoreCardValues(deltas, cardValues(rt), folds)
	case RoundFolds:
		scoreFolds(deltas, folds)
	case RoundFirstAndLast:
		scoreFirstAndLast(deltas, firstFoldOwner, lastFoldOwner)
	case RoundEverything:
		scoreFolds(deltas, folds)
		scoreFirstAndLast(deltas, firstFoldOwner, lastFoldOwner)
		for _, sub := range []RoundType{RoundQueens, RoundHearts, RoundBarbu} {
			scoreCardValues(deltas, cardValues(sub), folds)
		}
	}
	return deltas
}

func scoreCardValues(deltas map[int]int, values map[models.Card]int, folds map[int][]Fold) {
	for playerID, claims := range folds {
		for _, fold := range claims {
			for _, card := range fold {
				if v, ok := values[card]; ok {
					deltas[playerID] += v
				}
			}
		}
	}
}

func scoreFolds(deltas map[int]int, folds map[int][]Fold) {
	for playerID, claims := range folds {
		deltas[playerID] += foldAward * len(claims)
	}
}

// scoreFirstAndLast awards the first and last fold owners independently.
// A player that claimed both folds is paid twice.
func scoreFirstAndLast(deltas map[int]int, firstFoldOwner, lastFoldOwner int) {
	deltas[firstFoldOwner] += firstAndLastAward
	deltas[lastFoldOwner] += firstAndLastAward
}
