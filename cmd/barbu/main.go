// cmd/barbu/main.go
//
// Demo driver: plays a complete game against itself with a trivial
// policy (always play the first card in hand, the last contributor
// claims the trick) and renders the table to stdout. Every engine
// operation is exercised end to end without any transport attached.
package main

import (
	"fmt"
	"math/rand"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/nroussel/barbu/internal/config"
	"github.com/nroussel/barbu/internal/game"
	"github.com/nroussel/barbu/internal/models"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(config.LogLevel())

	seed := config.DemoSeed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	numPlayers := config.DemoPlayers()
	logger.WithFields(logrus.Fields{
		"env":     config.Env(),
		"seed":    seed,
		"players": numPlayers,
	}).Info("starting demo game")

	g := game.NewBarbuGameFromSource(rand.New(rand.NewSource(seed)))
	g.BroadcastFn = eventDispatcher(logger)
	g.BroadcastToPlayerFn = func(playerID int, ev game.GameEvent) {
		logger.WithFields(logrus.Fields{"player": playerID, "event": ev.Type}).Debug("private event")
	}
	g.OnGameEnd = func(scores map[int]int) {
		renderScores("Final scores", scores)
	}

	store := game.NewGameStore()
	store.AddGame(g)
	defer store.DeleteGame(g.ID)

	for i := 1; i <= numPlayers; i++ {
		g.AddPlayer(fmt.Sprintf("conn-%d", i))
	}
	if err := g.Start(); err != nil {
		logger.WithError(err).Fatal("could not start game")
	}

	// Hard cap on iterations so a policy bug cannot spin forever.
	for steps := 0; !g.GameOver && steps < 10000; steps++ {
		step(g, logger)
	}

	if !g.GameOver {
		logger.Error("demo stopped before the game finished")
	}
}

// step advances the scripted game by one action.
func step(g *game.BarbuGame, logger *logrus.Logger) {
	if phase(g) == game.PhaseAwaitingRoundType {
		menu := g.AvailableRoundTypes()
		chooser := g.CurrentTurn()
		rt := menu[0]
		renderRoundType(rt, chooser)
		g.HandlePlayerAction(chooser, models.GameAction{
			ActionType: "action_set_round_type",
			Payload:    map[string]interface{}{"round_type": string(rt)},
		})
		return
	}

	cur := g.CurrentTurn()
	card, ok := firstCard(g, cur)
	if !ok {
		// The player on turn ran out of cards on a short trick: every
		// hand that could contribute has, so the pile is claimed as is.
		if phase(g) == game.PhaseAwaitingPlays && centerSize(g) > 0 {
			if _, err := g.ClaimCards(cur); err != nil {
				logger.WithError(err).Debug("short-trick claim skipped")
			}
		}
		return
	}
	allPlayed, err := g.PlayCard(cur, card)
	if err != nil || allPlayed {
		// Either the trick is complete or the turn wrapped on a short
		// trick; the player on turn takes the pile.
		if _, cerr := g.ClaimCards(g.CurrentTurn()); cerr != nil {
			logger.WithError(cerr).Debug("claim skipped")
		}
	}
}

func phase(g *game.BarbuGame) game.RoundPhase {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.Round == nil {
		return ""
	}
	return g.Round.Phase
}

func centerSize(g *game.BarbuGame) int {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.Round == nil {
		return 0
	}
	return len(g.Round.CenterCards)
}

func firstCard(g *game.BarbuGame, playerID int) (models.Card, bool) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	for _, p := range g.Players {
		if p.ID == playerID && len(p.Hand) > 0 {
			return p.Hand[0], true
		}
	}
	return models.Card{}, false
}

// eventDispatcher renders the events a transport layer would broadcast.
func eventDispatcher(logger *logrus.Logger) func(ev game.GameEvent) {
	return func(ev game.GameEvent) {
		switch ev.Type {
		case game.EventCardPlayed:
			renderPlay(ev.Payload)
		case game.EventCardsClaimed:
			renderClaim(ev.Payload)
		case game.EventRoundOver:
			if scores, ok := ev.Payload["scores"].(map[int]int); ok {
				renderScores("Round over", scores)
			}
		default:
			logger.WithField("event", ev.Type).Debug("broadcast")
		}
	}
}
