// cmd/barbu/render.go
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/nroussel/barbu/internal/game"
	"github.com/nroussel/barbu/internal/models"
)

var (
	redSuit   = color.New(color.FgRed)
	blackSuit = color.New(color.FgWhite, color.Bold)
	heading   = color.New(color.FgCyan, color.Bold)
)

func cardString(c models.Card) string {
	if c.Suit == models.Hearts || c.Suit == models.Diamonds {
		return redSuit.Sprint(c.String())
	}
	return blackSuit.Sprint(c.String())
}

func renderRoundType(rt game.RoundType, chooser int) {
	heading.Printf("\n=== Round: %s (chosen by player %d) ===\n", rt, chooser)
}

func renderPlay(payload map[string]interface{}) {
	card, ok := payload["card"].(models.Card)
	if !ok {
		return
	}
	fmt.Printf("player %v plays %s\n", payload["player_id"], cardString(card))
}

func renderClaim(payload map[string]interface{}) {
	cards, ok := payload["claimed_cards"].([]models.Card)
	if !ok {
		return
	}
	fmt.Printf("player %v claims %d card(s)\n", payload["player_id"], len(cards))
}

func renderScores(title string, scores map[int]int) {
	heading.Printf("\n%s\n", title)
	ids := make([]int, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fmt.Printf("%-10s%-10s\n", "Player", "Score")
	for _, id := range ids {
		fmt.Printf("%-10d%-10d\n", id, scores[id])
	}
}
