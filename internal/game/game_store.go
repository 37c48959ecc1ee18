package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameStore is the registry of live game instances, keyed by game id.
// Each game carries its own lock; the store's mutex only guards the
// map itself.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*BarbuGame
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*BarbuGame),
	}
}

func (s *GameStore) AddGame(game *BarbuGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
}

func (s *GameStore) GetGame(id uuid.UUID) (*BarbuGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// ForEach calls fn for every registered game. fn must not call back
// into the store.
func (s *GameStore) ForEach(fn func(*BarbuGame)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		fn(g)
	}
}
