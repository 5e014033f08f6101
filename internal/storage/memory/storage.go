package memory

import (
	"context"
	"sync"

	"github.com/tmazur/sketchbluff/internal/model"
	"github.com/tmazur/sketchbluff/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rooms      map[model.RoomID]*model.Room
	tokenIndex map[string]tokenRef
	phrasePool []string
}

type tokenRef struct {
	roomID   model.RoomID
	playerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms:      make(map[model.RoomID]*model.Room),
		tokenIndex: make(map[string]tokenRef),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	for _, p := range room.Players {
		s.tokenIndex[p.Token] = tokenRef{roomID: room.ID, playerID: p.ID}
	}
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if ok {
		for _, p := range room.Players {
			delete(s.tokenIndex, p.Token)
		}
	}
	delete(s.rooms, id)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[id]
	return ok, nil
}

func (s *Storage) GetRoomByPlayerToken(ctx context.Context, token string) (*model.Room, model.PlayerID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.tokenIndex[token]
	if !ok {
		return nil, 0, model.ErrPlayerNotFound
	}
	room, ok := s.rooms[ref.roomID]
	if !ok {
		return nil, 0, model.ErrRoomNotFound
	}
	return room, ref.playerID, nil
}

func (s *Storage) SavePhrasePool(ctx context.Context, phrases []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phrasePool = make([]string, len(phrases))
	copy(s.phrasePool, phrases)
	return nil
}

func (s *Storage) GetPhrasePool(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := make([]string, len(s.phrasePool))
	copy(pool, s.phrasePool)
	return pool, nil
}
