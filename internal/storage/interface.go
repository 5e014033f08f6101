package storage

import (
	"context"

	"github.com/tmazur/sketchbluff/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
	RoomExists(ctx context.Context, id model.RoomID) (bool, error)

	// Token index: reconnection tokens resolve to a room and player
	// without iterating rooms or live connections
	GetRoomByPlayerToken(ctx context.Context, token string) (*model.Room, model.PlayerID, error)

	// Phrase pool operations
	SavePhrasePool(ctx context.Context, phrases []string) error
	GetPhrasePool(ctx context.Context) ([]string, error)
}
