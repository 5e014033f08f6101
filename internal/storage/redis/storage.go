package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tmazur/sketchbluff/internal/model"
	"github.com/tmazur/sketchbluff/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// tokenRef is the stored value of a token index entry
type tokenRef struct {
	RoomID   model.RoomID   `json:"room_id"`
	PlayerID model.PlayerID `json:"player_id"`
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	// Pipeline the room blob and its token index entries so a partial
	// save never leaves tokens pointing at a missing room
	pipe := s.client.Pipeline()
	pipe.Set(ctx, roomKey(room.ID), data, s.cfg.RoomTTL)
	for _, p := range room.Players {
		ref, err := json.Marshal(tokenRef{RoomID: room.ID, PlayerID: p.ID})
		if err != nil {
			return err
		}
		pipe.Set(ctx, tokenIndexKey(p.Token), ref, s.cfg.RoomTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, roomKey(id))
	for _, p := range room.Players {
		pipe.Del(ctx, tokenIndexKey(p.Token))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	n, err := s.client.Exists(ctx, roomKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Storage) GetRoomByPlayerToken(ctx context.Context, token string) (*model.Room, model.PlayerID, error) {
	data, err := s.client.Get(ctx, tokenIndexKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, model.ErrPlayerNotFound
		}
		return nil, 0, err
	}

	var ref tokenRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, 0, err
	}

	room, err := s.GetRoom(ctx, ref.RoomID)
	if err != nil {
		return nil, 0, err
	}
	return room, ref.PlayerID, nil
}

func (s *Storage) SavePhrasePool(ctx context.Context, phrases []string) error {
	data, err := json.Marshal(phrases)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, phrasePoolKey(), data, 0).Err()
}

func (s *Storage) GetPhrasePool(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, phrasePoolKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var phrases []string
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, err
	}
	return phrases, nil
}
