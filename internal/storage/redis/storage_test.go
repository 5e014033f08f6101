package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tmazur/sketchbluff/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RoomTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) sampleRoom() *model.Room {
	return &model.Room{
		ID:     "654321",
		HostID: 0,
		State:  model.RoomDrawing,
		Players: []model.Player{
			{ID: 0, Token: "tok-host", Username: "host", Status: model.StatusDrawing},
			{ID: 1, Token: "tok-alice", Username: "alice", Status: model.StatusDrawing},
		},
		OriginalPhrases: []model.Phrase{
			{ID: 0, AuthorID: 0, Text: "a cat in a hat"},
			{ID: 1, AuthorID: 1, Text: "a dog on a log"},
		},
		NextPhraseID: 2,
		Assignments: []model.DrawingAssignment{
			{PlayerID: 0, PhraseID: 1},
			{PlayerID: 1, PhraseID: 0},
		},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.sampleRoom()

	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(room.ID, retrieved.ID)
	s.Equal(model.RoomDrawing, retrieved.State)
	s.Len(retrieved.Players, 2)
	s.Len(retrieved.Assignments, 2)
	s.Equal(model.PhraseID(2), retrieved.NextPhraseID)
}

func (s *StorageSuite) TestRoomSurvivesWithDrawingShapes() {
	room := s.sampleRoom()
	room.Drawings = []model.PlayerDrawing{{
		PlayerID: 0,
		Drawing: model.Drawing{Shapes: []model.Shape{
			{Type: model.ShapeDot, Color: "red", Point: model.Point{X: 1, Y: 2}},
			{Type: model.ShapeLine, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 3, Y: 4}},
		}},
	}}

	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Require().Len(retrieved.Drawings, 1)
	s.Equal(room.Drawings[0].Drawing, retrieved.Drawings[0].Drawing)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "000000")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "654321")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	exists, err = s.storage.RoomExists(s.ctx, "654321")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoomClearsTokenIndex() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "654321"))

	_, err := s.storage.GetRoom(s.ctx, "654321")
	s.ErrorIs(err, model.ErrRoomNotFound)

	_, _, err = s.storage.GetRoomByPlayerToken(s.ctx, "tok-host")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeleteRoomIdempotent() {
	s.NoError(s.storage.DeleteRoom(s.ctx, "654321"))
}

func (s *StorageSuite) TestGetRoomByPlayerToken() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	room, playerID, err := s.storage.GetRoomByPlayerToken(s.ctx, "tok-alice")
	s.Require().NoError(err)
	s.Equal(model.RoomID("654321"), room.ID)
	s.Equal(model.PlayerID(1), playerID)
}

func (s *StorageSuite) TestRoomTTLApplied() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	s.Greater(s.mini.TTL(roomKey("654321")), time.Duration(0))
	s.Greater(s.mini.TTL(tokenIndexKey("tok-host")), time.Duration(0))
}

func (s *StorageSuite) TestRoomExpires() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetRoom(s.ctx, "654321")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestPhrasePoolRoundTrip() {
	pool, err := s.storage.GetPhrasePool(s.ctx)
	s.Require().NoError(err)
	s.Empty(pool)

	s.Require().NoError(s.storage.SavePhrasePool(s.ctx, []string{"a", "b"}))

	pool, err = s.storage.GetPhrasePool(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, pool)
}
