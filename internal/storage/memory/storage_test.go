package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tmazur/sketchbluff/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) sampleRoom() *model.Room {
	return &model.Room{
		ID:     "123456",
		HostID: 0,
		State:  model.RoomNotStarted,
		Players: []model.Player{
			{ID: 0, Token: "tok-host", Username: "host"},
			{ID: 1, Token: "tok-alice", Username: "alice"},
		},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.sampleRoom()

	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, "123456")
	s.Require().NoError(err)
	s.Equal(room.ID, retrieved.ID)
	s.Len(retrieved.Players, 2)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "000000")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "123456")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	exists, err = s.storage.RoomExists(s.ctx, "123456")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoom() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "123456"))

	_, err := s.storage.GetRoom(s.ctx, "123456")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoomIdempotent() {
	s.NoError(s.storage.DeleteRoom(s.ctx, "123456"))
}

func (s *StorageSuite) TestGetRoomByPlayerToken() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())

	room, playerID, err := s.storage.GetRoomByPlayerToken(s.ctx, "tok-alice")
	s.Require().NoError(err)
	s.Equal(model.RoomID("123456"), room.ID)
	s.Equal(model.PlayerID(1), playerID)
}

func (s *StorageSuite) TestGetRoomByPlayerTokenUnknown() {
	_, _, err := s.storage.GetRoomByPlayerToken(s.ctx, "nope")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestTokenIndexClearedOnDelete() {
	_ = s.storage.SaveRoom(s.ctx, s.sampleRoom())
	_ = s.storage.DeleteRoom(s.ctx, "123456")

	_, _, err := s.storage.GetRoomByPlayerToken(s.ctx, "tok-host")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestTokenIndexFollowsNewPlayers() {
	room := s.sampleRoom()
	_ = s.storage.SaveRoom(s.ctx, room)

	room.Players = append(room.Players, model.Player{ID: 2, Token: "tok-bob", Username: "bob"})
	_ = s.storage.SaveRoom(s.ctx, room)

	_, playerID, err := s.storage.GetRoomByPlayerToken(s.ctx, "tok-bob")
	s.Require().NoError(err)
	s.Equal(model.PlayerID(2), playerID)
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
