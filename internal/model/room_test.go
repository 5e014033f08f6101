package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RoomSuite struct {
	suite.Suite
	room *Room
}

func TestRoomSuite(t *testing.T) {
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) SetupTest() {
	s.room = &Room{
		ID:     "123456",
		HostID: 0,
		State:  RoomNotStarted,
		Players: []Player{
			{ID: 0, Token: "tok-0", Username: "host"},
			{ID: 1, Token: "tok-1", Username: "alice"},
			{ID: 2, Token: "tok-2", Username: "bob"},
			{ID: 3, Token: "tok-3", Username: "carol"},
		},
	}
}

func (s *RoomSuite) TestPlayerLookup() {
	s.Require().NotNil(s.room.Player(2))
	s.Equal("bob", s.room.Player(2).Username)
	s.Nil(s.room.Player(9))
}

func (s *RoomSuite) TestPlayerByToken() {
	s.Require().NotNil(s.room.PlayerByToken("tok-3"))
	s.Equal(PlayerID(3), s.room.PlayerByToken("tok-3").ID)
	s.Nil(s.room.PlayerByToken("nope"))
}

func (s *RoomSuite) TestNextPlayerIDIsMaxPlusOne() {
	s.Equal(PlayerID(4), s.room.NextPlayerID())

	// IDs are never reused after a gap
	s.room.Players = []Player{{ID: 0}, {ID: 5}}
	s.Equal(PlayerID(6), s.room.NextPlayerID())
}

func (s *RoomSuite) TestNewPhraseIDIsMonotonic() {
	s.Equal(PhraseID(0), s.room.NewPhraseID())
	s.Equal(PhraseID(1), s.room.NewPhraseID())
	s.Equal(PhraseID(2), s.room.NewPhraseID())
}

func (s *RoomSuite) TestEveryoneHasStatus() {
	s.room.SetAllStatuses(StatusDrawing)
	s.True(s.room.EveryoneHasStatus(StatusDrawing))

	s.room.Players[2].Status = StatusFinishedDrawing
	s.False(s.room.EveryoneHasStatus(StatusDrawing))
}

func (s *RoomSuite) TestPendingIllustratorsExcludesCompletedAndCurrent() {
	s.room.CompletedRounds = []Round{{IllustratorID: 1}}
	s.room.CurrentRound = &Round{IllustratorID: 2}

	s.Equal([]PlayerID{0, 3}, s.room.PendingIllustrators())
}

func (s *RoomSuite) TestPendingIllustratorsEmptyWhenAllDone() {
	s.room.CompletedRounds = []Round{
		{IllustratorID: 0}, {IllustratorID: 1}, {IllustratorID: 2}, {IllustratorID: 3},
	}
	s.Empty(s.room.PendingIllustrators())
}

func (s *RoomSuite) TestEligibleForRoundExcludesProtectedPair() {
	s.room.OriginalPhrases = []Phrase{{ID: 0, AuthorID: 3}}
	round := NewRound(1, 0, Drawing{})

	s.Equal([]PlayerID{0, 2}, s.room.EligibleForRound(round))
}

func (s *RoomSuite) TestAssignmentAndDrawingLookup() {
	s.room.Assignments = []DrawingAssignment{{PlayerID: 1, PhraseID: 0}}
	s.room.Drawings = []PlayerDrawing{{PlayerID: 1, Drawing: Drawing{Shapes: []Shape{{Type: ShapeDot}}}}}

	s.Require().NotNil(s.room.AssignmentFor(1))
	s.Equal(PhraseID(0), s.room.AssignmentFor(1).PhraseID)
	s.Nil(s.room.AssignmentFor(2))

	s.Require().NotNil(s.room.DrawingBy(1))
	s.Len(s.room.DrawingBy(1).Shapes, 1)
	s.Nil(s.room.DrawingBy(2))
}

func (s *RoomSuite) TestRoundInProgress() {
	for state, want := range map[RoomState]bool{
		RoomNotStarted:           false,
		RoomMakingPhrases:        false,
		RoomDrawing:              false,
		RoomMakingFakePhrases:    true,
		RoomVoting:               true,
		RoomShowingVotingResults: true,
		RoomEnded:                false,
	} {
		s.room.State = state
		s.Equal(want, s.room.RoundInProgress(), "state %s", state)
	}
}
