package model

import "time"

// RoomID is the human-shareable identifier players use to join.
// Collisions are accepted and not resolved.
type RoomID string

// RoomState represents the current lifecycle phase of a room. States
// only move forward; the three round states loop once per player.
type RoomState string

const (
	RoomNotStarted           RoomState = "not_started"
	RoomMakingPhrases        RoomState = "making_phrases"
	RoomDrawing              RoomState = "drawing"
	RoomMakingFakePhrases    RoomState = "making_fake_phrases"
	RoomVoting               RoomState = "voting"
	RoomShowingVotingResults RoomState = "showing_voting_results"
	RoomEnded                RoomState = "ended"
)

// Room is one game instance: the roster, the original phrase pool,
// the drawing assignment table, submitted drawings, round history and
// the round in progress. All mutation goes through the room
// controller, one operation at a time per room.
type Room struct {
	ID     RoomID
	HostID PlayerID
	State  RoomState

	Players         []Player
	OriginalPhrases []Phrase
	NextPhraseID    PhraseID
	Assignments     []DrawingAssignment
	Drawings        []PlayerDrawing

	// CurrentRound is non-nil exactly while State is one of the three
	// round states. CompletedRounds retains history in play order.
	CurrentRound    *Round
	CompletedRounds []Round

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player returns the roster entry with the given ID, or nil.
func (r *Room) Player(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// PlayerByToken returns the roster entry holding the given
// reconnection token, or nil.
func (r *Room) PlayerByToken(token string) *Player {
	for i := range r.Players {
		if r.Players[i].Token == token {
			return &r.Players[i]
		}
	}
	return nil
}

// NextPlayerID returns the ID the next joiner will receive.
func (r *Room) NextPlayerID() PlayerID {
	next := PlayerID(0)
	for _, p := range r.Players {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// PhraseByID returns the original phrase with the given ID, or nil.
func (r *Room) PhraseByID(id PhraseID) *Phrase {
	for i := range r.OriginalPhrases {
		if r.OriginalPhrases[i].ID == id {
			return &r.OriginalPhrases[i]
		}
	}
	return nil
}

// PhraseByAuthor returns the original phrase written by the given
// player, or nil.
func (r *Room) PhraseByAuthor(author PlayerID) *Phrase {
	for i := range r.OriginalPhrases {
		if r.OriginalPhrases[i].AuthorID == author {
			return &r.OriginalPhrases[i]
		}
	}
	return nil
}

// AssignmentFor returns the drawing assignment for the given
// illustrator, or nil before assignments exist.
func (r *Room) AssignmentFor(illustrator PlayerID) *DrawingAssignment {
	for i := range r.Assignments {
		if r.Assignments[i].PlayerID == illustrator {
			return &r.Assignments[i]
		}
	}
	return nil
}

// DrawingBy returns the drawing submitted by the given player, or nil.
func (r *Room) DrawingBy(illustrator PlayerID) *Drawing {
	for i := range r.Drawings {
		if r.Drawings[i].PlayerID == illustrator {
			return &r.Drawings[i].Drawing
		}
	}
	return nil
}

// EveryoneHasStatus reports whether every player on the roster has
// the given status.
func (r *Room) EveryoneHasStatus(s PlayerStatus) bool {
	for _, p := range r.Players {
		if p.Status != s {
			return false
		}
	}
	return true
}

// SetAllStatuses sets every player's status at a phase transition.
func (r *Room) SetAllStatuses(s PlayerStatus) {
	for i := range r.Players {
		r.Players[i].Status = s
	}
}

// HasCompletedRound reports whether the player has already had their
// round as illustrator.
func (r *Room) HasCompletedRound(id PlayerID) bool {
	for _, round := range r.CompletedRounds {
		if round.IllustratorID == id {
			return true
		}
	}
	return false
}

// PendingIllustrators returns, in roster order, the players who have
// not yet had a round. The union of this set, the completed set and
// the current illustrator always covers the whole roster exactly once.
func (r *Room) PendingIllustrators() []PlayerID {
	var pending []PlayerID
	for _, p := range r.Players {
		if r.HasCompletedRound(p.ID) {
			continue
		}
		if r.CurrentRound != nil && r.CurrentRound.IllustratorID == p.ID {
			continue
		}
		pending = append(pending, p.ID)
	}
	return pending
}

// RoundInProgress reports whether the room is in one of the three
// states where CurrentRound must be non-nil.
func (r *Room) RoundInProgress() bool {
	switch r.State {
	case RoomMakingFakePhrases, RoomVoting, RoomShowingVotingResults:
		return true
	default:
		return false
	}
}

// EligibleForRound returns, in roster order, the players allowed to
// contribute fake phrases and vote in the given round: everyone
// except the protected pair.
func (r *Room) EligibleForRound(round *Round) []PlayerID {
	original := r.PhraseByID(round.OriginalPhraseID)
	var eligible []PlayerID
	for _, p := range r.Players {
		if original != nil && round.IsProtected(p.ID, original.AuthorID) {
			continue
		}
		eligible = append(eligible, p.ID)
	}
	return eligible
}

// NewPhraseID allocates the next phrase ID from the room's counter.
func (r *Room) NewPhraseID() PhraseID {
	id := r.NextPhraseID
	r.NextPhraseID++
	return id
}
