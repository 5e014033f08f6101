package view

import "github.com/tmazur/sketchbluff/internal/model"

// Event payloads as serialized to clients. Field names are part of
// the wire protocol.

// AssignPlayerIDPayload tells a connection which player it is
type AssignPlayerIDPayload struct {
	PlayerID model.PlayerID `json:"playerId"`
}

// AssignPlayerTokenPayload delivers a player's secret reconnection
// token; only ever sent to that player
type AssignPlayerTokenPayload struct {
	PlayerToken string `json:"playerToken"`
}

// UpdateRoomStatePayload carries a viewer-filtered snapshot
type UpdateRoomStatePayload struct {
	Room RoomSnapshot `json:"room"`
}

// PlayerJoinedPayload announces a new roster member
type PlayerJoinedPayload struct {
	Player PlayerView `json:"player"`
}

// PlayerActedPayload announces that a player completed the current
// phase's action (phrase, drawing, fake phrase or vote)
type PlayerActedPayload struct {
	PlayerID model.PlayerID `json:"playerId"`
}

// StartMakingFakePhrasesPayload opens a round: everyone sees the
// illustrator, the drawing, and the phrase it depicts
type StartMakingFakePhrasesPayload struct {
	CurrentPlayerID model.PlayerID `json:"currentPlayerId"`
	OriginalPhrase  PhraseView     `json:"originalPhrase"`
	Drawing         model.Drawing  `json:"drawing"`
}

// StartVotingPayload lists the candidate phrases for a round's vote
type StartVotingPayload struct {
	Phrases []PhraseView `json:"phrases"`
}

// UpdatePointsPayload carries every player's running score
type UpdatePointsPayload struct {
	Points []PointsEntry `json:"points"`
}

// ShowVotingResultsPayload reveals a round's votes and the original
type ShowVotingResultsPayload struct {
	Votes          []VoteView `json:"votes"`
	OriginalPhrase PhraseView `json:"originalPhrase"`
}
