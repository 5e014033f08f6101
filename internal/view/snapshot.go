// Package view builds the per-viewer projections of room state that
// go out on the wire. Nothing here exposes another player's secrets:
// reconnection tokens never appear, and a snapshot includes only the
// viewer's own assigned original phrase.
package view

import "github.com/tmazur/sketchbluff/internal/model"

// PlayerView is the public face of a player
type PlayerView struct {
	ID       model.PlayerID     `json:"id"`
	Username string             `json:"username"`
	Status   model.PlayerStatus `json:"status"`
	Points   int                `json:"points"`
}

// PhraseView is the public face of a phrase
type PhraseView struct {
	ID       model.PhraseID `json:"id"`
	AuthorID model.PlayerID `json:"authorId"`
	Text     string         `json:"text"`
}

// VoteView is the public face of a vote
type VoteView struct {
	PlayerID model.PlayerID `json:"playerId"`
	PhraseID model.PhraseID `json:"phraseId"`
}

// PointsEntry reports one player's accumulated score
type PointsEntry struct {
	PlayerID model.PlayerID `json:"playerId"`
	Points   int            `json:"points"`
}

// RoomSnapshot is the per-viewer picture of a room. OriginalPhrase is
// the phrase this viewer must illustrate, or null outside the phases
// where assignments exist. Other players' assignments are never
// included; hiding them is a confidentiality requirement, not an
// optimization.
type RoomSnapshot struct {
	ID             model.RoomID    `json:"id"`
	HostID         model.PlayerID  `json:"hostId"`
	State          model.RoomState `json:"state"`
	Players        []PlayerView    `json:"players"`
	OriginalPhrase *PhraseView     `json:"originalPhrase"`
}

// PlayerOf projects a player for the wire
func PlayerOf(p model.Player) PlayerView {
	return PlayerView{
		ID:       p.ID,
		Username: p.Username,
		Status:   p.Status,
		Points:   p.Points,
	}
}

// PhraseOf projects a phrase for the wire
func PhraseOf(p model.Phrase) PhraseView {
	return PhraseView{
		ID:       p.ID,
		AuthorID: p.AuthorID,
		Text:     p.Text,
	}
}

// Snapshot builds the room state as seen by one viewer.
func Snapshot(room *model.Room, viewerID model.PlayerID) RoomSnapshot {
	players := make([]PlayerView, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, PlayerOf(p))
	}

	snapshot := RoomSnapshot{
		ID:      room.ID,
		HostID:  room.HostID,
		State:   room.State,
		Players: players,
	}

	if a := room.AssignmentFor(viewerID); a != nil {
		if phrase := room.PhraseByID(a.PhraseID); phrase != nil {
			pv := PhraseOf(*phrase)
			snapshot.OriginalPhrase = &pv
		}
	}

	return snapshot
}

// Points projects every player's running score
func Points(room *model.Room) []PointsEntry {
	entries := make([]PointsEntry, 0, len(room.Players))
	for _, p := range room.Players {
		entries = append(entries, PointsEntry{PlayerID: p.ID, Points: p.Points})
	}
	return entries
}

// Votes projects a round's votes
func Votes(round *model.Round) []VoteView {
	votes := make([]VoteView, 0, len(round.Votes))
	for _, v := range round.Votes {
		votes = append(votes, VoteView{PlayerID: v.PlayerID, PhraseID: v.PhraseID})
	}
	return votes
}
