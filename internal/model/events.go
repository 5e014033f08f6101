package model

// EventType identifies an outbound message to connected players.
// Values match the wire protocol's type field.
type EventType string

const (
	EventAssignPlayerID           EventType = "ASSIGN_PLAYER_ID"
	EventAssignPlayerToken        EventType = "ASSIGN_PLAYER_TOKEN"
	EventUpdateRoomState          EventType = "UPDATE_ROOM_STATE"
	EventPlayerJoined             EventType = "PLAYER_JOINED"
	EventStartMakingPhrase        EventType = "START_MAKING_PHRASE"
	EventPlayerFinishedPhrase     EventType = "PLAYER_FINISHED_PHRASE"
	EventPlayerFinishedDrawing    EventType = "PLAYER_FINISHED_DRAWING"
	EventStartMakingFakePhrases   EventType = "START_MAKING_FAKE_PHRASES"
	EventPlayerFinishedFakePhrase EventType = "PLAYER_FINISHED_MAKING_FAKE_PHRASE"
	EventStartVoting              EventType = "START_VOTING"
	EventPlayerFinishedVoting     EventType = "PLAYER_FINISHED_VOTING"
	EventUpdatePoints             EventType = "UPDATE_POINTS"
	EventShowVotingResults        EventType = "SHOW_VOTING_RESULTS"
	EventGameEnded                EventType = "GAME_ENDED"
)

// Event is one outbound message produced by a room transition. To is
// a single player ID, or Everyone for a room-wide broadcast. Payload
// is already viewer-safe: per-viewer filtering happens before the
// event is built, so the transport only serializes and delivers.
type Event struct {
	Type    EventType
	To      PlayerID
	Payload any
}

// Broadcast builds a room-wide event.
func Broadcast(t EventType, payload any) Event {
	return Event{Type: t, To: Everyone, Payload: payload}
}

// SendTo builds an event addressed to one player.
func SendTo(to PlayerID, t EventType, payload any) Event {
	return Event{Type: t, To: to, Payload: payload}
}
