package ws

import (
	"encoding/json"

	"github.com/tmazur/sketchbluff/internal/model"
)

// MessageType identifies an inbound client message.
type MessageType string

const (
	MsgCreateRoom     MessageType = "CREATE_ROOM"
	MsgJoinRoom       MessageType = "JOIN_ROOM"
	MsgReconnect      MessageType = "RECONNECT"
	MsgQuitGame       MessageType = "QUIT_GAME"
	MsgStartGame      MessageType = "START_GAME"
	MsgPhraseDone     MessageType = "PHRASE_DONE"
	MsgDrawingDone    MessageType = "DRAWING_DONE"
	MsgFakePhraseDone MessageType = "FAKE_PHRASE_DONE"
	MsgVoteForPhrase  MessageType = "VOTE_FOR_PHRASE"
	MsgStartNextRound MessageType = "START_NEXT_ROUND"
)

// Envelope is the framing for every message in both directions: a
// type tag and a type-specific payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound payloads

type CreateRoomPayload struct {
	Username string `json:"username"`
}

type JoinRoomPayload struct {
	RoomID   model.RoomID `json:"roomId"`
	Username string       `json:"username"`
}

type ReconnectPayload struct {
	PlayerToken string `json:"playerToken"`
}

type PhraseDonePayload struct {
	Phrase string `json:"phrase"`
}

type DrawingDonePayload struct {
	Drawing model.Drawing `json:"drawing"`
}

type FakePhraseDonePayload struct {
	Text string `json:"text"`
}

type VoteForPhrasePayload struct {
	PhrasePlayerID model.PlayerID `json:"phrasePlayerId"`
}

// encodeEvent frames an outbound event for the wire.
func encodeEvent(event model.Event) ([]byte, error) {
	var payload json.RawMessage
	if event.Payload != nil {
		data, err := json.Marshal(event.Payload)
		if err != nil {
			return nil, err
		}
		payload = data
	}
	return json.Marshal(Envelope{
		Type:    string(event.Type),
		Payload: payload,
	})
}
