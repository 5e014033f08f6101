package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/tmazur/sketchbluff/internal/model"
	"github.com/tmazur/sketchbluff/internal/services/room"
)

// Handler upgrades HTTP requests to WebSocket sessions and dispatches
// the game protocol on them.
type Handler struct {
	controller *room.Controller
	hubs       *HubManager
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// NewHandler creates a new WebSocket Handler
func NewHandler(controller *room.Controller, hubs *HubManager, logger *slog.Logger) *Handler {
	return &Handler{
		controller: controller,
		hubs:       hubs,
		logger:     logger.With(slog.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Clients are served from arbitrary origins; the protocol
			// carries no cookies, so cross-origin upgrades are safe
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and runs the session until the
// client disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(c, h.logger)
	go client.writePump()

	s := &session{
		handler: h,
		client:  client,
		logger:  h.logger,
	}
	defer s.teardown()

	client.readPump(func(msg []byte) {
		s.dispatch(r.Context(), msg)
	})
}

// session is the per-connection protocol state: which room and player
// this connection speaks for, once bound.
type session struct {
	handler *Handler
	client  *Client
	logger  *slog.Logger

	bound    bool
	roomID   model.RoomID
	playerID model.PlayerID
}

// bind attaches the session to a room and registers its connection
// with the room's hub.
func (s *session) bind(roomID model.RoomID, playerID model.PlayerID) {
	if s.bound {
		s.handler.hubs.GetOrCreateHub(s.roomID).Unregister(s.client)
	}
	s.bound = true
	s.roomID = roomID
	s.playerID = playerID
	s.logger = s.handler.logger.With(
		slog.String("room_id", string(roomID)),
		slog.Int("player_id", int(playerID)),
	)
	s.handler.hubs.GetOrCreateHub(roomID).Register(s.client, playerID)
}

func (s *session) teardown() {
	if s.bound {
		if hub := s.handler.hubs.GetHub(s.roomID); hub != nil {
			hub.Unregister(s.client)
		}
	}
}

// dispatch decodes one inbound frame and routes it. Malformed frames
// and rejected operations are logged and otherwise ignored; the room
// is never left half-changed, so the client can simply retry.
func (s *session) dispatch(ctx context.Context, msg []byte) {
	var envelope Envelope
	if err := json.Unmarshal(msg, &envelope); err != nil {
		s.logger.Warn("malformed message", slog.String("error", err.Error()))
		return
	}

	var err error
	switch MessageType(envelope.Type) {
	case MsgCreateRoom:
		err = s.handleCreateRoom(ctx, envelope.Payload)
	case MsgJoinRoom:
		err = s.handleJoinRoom(ctx, envelope.Payload)
	case MsgReconnect:
		err = s.handleReconnect(ctx, envelope.Payload)
	case MsgQuitGame:
		err = s.handleQuitGame(ctx)
	case MsgStartGame:
		err = s.withRoom(func() (model.RoomID, []model.Event, error) {
			r, events, err := s.handler.controller.StartMakingPhrases(ctx, s.roomID, s.playerID)
			return roomIDOf(r), events, err
		})
	case MsgPhraseDone:
		var payload PhraseDonePayload
		if err = json.Unmarshal(envelope.Payload, &payload); err == nil {
			err = s.withRoom(func() (model.RoomID, []model.Event, error) {
				r, events, err := s.handler.controller.PlayerFinishedPhrase(ctx, s.roomID, s.playerID, payload.Phrase)
				return roomIDOf(r), events, err
			})
		}
	case MsgDrawingDone:
		var payload DrawingDonePayload
		if err = json.Unmarshal(envelope.Payload, &payload); err == nil {
			err = s.withRoom(func() (model.RoomID, []model.Event, error) {
				r, events, err := s.handler.controller.PlayerFinishedDrawing(ctx, s.roomID, s.playerID, payload.Drawing)
				return roomIDOf(r), events, err
			})
		}
	case MsgFakePhraseDone:
		var payload FakePhraseDonePayload
		if err = json.Unmarshal(envelope.Payload, &payload); err == nil {
			err = s.withRoom(func() (model.RoomID, []model.Event, error) {
				r, events, err := s.handler.controller.PlayerFinishedFakePhrase(ctx, s.roomID, s.playerID, payload.Text)
				return roomIDOf(r), events, err
			})
		}
	case MsgVoteForPhrase:
		var payload VoteForPhrasePayload
		if err = json.Unmarshal(envelope.Payload, &payload); err == nil {
			err = s.withRoom(func() (model.RoomID, []model.Event, error) {
				r, events, err := s.handler.controller.PlayerVotedForPhrase(ctx, s.roomID, s.playerID, payload.PhrasePlayerID)
				return roomIDOf(r), events, err
			})
		}
	case MsgStartNextRound:
		err = s.withRoom(func() (model.RoomID, []model.Event, error) {
			r, events, err := s.handler.controller.StartNextRound(ctx, s.roomID, s.playerID)
			return roomIDOf(r), events, err
		})
	default:
		s.logger.Warn("unknown message type", slog.String("type", envelope.Type))
		return
	}

	if err != nil {
		s.logger.Warn("message rejected",
			slog.String("type", envelope.Type),
			slog.String("error", err.Error()))
	}
}

// withRoom runs a room operation for a bound session and fans its
// events out.
func (s *session) withRoom(op func() (model.RoomID, []model.Event, error)) error {
	if !s.bound {
		return model.ErrPlayerNotFound
	}
	roomID, events, err := op()
	if err != nil {
		return err
	}
	s.handler.hubs.Deliver(roomID, events)
	return nil
}

func (s *session) handleCreateRoom(ctx context.Context, raw json.RawMessage) error {
	var payload CreateRoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	r, events, err := s.handler.controller.CreateRoom(ctx, payload.Username)
	if err != nil {
		return err
	}
	s.bind(r.ID, r.HostID)
	s.handler.hubs.Deliver(r.ID, events)
	return nil
}

func (s *session) handleJoinRoom(ctx context.Context, raw json.RawMessage) error {
	var payload JoinRoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	r, player, events, err := s.handler.controller.JoinRoom(ctx, payload.RoomID, payload.Username)
	if err != nil {
		return err
	}
	s.bind(r.ID, player.ID)
	s.handler.hubs.Deliver(r.ID, events)
	return nil
}

func (s *session) handleReconnect(ctx context.Context, raw json.RawMessage) error {
	var payload ReconnectPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	r, playerID, events, err := s.handler.controller.Reconnect(ctx, payload.PlayerToken)
	if err != nil {
		return err
	}
	s.bind(r.ID, playerID)
	s.handler.hubs.Deliver(r.ID, events)
	return nil
}

func (s *session) handleQuitGame(ctx context.Context) error {
	if !s.bound {
		return model.ErrPlayerNotFound
	}

	events, err := s.handler.controller.QuitGame(ctx, s.roomID)
	if err != nil {
		return err
	}
	s.handler.hubs.Deliver(s.roomID, events)
	s.handler.hubs.RemoveHub(s.roomID)
	s.bound = false
	return nil
}

func roomIDOf(r *model.Room) model.RoomID {
	if r == nil {
		return ""
	}
	return r.ID
}
