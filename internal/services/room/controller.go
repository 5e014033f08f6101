// Package room implements the game-room lifecycle machine: the
// aggregate that owns the roster, the phrase pool, the assignment
// table and the rounds, and gates every mutation on the room's
// current phase.
package room

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tmazur/sketchbluff/internal/dependencies/clock"
	"github.com/tmazur/sketchbluff/internal/dependencies/random"
	"github.com/tmazur/sketchbluff/internal/model"
	"github.com/tmazur/sketchbluff/internal/services/assign"
	"github.com/tmazur/sketchbluff/internal/services/scoring"
	"github.com/tmazur/sketchbluff/internal/storage"
	"github.com/tmazur/sketchbluff/internal/view"
)

// MinimumPlayers is the smallest roster a game can start with.
const MinimumPlayers = 4

// Controller drives room state machines. Every public operation
// serializes on its room, validates phase and actor before touching
// anything, and returns the outbound events the transition produced.
// Rejections come back as sentinel errors from the model package;
// they are expected races, not failures.
type Controller struct {
	storage storage.Storage
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	locks   *roomLocks
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		scoring: scoringService,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   newRoomLocks(),
	}
}

// CreateRoom creates a room with the given player as host (ID 0).
func (c *Controller) CreateRoom(ctx context.Context, username string) (*model.Room, []model.Event, error) {
	now := c.clock.Now()

	var id model.RoomID
	for {
		id = c.generateRoomID()
		exists, err := c.storage.RoomExists(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			break
		}
	}

	host := model.Player{
		ID:       0,
		Token:    uuid.NewString(),
		Username: username,
		Status:   model.StatusIdle,
	}

	room := &model.Room{
		ID:        id,
		HostID:    host.ID,
		State:     model.RoomNotStarted,
		Players:   []model.Player{host},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", string(room.ID)),
		slog.String("host", username),
	)

	events := []model.Event{
		model.SendTo(host.ID, model.EventAssignPlayerID, view.AssignPlayerIDPayload{PlayerID: host.ID}),
		model.SendTo(host.ID, model.EventAssignPlayerToken, view.AssignPlayerTokenPayload{PlayerToken: host.Token}),
		model.SendTo(host.ID, model.EventUpdateRoomState, view.UpdateRoomStatePayload{Room: view.Snapshot(room, host.ID)}),
	}
	return room, events, nil
}

// JoinRoom adds a player to a room that has not started yet. The new
// ID is one past the highest ever assigned, so vacated IDs are never
// reused.
func (c *Controller) JoinRoom(ctx context.Context, roomID model.RoomID, username string) (*model.Room, *model.Player, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, nil, err
	}
	if room.State != model.RoomNotStarted {
		return nil, nil, nil, model.ErrInvalidPhase
	}

	player := model.Player{
		ID:       room.NextPlayerID(),
		Token:    uuid.NewString(),
		Username: username,
		Status:   model.StatusIdle,
	}
	room.Players = append(room.Players, player)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, nil, err
	}

	c.logger.Info("player joined",
		slog.String("room_id", string(room.ID)),
		slog.Int("player_id", int(player.ID)),
		slog.Int("player_count", len(room.Players)),
	)

	events := []model.Event{
		model.SendTo(player.ID, model.EventAssignPlayerID, view.AssignPlayerIDPayload{PlayerID: player.ID}),
		model.SendTo(player.ID, model.EventAssignPlayerToken, view.AssignPlayerTokenPayload{PlayerToken: player.Token}),
		model.SendTo(player.ID, model.EventUpdateRoomState, view.UpdateRoomStatePayload{Room: view.Snapshot(room, player.ID)}),
	}
	for _, p := range room.Players {
		if p.ID != player.ID {
			events = append(events, model.SendTo(p.ID, model.EventPlayerJoined, view.PlayerJoinedPayload{Player: view.PlayerOf(player)}))
		}
	}
	return room, room.Player(player.ID), events, nil
}

// Reconnect resolves a reconnection token to its room and player
// without changing either. The events re-seed the rebound connection.
func (c *Controller) Reconnect(ctx context.Context, token string) (*model.Room, model.PlayerID, []model.Event, error) {
	room, playerID, err := c.storage.GetRoomByPlayerToken(ctx, token)
	if err != nil {
		return nil, 0, nil, err
	}

	mu := c.locks.acquire(room.ID)
	mu.Lock()
	defer mu.Unlock()

	room, err = c.storage.GetRoom(ctx, room.ID)
	if err != nil {
		return nil, 0, nil, err
	}
	if room.Player(playerID) == nil {
		return nil, 0, nil, model.ErrPlayerNotFound
	}

	events := []model.Event{
		model.SendTo(playerID, model.EventAssignPlayerID, view.AssignPlayerIDPayload{PlayerID: playerID}),
		model.SendTo(playerID, model.EventUpdateRoomState, view.UpdateRoomStatePayload{Room: view.Snapshot(room, playerID)}),
	}
	return room, playerID, events, nil
}

// QuitGame ends the game for everyone and discards the room. This is
// the one unrecoverable condition; there is no partial rollback.
func (c *Controller) QuitGame(ctx context.Context, roomID model.RoomID) ([]model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := c.storage.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	if err := c.storage.DeleteRoom(ctx, roomID); err != nil {
		return nil, err
	}
	c.locks.forget(roomID)

	c.logger.Info("room discarded", slog.String("room_id", string(roomID)))

	return []model.Event{model.Broadcast(model.EventGameEnded, nil)}, nil
}

// StartMakingPhrases begins the game. Host-only, and only from the
// not-started state with enough players.
func (c *Controller) StartMakingPhrases(ctx context.Context, roomID model.RoomID, actorID model.PlayerID) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.Player(actorID) == nil {
		return nil, nil, model.ErrPlayerNotFound
	}
	if actorID != room.HostID {
		return nil, nil, model.ErrNotHost
	}
	if room.State != model.RoomNotStarted {
		return nil, nil, model.ErrInvalidPhase
	}
	if len(room.Players) < MinimumPlayers {
		return nil, nil, model.ErrInsufficientPlayers
	}

	room.State = model.RoomMakingPhrases
	room.OriginalPhrases = []model.Phrase{}
	room.SetAllStatuses(model.StatusMakingPhrase)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}

	c.logger.Info("game started",
		slog.String("room_id", string(room.ID)),
		slog.Int("player_count", len(room.Players)),
	)

	return room, []model.Event{model.Broadcast(model.EventStartMakingPhrase, nil)}, nil
}

// PlayerFinishedPhrase records a player's original phrase. When the
// whole roster has finished, drawing starts automatically.
func (c *Controller) PlayerFinishedPhrase(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, text string) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.State != model.RoomMakingPhrases {
		return nil, nil, model.ErrInvalidPhase
	}
	player := room.Player(playerID)
	if player == nil {
		return nil, nil, model.ErrPlayerNotFound
	}
	if player.Status == model.StatusFinishedPhrase {
		return nil, nil, model.ErrDuplicateSubmission
	}

	room.OriginalPhrases = append(room.OriginalPhrases, model.Phrase{
		ID:       room.NewPhraseID(),
		AuthorID: playerID,
		Text:     text,
	})
	player.Status = model.StatusFinishedPhrase

	events := []model.Event{
		model.Broadcast(model.EventPlayerFinishedPhrase, view.PlayerActedPayload{PlayerID: playerID}),
	}

	if room.EveryoneHasStatus(model.StatusFinishedPhrase) {
		drawingEvents, err := c.startDrawing(room)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, drawingEvents...)
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	return room, events, nil
}

// startDrawing runs the assignment algorithm and moves the room to
// the drawing phase. Each player learns only their own phrase via a
// per-viewer snapshot.
func (c *Controller) startDrawing(room *model.Room) ([]model.Event, error) {
	ids := make([]model.PlayerID, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}

	assignments, err := assign.Assignments(ids, room.OriginalPhrases, c.random)
	if err != nil {
		return nil, err
	}

	room.Assignments = assignments
	room.Drawings = []model.PlayerDrawing{}
	room.State = model.RoomDrawing
	room.SetAllStatuses(model.StatusDrawing)

	c.logger.Info("drawing started",
		slog.String("room_id", string(room.ID)),
		slog.Int("assignments", len(assignments)),
	)

	events := make([]model.Event, 0, len(room.Players))
	for _, p := range room.Players {
		events = append(events, model.SendTo(p.ID, model.EventUpdateRoomState, view.UpdateRoomStatePayload{Room: view.Snapshot(room, p.ID)}))
	}
	return events, nil
}

// PlayerFinishedDrawing records a drawing. When every player has
// submitted, the first round begins automatically.
func (c *Controller) PlayerFinishedDrawing(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, drawing model.Drawing) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.State != model.RoomDrawing {
		return nil, nil, model.ErrInvalidPhase
	}
	player := room.Player(playerID)
	if player == nil {
		return nil, nil, model.ErrPlayerNotFound
	}
	if player.Status == model.StatusFinishedDrawing {
		return nil, nil, model.ErrDuplicateSubmission
	}

	room.Drawings = append(room.Drawings, model.PlayerDrawing{PlayerID: playerID, Drawing: drawing})
	player.Status = model.StatusFinishedDrawing

	events := []model.Event{
		model.Broadcast(model.EventPlayerFinishedDrawing, view.PlayerActedPayload{PlayerID: playerID}),
	}

	if room.EveryoneHasStatus(model.StatusFinishedDrawing) {
		roundEvents, err := c.beginRound(room)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, roundEvents...)
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	return room, events, nil
}

// beginRound picks the next illustrator at random among players who
// have not had a round, builds the round from the assignment table
// and moves the room into fake-phrase collection.
func (c *Controller) beginRound(room *model.Room) ([]model.Event, error) {
	next, ok := assign.NextIllustrator(room.PendingIllustrators(), c.random)
	if !ok {
		return nil, fmt.Errorf("no illustrator available in room %s", room.ID)
	}

	assignment := room.AssignmentFor(next)
	if assignment == nil {
		return nil, fmt.Errorf("player %d has no drawing assignment", next)
	}
	drawing := room.DrawingBy(next)
	if drawing == nil {
		return nil, fmt.Errorf("player %d has no submitted drawing", next)
	}
	original := room.PhraseByID(assignment.PhraseID)
	if original == nil {
		return nil, fmt.Errorf("phrase %d not found in room %s", assignment.PhraseID, room.ID)
	}

	room.CurrentRound = model.NewRound(next, assignment.PhraseID, *drawing)
	room.State = model.RoomMakingFakePhrases
	room.SetAllStatuses(model.StatusMakingFakePhrase)

	c.logger.Info("round started",
		slog.String("room_id", string(room.ID)),
		slog.Int("illustrator", int(next)),
		slog.Int("completed_rounds", len(room.CompletedRounds)),
	)

	return []model.Event{
		model.Broadcast(model.EventStartMakingFakePhrases, view.StartMakingFakePhrasesPayload{
			CurrentPlayerID: next,
			OriginalPhrase:  view.PhraseOf(*original),
			Drawing:         *drawing,
		}),
	}, nil
}

// PlayerFinishedFakePhrase records a decoy phrase for the current
// round. Once every eligible player has contributed, voting opens.
func (c *Controller) PlayerFinishedFakePhrase(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, text string) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.State != model.RoomMakingFakePhrases || room.CurrentRound == nil {
		return nil, nil, model.ErrInvalidPhase
	}
	player := room.Player(playerID)
	if player == nil {
		return nil, nil, model.ErrPlayerNotFound
	}

	round := room.CurrentRound
	original := room.PhraseByID(round.OriginalPhraseID)
	if original == nil {
		return nil, nil, model.ErrPhraseNotFound
	}
	if round.IsProtected(playerID, original.AuthorID) {
		return nil, nil, model.ErrNotEligible
	}
	if round.HasFakePhraseFrom(playerID) {
		return nil, nil, model.ErrDuplicateSubmission
	}

	round.FakePhrases = append(round.FakePhrases, model.Phrase{
		ID:       room.NewPhraseID(),
		AuthorID: playerID,
		Text:     text,
	})
	player.Status = model.StatusFinishedFakePhrase

	events := []model.Event{
		model.Broadcast(model.EventPlayerFinishedFakePhrase, view.PlayerActedPayload{PlayerID: playerID}),
	}

	if c.everyoneContributed(room, round) {
		events = append(events, c.startVoting(room, round, *original)...)
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	return room, events, nil
}

func (c *Controller) everyoneContributed(room *model.Room, round *model.Round) bool {
	for _, id := range room.EligibleForRound(round) {
		if !round.HasFakePhraseFrom(id) {
			return false
		}
	}
	return true
}

// startVoting moves the round to its voting state. Candidates are the
// fakes in submission order followed by the original.
func (c *Controller) startVoting(room *model.Room, round *model.Round, original model.Phrase) []model.Event {
	room.State = model.RoomVoting
	round.State = model.RoundVoting
	room.SetAllStatuses(model.StatusVoting)

	candidates := round.CandidatePhrases(original)
	phraseViews := make([]view.PhraseView, 0, len(candidates))
	for _, p := range candidates {
		phraseViews = append(phraseViews, view.PhraseOf(p))
	}

	return []model.Event{
		model.Broadcast(model.EventStartVoting, view.StartVotingPayload{Phrases: phraseViews}),
	}
}

// PlayerVotedForPhrase records a vote, identified by the author of
// the chosen phrase. Once every eligible player has voted, the round
// is scored and results are revealed.
func (c *Controller) PlayerVotedForPhrase(ctx context.Context, roomID model.RoomID, voterID model.PlayerID, phraseAuthorID model.PlayerID) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.State != model.RoomVoting || room.CurrentRound == nil {
		return nil, nil, model.ErrInvalidPhase
	}
	voter := room.Player(voterID)
	if voter == nil {
		return nil, nil, model.ErrPlayerNotFound
	}

	round := room.CurrentRound
	original := room.PhraseByID(round.OriginalPhraseID)
	if original == nil {
		return nil, nil, model.ErrPhraseNotFound
	}
	if round.IsProtected(voterID, original.AuthorID) {
		return nil, nil, model.ErrNotEligible
	}
	if round.HasVoteFrom(voterID) {
		return nil, nil, model.ErrDuplicateSubmission
	}

	// Resolve before mutating: a reference to a phrase nobody wrote
	// must not leave a dangling vote behind
	chosen := round.CandidateByAuthor(*original, phraseAuthorID)
	if chosen == nil {
		return nil, nil, model.ErrPhraseNotFound
	}

	round.Votes = append(round.Votes, model.Vote{PlayerID: voterID, PhraseID: chosen.ID})
	voter.Status = model.StatusFinishedVoting

	events := []model.Event{
		model.Broadcast(model.EventPlayerFinishedVoting, view.PlayerActedPayload{PlayerID: voterID}),
	}

	if c.everyoneVoted(room, round) {
		events = append(events, c.finishRound(room, round, *original)...)
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	return room, events, nil
}

func (c *Controller) everyoneVoted(room *model.Room, round *model.Round) bool {
	for _, id := range room.EligibleForRound(round) {
		if !round.HasVoteFrom(id) {
			return false
		}
	}
	return true
}

// finishRound applies scoring and reveals results. Scoring happens
// before the reveal so clients never see results ahead of points.
func (c *Controller) finishRound(room *model.Room, round *model.Round, original model.Phrase) []model.Event {
	deltas := c.scoring.RoundDeltas(round, original)
	for id, delta := range deltas {
		if p := room.Player(id); p != nil {
			p.Points += delta
		}
	}

	round.State = model.RoundResultsShown
	room.State = model.RoomShowingVotingResults

	c.logger.Info("round scored",
		slog.String("room_id", string(room.ID)),
		slog.Int("illustrator", int(round.IllustratorID)),
		slog.Int("votes", len(round.Votes)),
	)

	return []model.Event{
		model.Broadcast(model.EventUpdatePoints, view.UpdatePointsPayload{Points: view.Points(room)}),
		model.Broadcast(model.EventShowVotingResults, view.ShowVotingResultsPayload{
			Votes:          view.Votes(round),
			OriginalPhrase: view.PhraseOf(original),
		}),
	}
}

// StartNextRound retires the current round and either begins the next
// one or, when every player has had their round, ends the game.
// Host-only.
func (c *Controller) StartNextRound(ctx context.Context, roomID model.RoomID, actorID model.PlayerID) (*model.Room, []model.Event, error) {
	mu := c.locks.acquire(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.Player(actorID) == nil {
		return nil, nil, model.ErrPlayerNotFound
	}
	if actorID != room.HostID {
		return nil, nil, model.ErrNotHost
	}
	if room.State != model.RoomShowingVotingResults || room.CurrentRound == nil {
		return nil, nil, model.ErrInvalidPhase
	}

	room.CompletedRounds = append(room.CompletedRounds, *room.CurrentRound)
	room.CurrentRound = nil

	var events []model.Event
	if len(room.PendingIllustrators()) == 0 {
		room.State = model.RoomEnded
		events = append(events, model.Broadcast(model.EventGameEnded, nil))
		for _, p := range room.Players {
			events = append(events, model.SendTo(p.ID, model.EventUpdateRoomState, view.UpdateRoomStatePayload{Room: view.Snapshot(room, p.ID)}))
		}

		c.logger.Info("game ended",
			slog.String("room_id", string(room.ID)),
			slog.Int("rounds", len(room.CompletedRounds)),
		)
	} else {
		roundEvents, err := c.beginRound(room)
		if err != nil {
			return nil, nil, err
		}
		events = roundEvents
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	return room, events, nil
}

// generateRoomID returns a six-digit shareable code. Uniqueness is
// checked at creation; later collisions are accepted.
func (c *Controller) generateRoomID() model.RoomID {
	return model.RoomID(fmt.Sprintf("%06d", 100000+c.random.Intn(900000)))
}
