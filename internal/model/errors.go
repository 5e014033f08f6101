package model

import "errors"

// Rejection errors. None of these are fatal: actions arriving in the
// wrong phase, from the wrong actor, or referencing unknown entities
// are expected races between concurrent clients and server state. The
// transport layer reports them as rejected actions and moves on.
var (
	// Lookup errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrPhraseNotFound = errors.New("phrase not found")

	// Room lifecycle errors
	ErrInvalidPhase        = errors.New("action not valid in current room phase")
	ErrNotHost             = errors.New("player is not the host")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrDuplicateSubmission = errors.New("player already submitted in this phase")
	ErrNotEligible         = errors.New("player not eligible in this round")

	// Decode errors
	ErrUnknownShapeType = errors.New("unknown shape type")
)
