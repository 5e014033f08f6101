package model

// PlayerID identifies a player within a room. IDs are assigned
// monotonically: the host is 0 and each joiner gets max(existing)+1,
// so an ID is never reused even if a lower one is vacated.
type PlayerID int

// Everyone is the pseudo-recipient for broadcast events.
const Everyone PlayerID = -1

// PlayerStatus tracks what a player is doing in the current phase
type PlayerStatus string

const (
	StatusIdle               PlayerStatus = "idle"
	StatusMakingPhrase       PlayerStatus = "making_phrase"
	StatusFinishedPhrase     PlayerStatus = "finished_phrase"
	StatusDrawing            PlayerStatus = "drawing"
	StatusFinishedDrawing    PlayerStatus = "finished_drawing"
	StatusMakingFakePhrase   PlayerStatus = "making_fake_phrase"
	StatusFinishedFakePhrase PlayerStatus = "finished_making_fake_phrase"
	StatusVoting             PlayerStatus = "voting"
	StatusFinishedVoting     PlayerStatus = "finished_voting"
)

// Player is a participant in a single room. The Token is the player's
// secret reconnection credential: generated once, stable for the
// player's lifetime, and never shown to other players. Points only
// ever increase within a game.
type Player struct {
	ID       PlayerID
	Token    string
	Username string
	Status   PlayerStatus
	Points   int
}
