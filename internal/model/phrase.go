package model

// PhraseID identifies a phrase within a room. IDs are assigned from a
// per-room monotonic counter, so original and fake phrases share one
// ID space.
type PhraseID int

// Phrase is a piece of submitted text, either an original phrase
// written during the phrase-making phase or a fake written during a
// round. Immutable once created.
type Phrase struct {
	ID       PhraseID
	AuthorID PlayerID
	Text     string
}

// Vote records one player's guess at which phrase is the original.
type Vote struct {
	PlayerID PlayerID
	PhraseID PhraseID
}

// DrawingAssignment pairs an illustrator with the phrase they must
// draw. Exactly one assignment per player once drawing begins; never
// the player's own phrase.
type DrawingAssignment struct {
	PlayerID PlayerID
	PhraseID PhraseID
}

// PlayerDrawing associates a submitted drawing with its illustrator.
type PlayerDrawing struct {
	PlayerID PlayerID
	Drawing  Drawing
}
