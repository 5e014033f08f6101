package model

// RoundState represents the phase of a single round
type RoundState string

const (
	RoundCollectingFakePhrases RoundState = "collecting_fake_phrases"
	RoundVoting                RoundState = "voting"
	RoundResultsShown          RoundState = "results_shown"
)

// Round is one illustrator's cycle: the table writes fake phrases for
// the illustrator's drawing, votes on which phrase is the original,
// and sees the results. The illustrator and the original phrase's
// author are protected for the round: they neither contribute fakes
// nor vote.
type Round struct {
	State            RoundState
	IllustratorID    PlayerID
	OriginalPhraseID PhraseID
	Drawing          Drawing
	FakePhrases      []Phrase
	Votes            []Vote
}

// NewRound starts a round in the fake-phrase collection state.
func NewRound(illustrator PlayerID, originalPhrase PhraseID, drawing Drawing) *Round {
	return &Round{
		State:            RoundCollectingFakePhrases,
		IllustratorID:    illustrator,
		OriginalPhraseID: originalPhrase,
		Drawing:          drawing,
		FakePhrases:      []Phrase{},
		Votes:            []Vote{},
	}
}

// IsProtected reports whether the player holds a protected role this
// round, given the original phrase's author. Checked as a single set
// so the result cannot depend on filter ordering.
func (r *Round) IsProtected(id PlayerID, originalAuthor PlayerID) bool {
	return id == r.IllustratorID || id == originalAuthor
}

// HasFakePhraseFrom reports whether the player already contributed a
// fake phrase this round.
func (r *Round) HasFakePhraseFrom(id PlayerID) bool {
	for _, p := range r.FakePhrases {
		if p.AuthorID == id {
			return true
		}
	}
	return false
}

// HasVoteFrom reports whether the player already voted this round.
func (r *Round) HasVoteFrom(id PlayerID) bool {
	for _, v := range r.Votes {
		if v.PlayerID == id {
			return true
		}
	}
	return false
}

// CandidatePhrases returns every phrase a voter may pick: the fakes
// in submission order followed by the original.
func (r *Round) CandidatePhrases(original Phrase) []Phrase {
	phrases := make([]Phrase, 0, len(r.FakePhrases)+1)
	phrases = append(phrases, r.FakePhrases...)
	phrases = append(phrases, original)
	return phrases
}

// CandidateByAuthor finds the candidate phrase written by the given
// player, or nil if that player has no phrase in this round.
func (r *Round) CandidateByAuthor(original Phrase, author PlayerID) *Phrase {
	for _, p := range r.CandidatePhrases(original) {
		if p.AuthorID == author {
			ph := p
			return &ph
		}
	}
	return nil
}

// FakePhraseByID finds a submitted fake phrase by ID, or nil.
func (r *Round) FakePhraseByID(id PhraseID) *Phrase {
	for i := range r.FakePhrases {
		if r.FakePhrases[i].ID == id {
			return &r.FakePhrases[i]
		}
	}
	return nil
}
