// Package scoring turns a completed round's votes into point deltas.
package scoring

import "github.com/tmazur/sketchbluff/internal/model"

// Service computes per-round score changes
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// RoundDeltas computes the point changes earned by a round's votes.
// A vote for the original phrase credits the illustrator, not the
// phrase's author: guessing the truth means the drawing was
// convincing. Any other vote credits the author of the fake phrase it
// picked. Deltas are always non-negative; scores never decrease.
func (s *Service) RoundDeltas(round *model.Round, originalPhrase model.Phrase) map[model.PlayerID]int {
	deltas := make(map[model.PlayerID]int)
	for _, vote := range round.Votes {
		if vote.PhraseID == round.OriginalPhraseID {
			deltas[round.IllustratorID]++
			continue
		}
		if fake := round.FakePhraseByID(vote.PhraseID); fake != nil {
			deltas[fake.AuthorID]++
		}
	}
	return deltas
}
