// Package assign computes who draws whose phrase and whose round
// comes next. Both routines are pure given a Random source; callers
// only rely on the structural guarantees, never on specific outcomes.
package assign

import (
	"github.com/tmazur/sketchbluff/internal/dependencies/random"
	"github.com/tmazur/sketchbluff/internal/model"
)

// Assignments pairs every player with another player's phrase. The
// roster is shuffled once and each position illustrates the phrase
// authored by the next position, wrapping at the end, so the
// assignment graph is a single cycle over the whole roster: full
// coverage, no self-assignment, every phrase drawn exactly once.
func Assignments(players []model.PlayerID, phrases []model.Phrase, rnd random.Random) ([]model.DrawingAssignment, error) {
	order := make([]model.PlayerID, len(players))
	copy(order, players)
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	byAuthor := make(map[model.PlayerID]model.PhraseID, len(phrases))
	for _, p := range phrases {
		byAuthor[p.AuthorID] = p.ID
	}

	assignments := make([]model.DrawingAssignment, 0, len(order))
	for i, authorID := range order {
		phraseID, ok := byAuthor[authorID]
		if !ok {
			return nil, model.ErrPhraseNotFound
		}
		illustrator := order[(i+1)%len(order)]
		assignments = append(assignments, model.DrawingAssignment{
			PlayerID: illustrator,
			PhraseID: phraseID,
		})
	}
	return assignments, nil
}

// NextIllustrator picks uniformly among players whose round has not
// happened yet. The second return is false when the roster is
// exhausted and the game should end.
func NextIllustrator(pending []model.PlayerID, rnd random.Random) (model.PlayerID, bool) {
	if len(pending) == 0 {
		return 0, false
	}
	return pending[rnd.Intn(len(pending))], true
}
