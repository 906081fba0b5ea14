package war

import (
	"github.com/DingoEatingFuzz/war/internal/deck"
)

// Round is a full resolution from the first reveal to a single winner.
// It holds one Match, plus one more for every war.
type Round struct {
	Matches []*Match
	Winner  *Player
}

// LastMatch returns the deciding match, or nil for an empty round
func (r *Round) LastMatch() *Match {
	if len(r.Matches) == 0 {
		return nil
	}
	return r.Matches[len(r.Matches)-1]
}

// Cards returns the pot: every card played in the round, match by match
func (r *Round) Cards() []deck.Card {
	var cards []deck.Card
	for _, match := range r.Matches {
		cards = append(cards, match.Cards()...)
	}
	return cards
}

// Wars returns how many times the round escalated
func (r *Round) Wars() int {
	if len(r.Matches) == 0 {
		return 0
	}
	return len(r.Matches) - 1
}

// WinnerPosition returns the winner's seat, or -1 while unresolved
func (r *Round) WinnerPosition() int {
	if r.Winner == nil {
		return -1
	}
	return r.Winner.Position
}

// History is the ordered list of completed rounds of a game
type History []*Round

// Wars returns the total number of wars fought
func (h History) Wars() int {
	wars := 0
	for _, r := range h {
		wars += r.Wars()
	}
	return wars
}

// Winners returns the seat that won each round, in order
func (h History) Winners() []int {
	winners := make([]int, len(h))
	for i, r := range h {
		winners[i] = r.WinnerPosition()
	}
	return winners
}
