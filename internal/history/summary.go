package history

import (
	"github.com/DingoEatingFuzz/war/internal/war"
)

// Summary describes the shape of a finished game
type Summary struct {
	Rounds     int
	Wars       int
	LongestWar int // most wars fought within a single round
	BiggestPot int
	RoundWins  map[int]int // rounds won per seat
	Winner     int         // seat holding every card, -1 when there is none
	Draw       bool        // the game stopped with more than one player left
}

// Summarize walks a game's history once
func Summarize(h war.History) Summary {
	s := Summary{
		Rounds:    len(h),
		RoundWins: make(map[int]int),
		Winner:    -1,
	}
	for _, r := range h {
		wars := r.Wars()
		s.Wars += wars
		if wars > s.LongestWar {
			s.LongestWar = wars
		}
		if pot := len(r.Cards()); pot > s.BiggestPot {
			s.BiggestPot = pot
		}
		if r.Winner != nil {
			s.RoundWins[r.Winner.Position]++
		}
	}
	if len(h) == 0 {
		return s
	}

	last := h[len(h)-1]
	if last.Winner != nil && holdsEverything(last) {
		s.Winner = last.Winner.Position
	} else {
		s.Draw = true
	}
	return s
}

// holdsEverything reports whether the round's winner ends it with every card.
// Hand sizes are snapshots taken before each deal, so the opening match
// accounts for every card in play.
func holdsEverything(r *war.Round) bool {
	opening := r.Matches[0].PlayFor(r.Winner)
	if opening == nil {
		return false
	}
	total := 0
	for _, p := range r.Matches[0].Plays {
		total += p.HandSize
	}
	played := 0
	for _, m := range r.Matches {
		if p := m.PlayFor(r.Winner); p != nil {
			played += len(p.Cards)
		}
	}
	return opening.HandSize-played+len(r.Cards()) == total
}
