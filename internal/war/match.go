package war

import (
	"github.com/DingoEatingFuzz/war/internal/deck"
)

// Match is one simultaneous comparison of active cards
type Match struct {
	Plays []*Play
}

// NewMatch creates a match from plays in seat order
func NewMatch(plays []*Play) *Match {
	return &Match{Plays: plays}
}

// Winners returns the plays holding the best active card. More than one
// winner is a tie and sends the tied players to war.
func (m *Match) Winners() []*Play {
	var winners []*Play
	for _, play := range m.Plays {
		switch {
		case len(winners) == 0 || play.ActiveCard().BetterThan(winners[0].ActiveCard()):
			winners = []*Play{play}
		case play.ActiveCard().EqualTo(winners[0].ActiveCard()):
			winners = append(winners, play)
		}
	}
	return winners
}

// PlayFor returns the play made by player, or nil if it did not play
func (m *Match) PlayFor(player *Player) *Play {
	for _, play := range m.Plays {
		if play.Player == player {
			return play
		}
	}
	return nil
}

// Cards returns every card played in the match
func (m *Match) Cards() []deck.Card {
	var cards []deck.Card
	for _, play := range m.Plays {
		cards = append(cards, play.Cards...)
	}
	return cards
}
