package war

import (
	"github.com/DingoEatingFuzz/war/internal/deck"
)

// Play is one player's contribution to a Match: a single card on a normal
// turn, up to four during a war.
type Play struct {
	Player *Player
	Cards  []deck.Card

	// Hand is the player's hand immediately before the cards were dealt.
	// It is only kept for replays and does not affect the game.
	Hand     []deck.Card
	HandSize int
}

// NewPlay records cards played by player. hand is copied, so later changes
// to the player's hand are not reflected in the play.
func NewPlay(player *Player, hand []deck.Card, cards ...deck.Card) *Play {
	snapshot := append([]deck.Card(nil), hand...)
	return &Play{
		Player:   player,
		Cards:    append([]deck.Card(nil), cards...),
		Hand:     snapshot,
		HandSize: len(snapshot),
	}
}

// ActiveCard returns the face-up card, which is always the last one played
func (p *Play) ActiveCard() deck.Card {
	return p.Cards[len(p.Cards)-1]
}

// IsWar reports whether this play was made during a war
func (p *Play) IsWar() bool {
	return len(p.Cards) > 1
}
