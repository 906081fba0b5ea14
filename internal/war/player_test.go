package war

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DingoEatingFuzz/war/internal/deck"
)

func TestPlayerDealEmptyHand(t *testing.T) {
	t.Parallel()
	p := NewPlayer(0)
	_, err := p.Deal()
	assert.ErrorIs(t, err, ErrEmptyHand)
	assert.False(t, p.HasCards())
}

func TestPlayerDealsFromTop(t *testing.T) {
	t.Parallel()
	p := NewPlayer(0)
	p.SetHand(deck.MustParseCards("As 2h 3d"))

	card, err := p.Deal()
	require.NoError(t, err)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Ace), card)
	assert.Equal(t, 2, p.Len())
}

func TestPlayerWinGoesToBottom(t *testing.T) {
	t.Parallel()
	p := NewPlayer(1)
	p.SetHand(deck.MustParseCards("Ks Qs"))
	p.Win(deck.MustParseCards("2c 3c"))

	var dealt []deck.Card
	for p.HasCards() {
		card, err := p.Deal()
		require.NoError(t, err)
		dealt = append(dealt, card)
	}
	// Held cards first, then the won cards from the far end.
	assert.Equal(t, deck.MustParseCards("Ks Qs 3c 2c"), dealt)
}

func TestPlayerDealUpTo(t *testing.T) {
	t.Parallel()
	p := NewPlayer(0)
	p.SetHand(deck.MustParseCards("2s 3s"))

	cards := p.DealUpTo(4)
	assert.Equal(t, deck.MustParseCards("2s 3s"), cards)
	assert.Empty(t, p.DealUpTo(4))
}

func TestNewPlaySnapshotsHand(t *testing.T) {
	t.Parallel()
	p := NewPlayer(0)
	p.SetHand(deck.MustParseCards("5s 6s 7s"))

	hand := p.Hand()
	card, err := p.Deal()
	require.NoError(t, err)
	play := NewPlay(p, hand, card)

	assert.Equal(t, 3, play.HandSize)
	assert.Len(t, play.Hand, 3)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Five), play.ActiveCard())

	p.Win(deck.MustParseCards("Ah Kh"))
	hand[0] = deck.NewCard(deck.Clubs, deck.King)
	assert.Equal(t, 3, play.HandSize)
	assert.Equal(t, deck.MustParseCards("7s 6s 5s"), play.Hand, "snapshot must not follow later changes")
}

func TestActiveCardIsLast(t *testing.T) {
	t.Parallel()
	play := NewPlay(NewPlayer(0), nil, deck.MustParseCards("2s 3s 4s Jd")...)
	assert.Equal(t, deck.NewCard(deck.Diamonds, deck.Jack), play.ActiveCard())
	assert.True(t, play.IsWar())
}
