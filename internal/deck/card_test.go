package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DingoEatingFuzz/war/internal/randutil"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "contiguous",
			input: "AsKsQsJs10s",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "separated mixed suits",
			input: "Ah, Kd Qc, Td",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{
			name:  "symbols",
			input: "2♠3♥4♦5♣",
			expected: []Card{
				{Suit: Spades, Rank: Two},
				{Suit: Hearts, Rank: Three},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Five},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "truncated",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCards(t *testing.T) {
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestAceBeatsEveryOtherRank(t *testing.T) {
	t.Parallel()
	ace := NewCard(Spades, Ace)
	for r := Two; r <= King; r++ {
		other := NewCard(Hearts, r)
		assert.True(t, ace.BetterThan(other), "A should beat %s", other)
		assert.False(t, other.BetterThan(ace), "%s should not beat A", other)
	}
}

func TestAcesTie(t *testing.T) {
	t.Parallel()
	for s := Spades; s <= Clubs; s++ {
		for o := Spades; o <= Clubs; o++ {
			a, b := NewCard(s, Ace), NewCard(o, Ace)
			assert.False(t, a.BetterThan(b), "%s should not beat %s", a, b)
			assert.True(t, a.EqualTo(b))
		}
	}
}

func TestBetterThanIsNumericWithoutAces(t *testing.T) {
	t.Parallel()
	for a := Two; a <= King; a++ {
		for b := Two; b <= King; b++ {
			got := NewCard(Clubs, a).BetterThan(NewCard(Diamonds, b))
			assert.Equal(t, a > b, got, "%s vs %s", a, b)
		}
	}
}

func TestEqualToIgnoresSuit(t *testing.T) {
	t.Parallel()
	for r := Ace; r <= King; r++ {
		for s := Spades; s <= Clubs; s++ {
			for o := Spades; o <= Clubs; o++ {
				assert.True(t, NewCard(s, r).EqualTo(NewCard(o, r)))
			}
		}
	}
	assert.False(t, NewCard(Spades, Two).EqualTo(NewCard(Spades, Three)))
}

func TestCardLabels(t *testing.T) {
	t.Parallel()
	c := NewCard(Hearts, Queen)
	assert.Equal(t, "Q♥", c.String())
	assert.Equal(t, "Q of Hearts", c.Label())
	assert.Equal(t, "♥\ufe0f Q", c.ShortLabel())
	assert.Equal(t, "red", c.Color())
	assert.True(t, c.IsRed())
	assert.False(t, c.IsBlack())
	assert.Equal(t, 1*13+12, c.ID())

	ten := NewCard(Clubs, Ten)
	assert.Equal(t, "10♣", ten.String())
	assert.Equal(t, "black", ten.Color())
}

func TestUnicode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want rune
	}{
		{NewCard(Spades, Ace), 0x1F0A1},
		{NewCard(Spades, Jack), 0x1F0AB},
		{NewCard(Spades, Queen), 0x1F0AD},
		{NewCard(Spades, King), 0x1F0AE},
		{NewCard(Hearts, Ace), 0x1F0B1},
		{NewCard(Diamonds, Ten), 0x1F0CA},
		{NewCard(Clubs, King), 0x1F0DE},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.Unicode(), tt.card.String())
	}
}

func TestNewDeckOrder(t *testing.T) {
	t.Parallel()
	d := NewDeck(nil)
	cards := d.Cards()
	require.Len(t, cards, Size)
	assert.Equal(t, NewCard(Spades, Ace), cards[0])
	assert.Equal(t, NewCard(Spades, King), cards[12])
	assert.Equal(t, NewCard(Hearts, Ace), cards[13])
	assert.Equal(t, NewCard(Clubs, King), cards[51])
}

func TestShuffleKeepsEveryCard(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(7))
	d.Shuffle()

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, Size)
	assert.NotEqual(t, NewDeck(nil).Cards(), d.Cards())
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(99))
	b := NewDeck(randutil.New(99))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestStackedIgnoresShuffle(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("2s3s4s")
	s := NewStacked(cards)
	s.Shuffle()
	assert.Equal(t, cards, s.Cards())
	assert.Equal(t, 3, s.Len())

	out := s.Cards()
	out[0] = NewCard(Clubs, King)
	assert.Equal(t, cards, s.Cards(), "Cards must return a copy")
}
