package deck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Label returns the suit name, e.g. "Spades"
func (s Suit) Label() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// Emoji returns the emoji presentation of the suit symbol
func (s Suit) Emoji() string {
	return s.String() + "\ufe0f"
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank. Aces are 1.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank label ("A", "2".."10", "J", "Q", "K")
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// Valid reports whether r is within Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ID returns the card's position-independent identifier, suit*13+rank
func (c Card) ID() int {
	return int(c.Suit)*13 + int(c.Rank)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsBlack returns true if the card is black
func (c Card) IsBlack() bool {
	return c.Suit == Spades || c.Suit == Clubs
}

// Color returns "red" or "black"
func (c Card) Color() string {
	if c.IsRed() {
		return "red"
	}
	return "black"
}

// Label returns the long label, e.g. "A of Spades"
func (c Card) Label() string {
	return c.Rank.String() + " of " + c.Suit.Label()
}

// ShortLabel returns the emoji label, e.g. "♠️ A"
func (c Card) ShortLabel() string {
	return c.Suit.Emoji() + " " + c.Rank.String()
}

// Unicode returns the code point from the Playing Cards block.
//
// The block is laid out as 0x1F0A0 + suit*16 + rank, with Spades, Hearts,
// Diamonds, Clubs in that order. A Knight sits between Jack and Queen, so
// Queen and King are shifted up by one.
func (c Card) Unicode() rune {
	pt := 0x1F000 + (int(c.Suit)+10)*16 + int(c.Rank)
	if c.Rank == Queen || c.Rank == King {
		pt++
	}
	return rune(pt)
}

// BetterThan reports whether c beats other. Aces beat every other rank,
// otherwise the higher rank wins. Suits never matter.
func (c Card) BetterThan(other Card) bool {
	if c.Rank == Ace {
		return other.Rank != Ace
	}
	if other.Rank == Ace {
		return false
	}
	return c.Rank > other.Rank
}

// EqualTo reports whether the cards tie, which is by rank only
func (c Card) EqualTo(other Card) bool {
	return c.Rank == other.Rank
}

// ParseCard parses a card such as "As", "10h", "Td" or "Q♣"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}
	suitRune, size := utf8.DecodeLastRuneInString(s)
	suit, ok := parseSuit(suitRune)
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}
	rank, ok := parseRank(s[:len(s)-size])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in %q", s)
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a run of cards, either contiguous ("AsKs10h") or
// separated by spaces or commas ("As, Ks, 10h").
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	rest := s
	for {
		rest = strings.TrimLeft(rest, " ,\t\n")
		if rest == "" {
			return cards, nil
		}
		n := 1
		if strings.HasPrefix(rest, "10") {
			n = 2
		}
		if len(rest) <= n {
			return nil, fmt.Errorf("truncated card %q", rest)
		}
		_, size := utf8.DecodeRuneInString(rest[n:])
		card, err := ParseCard(rest[:n+size])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		rest = rest[n+size:]
	}
}

// MustParseCards is ParseCards that panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 'c', 'C', '♣':
		return Clubs, true
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return Ace, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}
