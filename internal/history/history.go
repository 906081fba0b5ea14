// Package history converts engine rounds into plain records for JSON export
// and reads them back for analysis and replays.
package history

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DingoEatingFuzz/war/internal/deck"
	"github.com/DingoEatingFuzz/war/internal/war"
)

// CardRecord is the serialized form of a card. Color, Label and Unicode are
// derived and only there for renderers; they are ignored when reading.
type CardRecord struct {
	Suite   int    `json:"suite"`
	Rank    int    `json:"rank"`
	Color   string `json:"color,omitempty"`
	Label   string `json:"label,omitempty"`
	Unicode string `json:"unicode,omitempty"`
}

// Card converts the record back into a card
func (c CardRecord) Card() deck.Card {
	return deck.NewCard(deck.Suit(c.Suite), deck.Rank(c.Rank))
}

// PlayRecord is the serialized form of a war.Play
type PlayRecord struct {
	Player   int          `json:"player"`
	HandSize int          `json:"handSize"`
	Hand     []CardRecord `json:"hand"`
	Cards    []CardRecord `json:"cards"`
}

// ActiveCard returns the face-up card of the play
func (p PlayRecord) ActiveCard() deck.Card {
	if len(p.Cards) == 0 {
		return deck.Card{}
	}
	return p.Cards[len(p.Cards)-1].Card()
}

// MatchRecord is the serialized form of a war.Match
type MatchRecord struct {
	Plays []PlayRecord `json:"plays"`
}

// PlayFor returns the play made by the player at position, or nil
func (m *MatchRecord) PlayFor(position int) *PlayRecord {
	for i := range m.Plays {
		if m.Plays[i].Player == position {
			return &m.Plays[i]
		}
	}
	return nil
}

// RoundRecord is the serialized form of a war.Round. Winner is null for a
// round that was never resolved.
type RoundRecord struct {
	Winner  *int          `json:"winner"`
	Matches []MatchRecord `json:"matches"`
}

// LastMatch returns the deciding match, or nil for an empty record
func (r *RoundRecord) LastMatch() *MatchRecord {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[len(r.Matches)-1]
}

// WinnerPosition returns the winning seat or -1
func (r *RoundRecord) WinnerPosition() int {
	if r.Winner == nil {
		return -1
	}
	return *r.Winner
}

// GameRecord is a complete exported game
type GameRecord struct {
	ID      string        `json:"id,omitempty"`
	Players int           `json:"players"`
	Shuffle string        `json:"shuffle"`
	Seed    int64         `json:"seed,omitempty"`
	Winner  *int          `json:"winner"`
	Draw    bool          `json:"draw"`
	Count   int           `json:"count"`
	Rounds  []RoundRecord `json:"rounds"`
}

// FromCard converts a card, filling in the derived rendering fields
func FromCard(c deck.Card) CardRecord {
	return CardRecord{
		Suite:   int(c.Suit),
		Rank:    int(c.Rank),
		Color:   c.Color(),
		Label:   c.ShortLabel(),
		Unicode: string(c.Unicode()),
	}
}

func fromCards(cards []deck.Card) []CardRecord {
	out := make([]CardRecord, len(cards))
	for i, c := range cards {
		out[i] = FromCard(c)
	}
	return out
}

// FromPlay converts a play
func FromPlay(p *war.Play) PlayRecord {
	return PlayRecord{
		Player:   p.Player.Position,
		HandSize: p.HandSize,
		Hand:     fromCards(p.Hand),
		Cards:    fromCards(p.Cards),
	}
}

// FromMatch converts a match
func FromMatch(m *war.Match) MatchRecord {
	plays := make([]PlayRecord, len(m.Plays))
	for i, p := range m.Plays {
		plays[i] = FromPlay(p)
	}
	return MatchRecord{Plays: plays}
}

// FromRound converts a round
func FromRound(r *war.Round) RoundRecord {
	rec := RoundRecord{Matches: make([]MatchRecord, len(r.Matches))}
	for i, m := range r.Matches {
		rec.Matches[i] = FromMatch(m)
	}
	if r.Winner != nil {
		pos := r.Winner.Position
		rec.Winner = &pos
	}
	return rec
}

// FromHistory converts every round of a game
func FromHistory(h war.History) []RoundRecord {
	out := make([]RoundRecord, len(h))
	for i, r := range h {
		out[i] = FromRound(r)
	}
	return out
}

// NewGameRecord builds the export of a game played by e
func NewGameRecord(e *war.Engine, h war.History, seed int64) GameRecord {
	rec := GameRecord{
		ID:      e.ID(),
		Players: len(e.Players()),
		Shuffle: e.Shuffle().String(),
		Seed:    seed,
		Draw:    e.Draw(),
		Count:   len(h),
		Rounds:  FromHistory(h),
	}
	if w := e.Winner(); w != nil {
		pos := w.Position
		rec.Winner = &pos
	}
	return rec
}

// MarshalRound encodes a single round
func MarshalRound(r *war.Round) ([]byte, error) {
	return json.Marshal(FromRound(r))
}

// UnmarshalRound decodes a single round
func UnmarshalRound(data []byte) (RoundRecord, error) {
	var rec RoundRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return RoundRecord{}, fmt.Errorf("failed to decode round: %w", err)
	}
	return rec, nil
}

// Encode writes the game as indented JSON
func Encode(w io.Writer, game GameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(game); err != nil {
		return fmt.Errorf("failed to encode game %s: %w", game.ID, err)
	}
	return nil
}

// Decode reads a game written by Encode
func Decode(r io.Reader) (GameRecord, error) {
	var game GameRecord
	if err := json.NewDecoder(r).Decode(&game); err != nil {
		return GameRecord{}, fmt.Errorf("failed to decode game: %w", err)
	}
	if game.Count != len(game.Rounds) {
		return GameRecord{}, fmt.Errorf("game %s: count %d does not match %d rounds", game.ID, game.Count, len(game.Rounds))
	}
	return game, nil
}
