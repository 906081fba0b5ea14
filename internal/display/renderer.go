// Package display replays a finished game of War on a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/DingoEatingFuzz/war/internal/deck"
	"github.com/DingoEatingFuzz/war/internal/history"
	"github.com/DingoEatingFuzz/war/internal/war"
)

// Renderer writes one line per round followed by a summary
type Renderer struct {
	w       io.Writer
	lg      *lipgloss.Renderer
	noColor bool
	styles  styles
}

// Option configures a Renderer
type Option func(*Renderer)

// WithNoColor disables all styling
func WithNoColor() Option {
	return func(r *Renderer) {
		r.noColor = true
	}
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	r.lg = lipgloss.NewRenderer(w)
	if r.noColor {
		r.lg.SetColorProfile(termenv.Ascii)
	}
	r.styles = newStyles(r.lg)
	return r
}

// Card renders a card in its suit colour
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.styles.redCard.Render(c.String())
	}
	return r.styles.blackCard.Render(c.String())
}

// Header writes the game banner
func (r *Renderer) Header(e *war.Engine, seed int64) error {
	banner := fmt.Sprintf(" WAR  %d players  shuffle=%s  seed=%d ", len(e.Players()), e.Shuffle(), seed)
	if e.ID() != "" {
		banner += " game=" + e.ID() + " "
	}
	_, err := fmt.Fprintln(r.w, r.styles.header.Render(banner))
	return err
}

// Round writes a single round, e.g.
//
//	#12    P0 5♦ P1 5♣ WAR P0 J♦(4) P1 2♣(4) => P0 takes 10
func (r *Renderer) Round(n int, round *war.Round) error {
	var b strings.Builder
	b.WriteString(r.styles.round.Render(fmt.Sprintf("#%-5d", n)))
	for i, match := range round.Matches {
		if i > 0 {
			b.WriteString(" " + r.styles.war.Render("WAR"))
		}
		for _, play := range match.Plays {
			fmt.Fprintf(&b, " P%d %s", play.Player.Position, r.Card(play.ActiveCard()))
			if play.IsWar() {
				fmt.Fprintf(&b, "(%d)", len(play.Cards))
			}
		}
	}
	if round.Winner != nil {
		b.WriteString(" => " + r.styles.winner.Render(fmt.Sprintf("P%d takes %d", round.Winner.Position, len(round.Cards()))))
	}
	_, err := fmt.Fprintln(r.w, b.String())
	return err
}

// Replay writes every round of a game in order
func (r *Renderer) Replay(h war.History) error {
	for i, round := range h {
		if err := r.Round(i+1, round); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the outcome and the shape of the game
func (r *Renderer) Summary(e *war.Engine, h war.History) error {
	s := history.Summarize(h)

	var outcome string
	switch {
	case e.Winner() != nil:
		outcome = r.styles.winner.Render(fmt.Sprintf("Player %d wins after %d rounds", e.Winner().Position, s.Rounds))
	case e.Draw():
		outcome = r.styles.draw.Render(fmt.Sprintf("Draw after %d rounds", s.Rounds))
	default:
		outcome = r.styles.draw.Render("No cards were dealt")
	}

	detail := r.styles.info.Render(fmt.Sprintf("wars=%d longest=%d biggest_pot=%d", s.Wars, s.LongestWar, s.BiggestPot))
	_, err := fmt.Fprintf(r.w, "%s  %s\n", outcome, detail)
	return err
}
