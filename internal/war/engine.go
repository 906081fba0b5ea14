package war

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/DingoEatingFuzz/war/internal/deck"
)

// MaxRounds caps a game. Reaching it ends the game as a draw.
const MaxRounds = 10000

// warCards is how many cards each contender plays in a war: three face
// down and the face-up one.
const warCards = 4

// CardSource supplies the cards for a game. Play shuffles it and deals
// every card it returns.
type CardSource interface {
	Shuffle()
	Cards() []deck.Card
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithShuffle sets the strategy applied to every pot. Default: None.
func WithShuffle(s Shuffle) EngineOption {
	return func(e *Engine) {
		e.shuffle = s
	}
}

// WithRand sets the random source used by the pot shuffle
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithGameID tags log lines with a game identifier
func WithGameID(id string) EngineOption {
	return func(e *Engine) {
		e.id = id
	}
}

// Engine runs games of War
type Engine struct {
	source  CardSource
	players []*Player
	shuffle Shuffle
	rng     *rand.Rand
	logger  *log.Logger
	id      string
	total   int
}

// NewEngine creates an engine for playerCount players dealt from source.
// The source must split evenly between the players.
func NewEngine(source CardSource, playerCount int, opts ...EngineOption) (*Engine, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: card source is required", ErrInvalidConfig)
	}
	if playerCount < 2 {
		return nil, fmt.Errorf("%w: at least 2 players required, got %d", ErrInvalidConfig, playerCount)
	}

	e := &Engine{
		source:  source,
		shuffle: None,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.shuffle.Valid() {
		return nil, fmt.Errorf("%w: unknown shuffle strategy %d", ErrInvalidConfig, int(e.shuffle))
	}
	size := len(source.Cards())
	if size == 0 || size%playerCount != 0 {
		return nil, fmt.Errorf("%w: %d cards cannot be dealt evenly to %d players", ErrInvalidConfig, size, playerCount)
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	e.logger = e.logger.WithPrefix("war")
	if e.id != "" {
		e.logger = e.logger.With("game", e.id)
	}

	e.players = make([]*Player, playerCount)
	for i := range e.players {
		e.players[i] = NewPlayer(i)
	}
	return e, nil
}

// Players returns the players in seat order
func (e *Engine) Players() []*Player {
	return e.players
}

// ID returns the game identifier set with WithGameID
func (e *Engine) ID() string {
	return e.id
}

// Shuffle returns the pot strategy in use
func (e *Engine) Shuffle() Shuffle {
	return e.shuffle
}

// Winner returns the only player holding cards, or nil if the game has not
// been played or ended in a draw.
func (e *Engine) Winner() *Player {
	var winner *Player
	for _, p := range e.players {
		if !p.HasCards() {
			continue
		}
		if winner != nil {
			return nil
		}
		winner = p
	}
	return winner
}

// Draw reports whether the last game stopped at the round cap
func (e *Engine) Draw() bool {
	return e.total > 0 && e.Winner() == nil
}

// Play shuffles the source, deals it and plays rounds until one player
// holds every card or MaxRounds is reached. A game that hits the cap is a
// draw; its history is still complete up to that point.
func (e *Engine) Play() (History, error) {
	e.source.Shuffle()
	e.deal(e.source.Cards())

	e.logger.Debug("Starting game", "players", len(e.players), "cards", e.total, "shuffle", e.shuffle)

	history := make(History, 0, 64)
	for e.playersRemaining() > 1 && len(history) < MaxRounds {
		round, err := e.playRound()
		if err != nil {
			return history, fmt.Errorf("round %d: %w", len(history)+1, err)
		}
		history = append(history, round)

		if err := e.validateConservation(); err != nil {
			e.logger.Error("Card conservation violation detected!", "error", err, "round", len(history))
			return history, fmt.Errorf("round %d: %w", len(history), err)
		}
		e.logger.Debug("Round complete",
			"round", len(history),
			"winner", round.Winner.Position,
			"wars", round.Wars(),
			"pot", len(round.Cards()))
	}

	if winner := e.Winner(); winner != nil {
		e.logger.Info("Game won", "winner", winner.Position, "rounds", len(history), "wars", history.Wars())
	} else {
		e.logger.Info("Game drawn at round cap", "rounds", len(history), "remaining", e.playersRemaining())
	}
	return history, nil
}

// deal hands out cards round-robin; later cards end up on top.
func (e *Engine) deal(cards []deck.Card) {
	for _, p := range e.players {
		p.reset()
	}
	for i, card := range cards {
		e.players[i%len(e.players)].push(card)
	}
	e.total = len(cards)
}

func (e *Engine) playRound() (*Round, error) {
	round := &Round{}

	contenders := make([]*Player, 0, len(e.players))
	for _, p := range e.players {
		if p.HasCards() {
			contenders = append(contenders, p)
		}
	}

	plays := make([]*Play, 0, len(contenders))
	for _, p := range contenders {
		hand := p.Hand()
		card, err := p.Deal()
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %w", ErrInvariant, p.Position, err)
		}
		plays = append(plays, NewPlay(p, hand, card))
	}
	match := NewMatch(plays)
	round.Matches = append(round.Matches, match)
	winners := match.Winners()

	for len(winners) > 1 {
		var warPlays []*Play
		for _, w := range winners {
			p := w.Player
			if !p.HasCards() {
				continue
			}
			hand := p.Hand()
			warPlays = append(warPlays, NewPlay(p, hand, p.DealUpTo(warCards)...))
		}

		if len(warPlays) == 0 {
			// Every tied player is out of cards. Award the pot to the first.
			e.logger.Debug("War abandoned, no tied player holds cards", "tied", len(winners))
			winners = winners[:1]
			break
		}

		match := NewMatch(warPlays)
		round.Matches = append(round.Matches, match)
		winners = match.Winners()
	}

	if len(winners) == 0 {
		return nil, fmt.Errorf("%w: match produced no winner", ErrInvariant)
	}
	round.Winner = winners[0].Player
	round.Winner.Win(e.shuffle.Apply(round.Cards(), e.rng))
	return round, nil
}

func (e *Engine) playersRemaining() int {
	n := 0
	for _, p := range e.players {
		if p.HasCards() {
			n++
		}
	}
	return n
}

// validateConservation checks that no card was lost or duplicated
func (e *Engine) validateConservation() error {
	held := 0
	for _, p := range e.players {
		held += p.Len()
	}
	if held != e.total {
		return fmt.Errorf("%w: players hold %d cards, expected %d", ErrInvariant, held, e.total)
	}
	return nil
}
