// Package war implements the engine for the card game War.
//
// The main type is Engine, which owns the players, deals a card source
// round-robin and plays rounds until one player holds every card or the
// round cap is reached. The result is a History: every Round, every Match
// inside it and every Play that went into each Match.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	e, err := war.NewEngine(deck.NewDeck(rng), 2,
//	    war.WithShuffle(war.FisherYates),
//	    war.WithRand(rng))
//	if err != nil {
//	    return err
//	}
//	history, err := e.Play()
//
// # Rounds
//
// A Round opens with every player that still holds cards playing its top
// card. When the best cards tie, the tied players go to war: each plays up
// to four cards and the last one is compared. Wars repeat until a single
// Play wins. The pot is then passed through the engine's Shuffle and put
// at the bottom of the winner's hand.
//
// # Deterministic Testing
//
// Use deck.NewStacked for a fixed deal order, the None shuffle to keep pots
// in play order, and randutil.New for any strategy that needs randomness.
package war
