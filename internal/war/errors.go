package war

import "errors"

var (
	// ErrEmptyHand is returned when a player with no cards is asked to deal.
	ErrEmptyHand = errors.New("cannot deal with an empty hand")

	// ErrInvariant marks a broken engine invariant. A game that returns it
	// must be discarded.
	ErrInvariant = errors.New("engine invariant violated")

	// ErrInvalidConfig is returned for engines that cannot be constructed.
	ErrInvalidConfig = errors.New("invalid game configuration")
)
