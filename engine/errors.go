package engine

import "errors"

// Error kinds returned by engine operations. All are recoverable by the
// caller and are matched with errors.Is. ErrInvariantViolation and
// ErrNoDecision indicate engine defects rather than bad input and are
// worth logging loudly.
var (
	// ErrInvalidStateTransition is returned when an action is attempted in
	// the wrong phase, e.g. playing a card before bidding resolves.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrMissingContext is returned when dealer, trump or current player is
	// queried before being established.
	ErrMissingContext = errors.New("missing context")

	// ErrIllegalCard is returned when a card is not in hand, already played,
	// or violates mandatory follow-suit.
	ErrIllegalCard = errors.New("illegal card")

	// ErrInvariantViolation is returned when a card-count or uniqueness
	// invariant breaks. This is an engine bug, not user error.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNoDecision is returned when a heuristic rule list reaches an
	// unhandled branch instead of naming a card.
	ErrNoDecision = errors.New("no decision")
)
