// Package bot implements the heuristic AI seats: bid evaluation and
// card selection over the engine's public state. Decisions are pure
// functions of game state with no hidden randomness, so the same
// position always produces the same move.
package bot

import "github.com/jason-s-yu/euchre/engine"

// Tuning holds the thresholds the bid evaluator compares hand strength
// against. Strength is the sum of engine.RankValue over the hand for a
// candidate trump suit.
type Tuning struct {
	// OrderThreshold is the minimum strength to order up or name trump.
	OrderThreshold int
	// LonerThreshold is the minimum strength to declare a lone hand.
	LonerThreshold int
}

// DefaultTuning is the standard bot calibration. OrderThreshold admits
// hands around two solid trump plus support; LonerThreshold requires
// both bowers plus high trump.
var DefaultTuning = Tuning{
	OrderThreshold: 33,
	LonerThreshold: 55,
}

// situationalModifier adjusts a bid score for table context (seat
// position, score pressure). Extension point; contributes nothing today.
func (t Tuning) situationalModifier(g *engine.Game, seat engine.Seat, trump engine.Suit) int {
	return 0
}
