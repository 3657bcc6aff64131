package bot

import (
	"fmt"

	"github.com/jason-s-yu/euchre/engine"
)

// BidDecision is the evaluator's answer for one bidding turn.
type BidDecision struct {
	Call  bool        // order up (round 1) or name Suit (round 2)
	Suit  engine.Suit // suit to name; NoSuit on a pass or round-1 call
	Loner bool
}

// SuggestBid evaluates the bidding position for the seat the engine is
// waiting on. It is a pure query and never mutates game state.
func SuggestBid(g *engine.Game, t Tuning) (BidDecision, error) {
	seat, kind := g.Awaiting()
	if kind != engine.InputBid {
		return BidDecision{}, fmt.Errorf("%w: no bid awaited", engine.ErrInvalidStateTransition)
	}
	hand := g.Player(seat).Hand

	if g.Phase == engine.PhaseBidRound1 {
		return suggestRound1(g, t, seat, hand), nil
	}
	return suggestRound2(g, t, seat, hand), nil
}

// suggestRound1 scores the hand with the flip suit as trump. The dealer
// additionally simulates swapping each hand card for the flip and takes
// the best resulting score, modelling the pickup option.
func suggestRound1(g *engine.Game, t Tuning, seat engine.Seat, hand []engine.Card) BidDecision {
	trump := g.Flip.Suit
	score := handStrength(hand, trump)
	if seat == g.Dealer {
		swapped := make([]engine.Card, len(hand))
		for i := range hand {
			copy(swapped, hand)
			swapped[i] = g.Flip
			if s := handStrength(swapped, trump); s > score {
				score = s
			}
		}
	}
	score += t.situationalModifier(g, seat, trump)

	switch {
	case score >= t.LonerThreshold:
		return BidDecision{Call: true, Loner: true}
	case score >= t.OrderThreshold:
		return BidDecision{Call: true}
	}
	return BidDecision{}
}

// suggestRound2 scores the hand for each of the three suits that were
// not turned down and keeps the best. The dealer is stuck and names the
// best suit regardless of threshold.
func suggestRound2(g *engine.Game, t Tuning, seat engine.Seat, hand []engine.Card) BidDecision {
	turnedDown := engine.NoSuit
	if td := g.TurnedDown; td != nil {
		turnedDown = td.Suit
	}

	bestSuit := engine.NoSuit
	bestScore := 0
	for _, suit := range engine.Suits {
		if suit == turnedDown {
			continue
		}
		if s := handStrength(hand, suit); s > bestScore {
			bestScore = s
			bestSuit = suit
		}
	}
	bestScore += t.situationalModifier(g, seat, bestSuit)

	switch {
	case bestScore >= t.LonerThreshold:
		return BidDecision{Call: true, Suit: bestSuit, Loner: true}
	case bestScore >= t.OrderThreshold || seat == g.Dealer:
		return BidDecision{Call: true, Suit: bestSuit}
	}
	return BidDecision{}
}

// SuggestDiscard picks the dealer's discard after a pickup: the card
// with the lowest rank for the named trump, which never gives up trump
// while an off-suit card remains.
func SuggestDiscard(g *engine.Game, t Tuning) (engine.Card, error) {
	seat, kind := g.Awaiting()
	if kind != engine.InputDiscard {
		return engine.Card{}, fmt.Errorf("%w: no discard awaited", engine.ErrInvalidStateTransition)
	}
	hand := g.Player(seat).Hand
	if len(hand) == 0 {
		return engine.Card{}, fmt.Errorf("%w: dealer hand is empty", engine.ErrInvariantViolation)
	}
	low := hand[0]
	for _, c := range hand[1:] {
		if engine.RankValue(c, g.Trump) < engine.RankValue(low, g.Trump) {
			low = c
		}
	}
	return low, nil
}

// handStrength sums RankValue over the hand for a candidate trump suit.
func handStrength(hand []engine.Card, trump engine.Suit) int {
	total := 0
	for _, c := range hand {
		total += engine.RankValue(c, trump)
	}
	return total
}
