package bot

import (
	"fmt"

	"github.com/jason-s-yu/euchre/engine"
)

// rule is one named step of a decision list. pick returns the chosen
// card and true when the rule's precondition holds. Lists are evaluated
// in order; the first match wins, so precedence is explicit in the
// table, not implied by control flow.
type rule struct {
	name string
	pick func(*situation) (engine.Card, bool)
}

// SuggestPlay selects the card for the seat the engine is waiting on,
// returning the card and the name of the rule that chose it. It is a
// pure query and never mutates game state.
//
// The rule lists are the behavioral contract: leading, following suit
// and free discards each have their own ordered table. An exhausted
// table is a logic defect and surfaces as ErrNoDecision.
func SuggestPlay(g *engine.Game, t Tuning) (engine.Card, string, error) {
	s, err := newSituation(g)
	if err != nil {
		return engine.Card{}, "", err
	}

	var rules []rule
	switch {
	case s.leading:
		rules = leadRules
	case s.mustFollow:
		rules = followRules
	default:
		rules = discardRules
	}

	for _, r := range rules {
		if c, ok := r.pick(s); ok {
			return c, r.name, nil
		}
	}
	return engine.Card{}, "", fmt.Errorf("%w: seat %d reached the end of the rule list", engine.ErrNoDecision, s.seat)
}

// leadRules choose the card that opens a trick.
var leadRules = []rule{
	{"alone-pull-trump", func(s *situation) (engine.Card, bool) {
		// A lone maker leads trump from the top to strip both defenders.
		if s.alone && len(s.trumpHeld) > 0 {
			return highest(s.trumpHeld), true
		}
		return engine.Card{}, false
	}},
	{"maker-lead-right", func(s *situation) (engine.Card, bool) {
		// The maker opens with the right bower while holding trump behind it.
		if s.isMaker && s.holdsRight && len(s.trumpHeld) >= 2 {
			return highest(s.trumpHeld), true
		}
		return engine.Card{}, false
	}},
	{"maker-pull-trump", func(s *situation) (engine.Card, bool) {
		// A trump-heavy maker keeps pulling even without the right bower.
		if s.isMaker && len(s.trumpHeld) >= 3 {
			return highest(s.trumpHeld), true
		}
		return engine.Card{}, false
	}},
	{"cash-boss-trump", func(s *situation) (engine.Card, bool) {
		// Holding the highest trump still out late in the hand, cash it.
		if s.holdsBossTrump && len(s.ledSuits) >= 3 {
			return highest(s.trumpHeld), true
		}
		return engine.Card{}, false
	}},
	{"lead-fresh-ace", func(s *situation) (engine.Card, bool) {
		// An off-suit ace in a suit nobody has led is usually good.
		for i := len(s.offAces) - 1; i >= 0; i-- {
			ace := s.offAces[i]
			led := false
			for _, suit := range s.ledSuits {
				if suit == ace.Suit {
					led = true
					break
				}
			}
			if !led {
				return ace, true
			}
		}
		return engine.Card{}, false
	}},
	{"lead-off-ace", func(s *situation) (engine.Card, bool) {
		if len(s.offAces) > 0 {
			return highest(s.offAces), true
		}
		return engine.Card{}, false
	}},
	{"partner-maker-lead-low", func(s *situation) (engine.Card, bool) {
		// Lead small off-suit at the maker partner, keeping their trump live.
		if s.partnerIsMaker && len(s.offSuit) > 0 {
			return lowest(s.offSuit), true
		}
		return engine.Card{}, false
	}},
	{"defender-lead-high-off", func(s *situation) (engine.Card, bool) {
		if s.isDefender && len(s.offSuit) > 0 {
			return highest(s.offSuit), true
		}
		return engine.Card{}, false
	}},
	{"lead-trump-endgame", func(s *situation) (engine.Card, bool) {
		// Nothing but trump left.
		if len(s.offSuit) == 0 && len(s.trumpHeld) > 0 {
			return highest(s.trumpHeld), true
		}
		return engine.Card{}, false
	}},
	{"lead-high-off", func(s *situation) (engine.Card, bool) {
		if len(s.offSuit) > 0 {
			return highest(s.offSuit), true
		}
		return engine.Card{}, false
	}},
}

// followRules choose the card when the led suit must be followed.
var followRules = []rule{
	{"follow-last-cheap-win", func(s *situation) (engine.Card, bool) {
		// Last to act: take the trick as cheaply as possible.
		if s.lastToAct && len(s.winning) > 0 && !s.partnerWinning {
			return lowest(s.winning), true
		}
		return engine.Card{}, false
	}},
	{"follow-duck-partner", func(s *situation) (engine.Card, bool) {
		// Partner already has the trick (including a led off-suit ace).
		if s.partnerWinning || s.partnerLedAce {
			return lowest(s.legal), true
		}
		return engine.Card{}, false
	}},
	{"follow-trump-lead-cheap", func(s *situation) (engine.Card, bool) {
		// On a trump lead, win as cheaply as possible and keep the
		// bigger trump behind the current winner.
		if s.leadIsTrump && len(s.winning) > 0 {
			return lowest(s.winning), true
		}
		return engine.Card{}, false
	}},
	{"follow-win-high", func(s *situation) (engine.Card, bool) {
		// Play the strongest card that currently takes the trick.
		if len(s.winning) > 0 {
			return highest(s.winning), true
		}
		return engine.Card{}, false
	}},
	{"follow-duck-low", func(s *situation) (engine.Card, bool) {
		return lowest(s.legal), true
	}},
}

// discardRules choose the card when the seat cannot follow suit: ruff
// or slough.
var discardRules = []rule{
	{"ruff-cheap-last", func(s *situation) (engine.Card, bool) {
		// Last to act and partner played but is losing: cheapest trump
		// that wins.
		if s.lastToAct && s.partnerPlayed && !s.partnerWinning && len(s.winning) > 0 {
			return lowest(s.winning), true
		}
		return engine.Card{}, false
	}},
	{"slough-under-partner", func(s *situation) (engine.Card, bool) {
		// Partner has the trick; throw off instead of wasting trump.
		if s.partnerWinning && len(s.offSuit) > 0 {
			return lowest(s.offSuit), true
		}
		return engine.Card{}, false
	}},
	{"ruff-to-win", func(s *situation) (engine.Card, bool) {
		if !s.partnerWinning && len(s.winning) > 0 {
			return lowest(s.winning), true
		}
		return engine.Card{}, false
	}},
	{"slough-low-off", func(s *situation) (engine.Card, bool) {
		if len(s.offSuit) > 0 {
			return lowest(s.offSuit), true
		}
		return engine.Card{}, false
	}},
	{"slough-low", func(s *situation) (engine.Card, bool) {
		return lowest(s.legal), true
	}},
}
