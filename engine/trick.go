package engine

import "fmt"

// Play is a single card placed on a trick.
type Play struct {
	Seat Seat
	Card Card
}

// Trick holds the cards played for one of the five rounds of a hand.
// It becomes immutable once Taker is set.
type Trick struct {
	Round  int // 1..5
	Leader Seat
	Plays  []Play
	Taker  Seat // NoSeat until the trick completes
}

// LeadCard returns the card that led the trick, if any.
func (t *Trick) LeadCard() (Card, bool) {
	if len(t.Plays) == 0 {
		return Card{}, false
	}
	return t.Plays[0].Card, true
}

// Complete reports whether every active seat has played. A lone hand has
// three active seats, otherwise four.
func (t *Trick) Complete(activeSeats int) bool {
	return len(t.Plays) >= activeSeats
}

// winner resolves the winning play of a finished (or partial) trick. The
// lead card sets the suit to beat, with the left bower counting as trump.
// Only plays of the led suit or trump contend; the highest RankValue among
// contenders wins. Ties cannot occur because ranks are unique per card.
func (t *Trick) winner(trump Suit) (Play, error) {
	if len(t.Plays) == 0 {
		return Play{}, fmt.Errorf("%w: cannot resolve an empty trick", ErrMissingContext)
	}
	leadSuit := EffectiveSuit(t.Plays[0].Card, trump)
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		s := EffectiveSuit(p.Card, trump)
		if s != leadSuit && s != trump {
			continue
		}
		if rankAgainstLead(p.Card, leadSuit, trump) > rankAgainstLead(best.Card, leadSuit, trump) {
			best = p
		}
	}
	return best, nil
}

// rankAgainstLead orders contending cards: trump by RankValue above all,
// led-suit cards by RankValue below trump. Non-contenders rank zero.
func rankAgainstLead(c Card, leadSuit, trump Suit) int {
	s := EffectiveSuit(c, trump)
	switch {
	case s == trump:
		return 100 + RankValue(c, trump)
	case s == leadSuit:
		return RankValue(c, trump)
	default:
		return 0
	}
}

// TrickWinner resolves the winning seat of a trick for the given trump
// suit. Exposed for callers replaying or inspecting trick history.
func TrickWinner(t Trick, trump Suit) (Seat, error) {
	p, err := t.winner(trump)
	if err != nil {
		return NoSeat, err
	}
	return p.Seat, nil
}
