package bot

import (
	"fmt"
	"sort"

	"github.com/jason-s-yu/euchre/engine"
)

// situation is the snapshot of derived facts the card-play rules consult.
// It is computed once per decision, in four groups: team facts, trump
// facts, off-suit facts and trick facts.
type situation struct {
	seat  engine.Seat
	trump engine.Suit
	hand  []engine.Card
	legal []engine.Card // legal plays, sorted ascending by RankValue

	// Team facts.
	isMaker        bool
	partnerIsMaker bool
	isDefender     bool
	alone          bool // this seat is a lone maker
	leading        bool
	lastToAct      bool
	partnerPlayed  bool
	partnerWinning bool

	// Trump facts.
	trumpHeld      []engine.Card // sorted ascending by RankValue
	holdsRight     bool
	holdsLeft      bool
	rightSeen      bool // right bower already played or turned down
	leftSeen       bool
	holdsBossTrump bool // highest trump still unaccounted for is in hand

	// Off-suit facts.
	offSuit       []engine.Card // sorted ascending by RankValue
	offAces       []engine.Card
	partnerLedAce bool // partner led an off-suit ace this trick

	// Trick facts.
	leadCard    *engine.Card
	leadIsTrump bool
	mustFollow  bool
	winning     []engine.Card // legal cards that take the trick as it stands
	losing      []engine.Card
	teamTricks  int
	oppTricks   int
	ledSuits    []engine.Suit // effective suits led this hand, in order
}

// newSituation derives the snapshot for the seat the engine is waiting
// on for a card.
func newSituation(g *engine.Game) (*situation, error) {
	seat, kind := g.Awaiting()
	if kind != engine.InputCard {
		return nil, fmt.Errorf("%w: no card play awaited", engine.ErrInvalidStateTransition)
	}
	trick := g.CurrentTrick()
	if trick == nil {
		return nil, fmt.Errorf("%w: no trick in progress", engine.ErrMissingContext)
	}
	legal, err := g.LegalPlays(seat)
	if err != nil {
		return nil, err
	}
	if len(legal) == 0 {
		return nil, fmt.Errorf("%w: seat %d has no legal plays", engine.ErrInvariantViolation, seat)
	}

	trump := g.Trump
	partner := seat.Partner()
	s := &situation{
		seat:     g.Player(seat).Seat,
		trump:    trump,
		hand:     append([]engine.Card(nil), g.Player(seat).Hand...),
		legal:    sortByRank(legal, trump),
		ledSuits: g.LedSuits(),
	}

	// Team facts.
	s.isMaker = g.Maker == seat
	s.partnerIsMaker = g.Maker == partner && g.SittingOut != seat
	s.isDefender = !s.isMaker && !s.partnerIsMaker
	s.alone = s.isMaker && g.Loner
	s.leading = len(trick.Plays) == 0
	s.lastToAct = len(trick.Plays) == g.ActiveSeatCount()-1
	for _, p := range trick.Plays {
		if p.Seat == partner {
			s.partnerPlayed = true
		}
	}
	if len(trick.Plays) > 0 {
		if w, err := engine.TrickWinner(*trick, trump); err == nil && w == partner {
			s.partnerWinning = true
		}
	}

	// Trump facts.
	right := engine.Card{Suit: trump, Rank: engine.Jack}
	left := engine.Card{Suit: trump.SameColorSuit(), Rank: engine.Jack}
	for _, c := range s.hand {
		if engine.IsTrump(c, trump) {
			s.trumpHeld = append(s.trumpHeld, c)
		}
	}
	s.trumpHeld = sortByRank(s.trumpHeld, trump)
	s.holdsRight = containsCard(s.hand, right)
	s.holdsLeft = containsCard(s.hand, left)
	s.rightSeen = g.CardSeen(right)
	s.leftSeen = g.CardSeen(left)
	s.holdsBossTrump = bossTrumpHeld(g, s)

	// Off-suit facts.
	for _, c := range s.hand {
		if engine.IsTrump(c, trump) {
			continue
		}
		s.offSuit = append(s.offSuit, c)
		if c.Rank == engine.Ace {
			s.offAces = append(s.offAces, c)
		}
	}
	s.offSuit = sortByRank(s.offSuit, trump)

	// Trick facts.
	if lead, ok := trick.LeadCard(); ok {
		c := lead
		s.leadCard = &c
		s.leadIsTrump = engine.IsTrump(lead, trump)
		if trick.Leader == partner && lead.Rank == engine.Ace && !s.leadIsTrump {
			s.partnerLedAce = true
		}
		s.mustFollow = g.Rules.EnforceFollowSuit &&
			g.Player(seat).HoldsSuit(engine.EffectiveSuit(lead, trump), trump)
	}
	for _, c := range s.legal {
		if wouldWin(*trick, seat, c, trump) {
			s.winning = append(s.winning, c)
		} else {
			s.losing = append(s.losing, c)
		}
	}
	s.teamTricks = g.TricksWon(seat.Team())
	s.oppTricks = g.TricksWon(seat.Team().Other())

	return s, nil
}

// wouldWin reports whether playing c now would take the trick as it
// currently stands.
func wouldWin(t engine.Trick, seat engine.Seat, c engine.Card, trump engine.Suit) bool {
	t.Plays = append(append([]engine.Play(nil), t.Plays...), engine.Play{Seat: seat, Card: c})
	w, err := engine.TrickWinner(t, trump)
	return err == nil && w == seat
}

// bossTrumpHeld reports whether the seat holds the highest trump not yet
// accounted for. The bowers resolve through the snapshot's held/seen
// facts; plain trump above the held high through the public card
// history.
func bossTrumpHeld(g *engine.Game, s *situation) bool {
	if len(s.trumpHeld) == 0 {
		return false
	}
	switch {
	case s.holdsRight:
		return true
	case !s.rightSeen:
		return false
	case s.holdsLeft:
		return true
	case !s.leftSeen:
		return false
	}
	high := s.trumpHeld[len(s.trumpHeld)-1]
	for _, c := range trumpLadder(s.trump) {
		if c.Rank == engine.Jack {
			continue
		}
		if engine.RankValue(c, s.trump) <= engine.RankValue(high, s.trump) {
			continue
		}
		if !g.CardSeen(c) && !containsCard(s.hand, c) {
			return false
		}
	}
	return true
}

// trumpLadder returns every card counting as trump for the suit.
func trumpLadder(trump engine.Suit) []engine.Card {
	cards := make([]engine.Card, 0, 7)
	for _, r := range engine.Ranks {
		cards = append(cards, engine.Card{Suit: trump, Rank: r})
	}
	cards = append(cards, engine.Card{Suit: trump.SameColorSuit(), Rank: engine.Jack})
	return cards
}

// sortByRank returns the cards ordered ascending by RankValue for the
// trump suit.
func sortByRank(cards []engine.Card, trump engine.Suit) []engine.Card {
	out := append([]engine.Card(nil), cards...)
	sort.Slice(out, func(i, j int) bool {
		return engine.RankValue(out[i], trump) < engine.RankValue(out[j], trump)
	})
	return out
}

func containsCard(cards []engine.Card, c engine.Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// lowest and highest assume a non-empty ascending-sorted slice.
func lowest(cards []engine.Card) engine.Card  { return cards[0] }
func highest(cards []engine.Card) engine.Card { return cards[len(cards)-1] }
