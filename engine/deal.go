package engine

import "fmt"

// Shuffle permutes the deck in place with an unbiased Fisher-Yates
// driven by the game's RNG.
func (g *Game) shuffle(deck []Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// PickDealer determines the first dealer, once per game: cards are turned
// up around the table from a shuffled deck and the first seat shown a
// jack deals. The 24-card deck holds four jacks, so this terminates.
func (g *Game) PickDealer() (Seat, error) {
	if g.Phase != PhasePickDealer {
		return NoSeat, fmt.Errorf("%w: PickDealer in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	deck := NewDeck()
	g.shuffle(deck)
	seat := Seat1
	for _, c := range deck {
		if c.Rank == Jack {
			g.Dealer = seat
			g.Phase = PhaseDeal
			return seat, nil
		}
		seat = seat.Next()
	}
	return NoSeat, fmt.Errorf("%w: no jack in deck", ErrInvariantViolation)
}

// StartDeal shuffles and deals a new hand. The dealer rotates one seat
// except for the game's first deal. Cards go out in two rounds starting
// left of the dealer: a random split k∈{2,3} with alternating seats
// receiving k then 5−k, so everyone ends with exactly five. The four
// remaining cards form the kitty and the first is flipped for bidding.
func (g *Game) StartDeal() error {
	switch g.Phase {
	case PhaseDeal:
		// first deal of the game, dealer already chosen
	case PhaseHandDone:
		g.Dealer = g.Dealer.Next()
	default:
		return fmt.Errorf("%w: StartDeal in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	if g.Dealer == NoSeat {
		return fmt.Errorf("%w: dealer not established", ErrMissingContext)
	}

	g.clearDeal()

	deck := NewDeck()
	g.shuffle(deck)

	// Per-deal random split: alternating seats get k then 5-k.
	k := 2 + g.rng.Intn(2)
	order := Rotation(g.Dealer.Next(), NoSeat)
	next := 0
	take := func(n int) []Card {
		cards := deck[next : next+n]
		next += n
		return cards
	}
	for round := 0; round < 2; round++ {
		for i, s := range order {
			n := k
			if i%2 == 1 {
				n = handSize - k
			}
			if round == 1 {
				n = handSize - n
			}
			p := g.Player(s)
			p.Hand = append(p.Hand, take(n)...)
		}
	}
	g.Kitty = append([]Card(nil), take(len(deck)-next)...)
	g.Flip = g.Kitty[0]

	g.Phase = PhaseBidRound1
	g.Current = g.Dealer.Next()
	g.bidsTaken = 0

	if err := g.checkDealInvariant(); err != nil {
		return err
	}
	g.undo = g.clone()
	return nil
}

// handSize is the number of cards each seat holds after the deal.
const handSize = 5

// ReverseLastHand rolls the game back to the moment the current hand was
// dealt: hands, kitty, flip, dealer and cumulative score return exactly
// to their pre-bid state. It is the deliberate inverse of deal→score,
// usable both after a hand completes ("redo this hand") and mid-hand.
func (g *Game) ReverseLastHand() error {
	if g.undo == nil {
		return fmt.Errorf("%w: no deal to reverse", ErrMissingContext)
	}
	snap := g.undo.clone()
	snap.rng = g.rng
	snap.undo = g.undo
	*g = *snap
	return nil
}
