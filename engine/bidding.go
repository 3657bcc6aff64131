package engine

import "fmt"

// BidAction is one seat's bidding decision. In round 1, Call orders the
// flip card up (Suit is ignored); in round 2, Call names Suit as trump.
// Loner declares the maker will play alone.
type BidAction struct {
	Call  bool
	Suit  Suit
	Loner bool
}

// SubmitBid applies a bid for the seat whose turn it is. Round 1 walks
// the four seats left of the dealer; if all pass, the flip is turned down
// and round 2 begins. In round 2 the dealer is stuck: with three passes
// in, the dealer must name one of the three remaining suits.
func (g *Game) SubmitBid(seat Seat, bid BidAction) error {
	if g.Phase != PhaseBidRound1 && g.Phase != PhaseBidRound2 {
		return fmt.Errorf("%w: SubmitBid in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	if seat != g.Current {
		return fmt.Errorf("%w: seat %d bid on seat %d's turn", ErrInvalidStateTransition, seat, g.Current)
	}

	if g.Phase == PhaseBidRound1 {
		return g.bidRound1(seat, bid)
	}
	return g.bidRound2(seat, bid)
}

func (g *Game) bidRound1(seat Seat, bid BidAction) error {
	if !bid.Call {
		g.bidsTaken++
		if g.bidsTaken == NumSeats {
			// All four passed: turn the flip down, open round 2.
			down := g.Flip
			g.TurnedDown = &down
			g.Phase = PhaseBidRound2
			g.Current = g.Dealer.Next()
			g.bidsTaken = 0
			return nil
		}
		g.Current = g.Current.Next()
		return nil
	}

	// Ordered up: the flip suit is trump and the dealer picks up the flip.
	g.nameTrump(seat, g.Flip.Suit, bid.Loner)

	if g.SittingOut == g.Dealer {
		// The dealer sits out on this lone hand; their cards are dead and
		// the flip stays in the kitty. Straight to play.
		g.beginPlay()
		return nil
	}

	dealer := g.Player(g.Dealer)
	dealer.Hand = append(dealer.Hand, g.Flip)
	g.Kitty = g.Kitty[1:]
	g.Phase = PhaseDiscard
	g.Current = g.Dealer
	return nil
}

func (g *Game) bidRound2(seat Seat, bid BidAction) error {
	if !bid.Call {
		if seat == g.Dealer {
			return fmt.Errorf("%w: dealer is stuck and must name a suit", ErrInvalidStateTransition)
		}
		g.bidsTaken++
		g.Current = g.Current.Next()
		return nil
	}
	if bid.Suit == NoSuit {
		return fmt.Errorf("%w: naming trump requires a suit", ErrMissingContext)
	}
	if g.TurnedDown != nil && bid.Suit == g.TurnedDown.Suit {
		return fmt.Errorf("%w: suit %s was turned down and cannot be named", ErrIllegalCard, bid.Suit)
	}

	g.nameTrump(seat, bid.Suit, bid.Loner)
	g.beginPlay()
	return nil
}

// nameTrump records the maker, trump suit and lone-hand state.
func (g *Game) nameTrump(seat Seat, trump Suit, loner bool) {
	g.Trump = trump
	g.Maker = seat
	g.Loner = loner
	if loner {
		g.SittingOut = seat.Partner()
	}
}

// SubmitDiscard is the dealer returning one of six cards to complete a
// round-1 pickup. Discarding the picked-up flip itself is allowed.
func (g *Game) SubmitDiscard(seat Seat, c Card) error {
	if g.Phase != PhaseDiscard {
		return fmt.Errorf("%w: SubmitDiscard in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	if seat != g.Dealer {
		return fmt.Errorf("%w: only the dealer discards", ErrInvalidStateTransition)
	}
	dealer := g.Player(g.Dealer)
	if !dealer.removeCard(c) {
		return fmt.Errorf("%w: %s is not in the dealer's hand", ErrIllegalCard, c)
	}
	d := c
	g.Discard = &d
	g.beginPlay()
	return nil
}

// beginPlay opens the first trick, led by the seat left of the dealer
// (skipping a sitting-out seat).
func (g *Game) beginPlay() {
	g.Phase = PhasePlay
	g.Current = nextActive(g.Dealer, g.SittingOut)
	g.Tricks = append(g.Tricks, Trick{
		Round:  1,
		Leader: g.Current,
		Taker:  NoSeat,
	})
}
