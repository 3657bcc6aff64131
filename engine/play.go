package engine

import "fmt"

// LegalPlays returns the cards the seat may legally play right now. When
// a trick has a lead and follow-suit is enforced, a seat holding the led
// effective suit (left bower counted as trump) may only follow; with no
// such card, or with EnforceFollowSuit off, the whole hand is legal.
func (g *Game) LegalPlays(seat Seat) ([]Card, error) {
	if g.Phase != PhasePlay {
		return nil, fmt.Errorf("%w: LegalPlays in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	if seat == g.SittingOut {
		return nil, fmt.Errorf("%w: seat %d is sitting out", ErrInvalidStateTransition, seat)
	}
	p := g.Player(seat)
	t := g.CurrentTrick()
	if t == nil {
		return nil, fmt.Errorf("%w: no trick in progress", ErrMissingContext)
	}
	lead, ok := t.LeadCard()
	if !ok || !g.Rules.EnforceFollowSuit {
		return append([]Card(nil), p.Hand...), nil
	}
	leadSuit := EffectiveSuit(lead, g.Trump)
	var follows []Card
	for _, c := range p.Hand {
		if EffectiveSuit(c, g.Trump) == leadSuit {
			follows = append(follows, c)
		}
	}
	if len(follows) == 0 {
		return append([]Card(nil), p.Hand...), nil
	}
	return follows, nil
}

// SubmitPlay places the seat's card on the current trick. When the trick
// completes its taker is resolved and leads the next; after the fifth
// trick the hand is scored and the game checked for completion.
func (g *Game) SubmitPlay(seat Seat, c Card) error {
	if g.Phase != PhasePlay {
		return fmt.Errorf("%w: SubmitPlay in phase %s", ErrInvalidStateTransition, g.Phase)
	}
	if seat != g.Current {
		return fmt.Errorf("%w: seat %d played on seat %d's turn", ErrInvalidStateTransition, seat, g.Current)
	}
	p := g.Player(seat)
	if !p.Holds(c) {
		return fmt.Errorf("%w: %s is not in seat %d's hand", ErrIllegalCard, c, seat)
	}
	if g.Rules.EnforceFollowSuit && !g.Rules.AllowRenege {
		legal, err := g.LegalPlays(seat)
		if err != nil {
			return err
		}
		if !containsCard(legal, c) {
			return fmt.Errorf("%w: %s reneges on the led suit", ErrIllegalCard, c)
		}
	}

	t := g.CurrentTrick()
	if t == nil {
		return fmt.Errorf("%w: no trick in progress", ErrMissingContext)
	}
	p.removeCard(c)
	p.Played = append(p.Played, c)
	t.Plays = append(t.Plays, Play{Seat: seat, Card: c})

	if !t.Complete(g.ActiveSeatCount()) {
		g.Current = nextActive(seat, g.SittingOut)
		return nil
	}

	win, err := t.winner(g.Trump)
	if err != nil {
		return err
	}
	t.Taker = win.Seat

	if len(g.Tricks) < tricksPerHand {
		g.Current = win.Seat
		g.Tricks = append(g.Tricks, Trick{
			Round:  len(g.Tricks) + 1,
			Leader: win.Seat,
			Taker:  NoSeat,
		})
		return nil
	}
	return g.scoreHand()
}

// tricksPerHand is the number of tricks in one hand.
const tricksPerHand = 5

func containsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
