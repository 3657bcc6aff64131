package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the lifecycle stage of a game. Phases advance in a strict
// cycle per hand; out-of-order operations are rejected.
type Phase uint8

const (
	PhasePickDealer Phase = iota // once per game
	PhaseDeal                    // waiting for StartDeal
	PhaseBidRound1               // flip card may be ordered up
	PhaseBidRound2               // a suit may be named; dealer is stuck
	PhaseDiscard                 // dealer discards after picking up
	PhasePlay                    // five tricks
	PhaseHandDone                // hand scored, waiting for next deal
	PhaseGameOver                // a team reached the winning score
)

func (p Phase) String() string {
	switch p {
	case PhasePickDealer:
		return "pick_dealer"
	case PhaseDeal:
		return "deal"
	case PhaseBidRound1:
		return "bid_round_1"
	case PhaseBidRound2:
		return "bid_round_2"
	case PhaseDiscard:
		return "discard"
	case PhasePlay:
		return "play"
	case PhaseHandDone:
		return "hand_done"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// InputKind describes what kind of input the engine is waiting for.
type InputKind uint8

const (
	InputNone    InputKind = iota // no seat input needed (advance the machine)
	InputBid                      // Awaiting seat must SubmitBid
	InputDiscard                  // Awaiting seat must SubmitDiscard
	InputCard                     // Awaiting seat must SubmitPlay
)

// PlayerConfig seeds one seat of a new game.
type PlayerConfig struct {
	Name  string
	Human bool
}

// Game is the aggregate root: four seats, the active deal and the
// accumulated hand results. It owns every mutation entry point.
type Game struct {
	Rules Rules

	Phase   Phase
	Dealer  Seat // NoSeat until PickDealer runs
	Current Seat // seat that must act next, when input is required

	players [NumSeats]Player

	// Current deal. Cleared by StartDeal.
	Kitty      []Card
	Flip       Card  // turned-up kitty card, valid once dealt
	Trump      Suit  // NoSuit until bidding resolves
	Maker      Seat  // seat that named trump
	Loner      bool  // maker plays alone
	SittingOut Seat  // lone maker's partner, NoSeat otherwise
	Discard    *Card // dealer's discard after a round-1 pickup
	TurnedDown *Card // the flip card, once rejected in round 1
	Tricks     []Trick

	// Results accumulates one entry per completed hand; team scores are
	// derived from it.
	Results []HandResult

	bidsTaken int // bids submitted in the current bidding round

	rng  *rand.Rand
	undo *Game // snapshot taken after each deal, for ReverseLastHand
}

// NewGame creates a game for four configured seats. rng drives every
// shuffle; pass a fixed-seed source for deterministic tests, or nil to
// seed from the clock.
func NewGame(rules Rules, seats [NumSeats]PlayerConfig, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		Rules:      rules,
		Phase:      PhasePickDealer,
		Trump:      NoSuit,
		SittingOut: NoSeat,
		rng:        rng,
	}
	for i := range g.players {
		g.players[i] = Player{
			Name:  seats[i].Name,
			Seat:  Seat(i + 1),
			Human: seats[i].Human,
		}
	}
	return g
}

// Player returns the seat's player state.
func (g *Game) Player(s Seat) *Player {
	return &g.players[s-1]
}

// Players returns all four players in seat order.
func (g *Game) Players() []*Player {
	out := make([]*Player, NumSeats)
	for i := range g.players {
		out[i] = &g.players[i]
	}
	return out
}

// Awaiting reports which seat must provide which kind of input. It
// returns (NoSeat, InputNone) when the caller should instead advance the
// machine (PickDealer, StartDeal) or the game is over.
func (g *Game) Awaiting() (Seat, InputKind) {
	switch g.Phase {
	case PhaseBidRound1, PhaseBidRound2:
		return g.Current, InputBid
	case PhaseDiscard:
		return g.Dealer, InputDiscard
	case PhasePlay:
		return g.Current, InputCard
	}
	return NoSeat, InputNone
}

// TrumpNamed reports whether trump has been decided for the current hand.
func (g *Game) TrumpNamed() bool { return g.Trump != NoSuit }

// ActiveSeatCount returns the number of seats playing the current hand:
// three on a lone hand, otherwise four.
func (g *Game) ActiveSeatCount() int {
	if g.SittingOut != NoSeat {
		return NumSeats - 1
	}
	return NumSeats
}

// CurrentTrick returns the trick being played, or nil between tricks.
func (g *Game) CurrentTrick() *Trick {
	if len(g.Tricks) == 0 {
		return nil
	}
	t := &g.Tricks[len(g.Tricks)-1]
	if t.Taker != NoSeat {
		return nil
	}
	return t
}

// TricksWon counts tricks taken by the team so far this hand.
func (g *Game) TricksWon(team Team) int {
	n := 0
	for _, t := range g.Tricks {
		if t.Taker != NoSeat && t.Taker.Team() == team {
			n++
		}
	}
	return n
}

// LedSuits returns the effective suits led so far this hand, in order.
func (g *Game) LedSuits() []Suit {
	var suits []Suit
	for _, t := range g.Tricks {
		if lead, ok := t.LeadCard(); ok {
			suits = append(suits, EffectiveSuit(lead, g.Trump))
		}
	}
	return suits
}

// CardSeen reports whether the card has already hit the table this hand
// (played to a trick or turned down; the dealer's discard is hidden and
// does not count).
func (g *Game) CardSeen(c Card) bool {
	for _, t := range g.Tricks {
		for _, p := range t.Plays {
			if p.Card == c {
				return true
			}
		}
	}
	if g.TurnedDown != nil && *g.TurnedDown == c {
		return true
	}
	return false
}

// checkDealInvariant verifies the 24-card conservation invariant for the
// active deal: hands + played + kitty + discard must cover the deck with
// no duplicates.
func (g *Game) checkDealInvariant() error {
	seen := make(map[Card]bool, DeckSize)
	count := 0
	add := func(c Card, where string) error {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s in %s", ErrInvariantViolation, c, where)
		}
		seen[c] = true
		count++
		return nil
	}
	for i := range g.players {
		p := &g.players[i]
		for _, c := range p.Hand {
			if err := add(c, "hand"); err != nil {
				return err
			}
		}
		for _, c := range p.Played {
			if err := add(c, "played"); err != nil {
				return err
			}
		}
	}
	for _, c := range g.Kitty {
		if err := add(c, "kitty"); err != nil {
			return err
		}
	}
	if g.Discard != nil {
		if err := add(*g.Discard, "discard"); err != nil {
			return err
		}
	}
	if count != DeckSize {
		return fmt.Errorf("%w: %d cards accounted for, want %d", ErrInvariantViolation, count, DeckSize)
	}
	return nil
}

// clone deep-copies the game. The RNG pointer is shared: randomness
// belongs to the live game, not to a snapshot.
func (g *Game) clone() *Game {
	c := *g
	for i := range g.players {
		c.players[i].Hand = append([]Card(nil), g.players[i].Hand...)
		c.players[i].Played = append([]Card(nil), g.players[i].Played...)
	}
	c.Kitty = append([]Card(nil), g.Kitty...)
	c.Tricks = make([]Trick, len(g.Tricks))
	for i, t := range g.Tricks {
		c.Tricks[i] = t
		c.Tricks[i].Plays = append([]Play(nil), t.Plays...)
	}
	c.Results = make([]HandResult, len(g.Results))
	for i, r := range g.Results {
		c.Results[i] = r
		c.Results[i].Tricks = make([]Trick, len(r.Tricks))
		for j, t := range r.Tricks {
			c.Results[i].Tricks[j] = t
			c.Results[i].Tricks[j].Plays = append([]Play(nil), t.Plays...)
		}
	}
	if g.Discard != nil {
		d := *g.Discard
		c.Discard = &d
	}
	if g.TurnedDown != nil {
		d := *g.TurnedDown
		c.TurnedDown = &d
	}
	c.undo = g.undo
	return &c
}

// ResetForNewGame clears all deal and result state while keeping seats,
// rules and RNG, returning the game to dealer selection.
func (g *Game) ResetForNewGame() {
	for i := range g.players {
		g.players[i].Hand = nil
		g.players[i].Played = nil
	}
	g.Phase = PhasePickDealer
	g.Dealer = NoSeat
	g.Current = NoSeat
	g.clearDeal()
	g.Results = nil
	g.undo = nil
}

// clearDeal resets per-hand state ahead of a new deal.
func (g *Game) clearDeal() {
	for i := range g.players {
		g.players[i].Hand = g.players[i].Hand[:0]
		g.players[i].Played = g.players[i].Played[:0]
	}
	g.Kitty = nil
	g.Flip = Card{Suit: NoSuit}
	g.Trump = NoSuit
	g.Maker = NoSeat
	g.Loner = false
	g.SittingOut = NoSeat
	g.Discard = nil
	g.TurnedDown = nil
	g.Tricks = nil
	g.bidsTaken = 0
}
