package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/euchre/engine"
)

// playGame builds a mid-play position. The leader is on lead of a fresh
// trick; tests append plays and move Current to shape the trick.
func playGame(hands [engine.NumSeats][]engine.Card, trump engine.Suit, maker, leader engine.Seat) *engine.Game {
	g := engine.NewGame(engine.DefaultRules(), testSeats(), nil)
	g.Phase = engine.PhasePlay
	g.Dealer = engine.Seat4
	g.Trump = trump
	g.Maker = maker
	g.Current = leader
	for s := engine.Seat1; s <= engine.Seat4; s++ {
		g.Player(s).Hand = append([]engine.Card(nil), hands[s-1]...)
	}
	g.Tricks = []engine.Trick{{Round: 1, Leader: leader, Taker: engine.NoSeat}}
	return g
}

// addPlays places cards on the current trick and advances Current past
// them.
func addPlays(g *engine.Game, plays ...engine.Play) {
	t := &g.Tricks[len(g.Tricks)-1]
	t.Plays = append(t.Plays, plays...)
	g.Current = plays[len(plays)-1].Seat.Next()
}

func suggest(t *testing.T, g *engine.Game) (engine.Card, string) {
	t.Helper()
	c, rule, err := SuggestPlay(g, DefaultTuning)
	require.NoError(t, err)
	return c, rule
}

func TestLeadAlonePullTrump(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Jack}, {Suit: engine.Spades, Rank: engine.Ace}, {Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
	}, engine.Spades, engine.Seat1, engine.Seat1)
	g.Loner = true
	g.SittingOut = engine.Seat3

	c, rule := suggest(t, g)
	assert.Equal(t, "alone-pull-trump", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Jack}, c)
}

func TestLeadMakerLeadsRight(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Jack}, {Suit: engine.Spades, Rank: engine.Ten}, {Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
	}, engine.Spades, engine.Seat1, engine.Seat1)

	c, rule := suggest(t, g)
	assert.Equal(t, "maker-lead-right", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Jack}, c)
}

func TestLeadMakerPullsTrumpWithoutRight(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Ace}, {Suit: engine.Spades, Rank: engine.King}, {Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Hearts, Rank: engine.Ace}},
		{{Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
	}, engine.Spades, engine.Seat1, engine.Seat1)

	c, rule := suggest(t, g)
	assert.Equal(t, "maker-pull-trump", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Ace}, c)
}

func TestLeadCashBossTrump(t *testing.T) {
	// Both bowers are gone after three tricks; the trump ace is boss and
	// the defender holding it cashes it.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Ace}, {Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	g.Tricks = []engine.Trick{
		{Round: 1, Leader: engine.Seat2, Taker: engine.Seat2, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Spades, Rank: engine.Jack}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Spades, Rank: engine.Nine}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Spades, Rank: engine.Ten}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Spades, Rank: engine.Queen}},
		}},
		{Round: 2, Leader: engine.Seat2, Taker: engine.Seat2, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Clubs, Rank: engine.Jack}}, // left bower
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Spades, Rank: engine.King}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Nine}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
		}},
		{Round: 3, Leader: engine.Seat2, Taker: engine.Seat1, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.King}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Ten}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Queen}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Ace}},
		}},
		{Round: 4, Leader: engine.Seat1, Taker: engine.NoSeat},
	}
	g.Current = engine.Seat1

	c, rule := suggest(t, g)
	assert.Equal(t, "cash-boss-trump", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Ace}, c)
}

func TestLeadCashBossLeftBower(t *testing.T) {
	// The right bower is gone; the left in hand is now the boss trump.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Clubs, Rank: engine.Jack}, {Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Diamonds, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	g.Tricks = []engine.Trick{
		{Round: 1, Leader: engine.Seat2, Taker: engine.Seat2, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Spades, Rank: engine.Jack}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Spades, Rank: engine.Nine}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Spades, Rank: engine.Ten}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Spades, Rank: engine.Queen}},
		}},
		{Round: 2, Leader: engine.Seat2, Taker: engine.Seat1, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.King}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Ten}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Queen}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Diamonds, Rank: engine.Ace}},
		}},
		{Round: 3, Leader: engine.Seat1, Taker: engine.Seat1, Plays: []engine.Play{
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Clubs, Rank: engine.Ace}},
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Clubs, Rank: engine.King}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Clubs, Rank: engine.Queen}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Clubs, Rank: engine.Ten}},
		}},
		{Round: 4, Leader: engine.Seat1, Taker: engine.NoSeat},
	}
	g.Current = engine.Seat1

	c, rule := suggest(t, g)
	assert.Equal(t, "cash-boss-trump", rule)
	assert.Equal(t, engine.Card{Suit: engine.Clubs, Rank: engine.Jack}, c)
}

func TestLeadFreshAce(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Ace}, {Suit: engine.Clubs, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat2, engine.Seat1)

	c, rule := suggest(t, g)
	assert.Equal(t, "lead-fresh-ace", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, c)
}

func TestLeadOffAceWhenAllSuitsLed(t *testing.T) {
	// The ace's suit was already led, so it is no longer fresh but still
	// the best opening.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Ace}, {Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	g.Tricks = []engine.Trick{
		{Round: 1, Leader: engine.Seat2, Taker: engine.Seat1, Plays: []engine.Play{
			{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
			{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
			{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}},
			{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.King}},
		}},
		{Round: 2, Leader: engine.Seat1, Taker: engine.NoSeat},
	}
	g.Current = engine.Seat1

	c, rule := suggest(t, g)
	assert.Equal(t, "lead-off-ace", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, c)
}

func TestLeadLowAtMakerPartner(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.King}, {Suit: engine.Clubs, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat3, engine.Seat1) // partner is the maker

	c, rule := suggest(t, g)
	assert.Equal(t, "partner-maker-lead-low", rule)
	assert.Equal(t, engine.Card{Suit: engine.Clubs, Rank: engine.Nine}, c)
}

func TestLeadHighOffAsDefender(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.King}, {Suit: engine.Clubs, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat2, engine.Seat1)

	c, rule := suggest(t, g)
	assert.Equal(t, "defender-lead-high-off", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.King}, c)
}

func TestLeadTrumpEndgame(t *testing.T) {
	// Nothing but small trump left; higher trump is still unseen so the
	// boss rule stays quiet.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Spades, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.Ten}},
		{{Suit: engine.Clubs, Rank: engine.King}},
		{{Suit: engine.Clubs, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat2, engine.Seat1)

	c, rule := suggest(t, g)
	assert.Equal(t, "lead-trump-endgame", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Ten}, c)
}

func TestFollowLastCheapWin(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Ace}, {Suit: engine.Hearts, Rank: engine.Jack}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
		engine.Play{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.King}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-last-cheap-win", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, c)
}

func TestFollowDuckUnderPartner(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Ace}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
		{{Suit: engine.Hearts, Rank: engine.King}, {Suit: engine.Hearts, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat1, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ace}}, // seat 4's partner
		engine.Play{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-duck-partner", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Queen}, c)
}

func TestFollowDuckPartnerLedAceAfterRuff(t *testing.T) {
	// Partner led an off-suit ace and an opponent ruffed it; still duck
	// rather than waste honors under a lost trick.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Ace}},
		{{Suit: engine.Spades, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.King}, {Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ace}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Spades, Rank: engine.Nine}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-duck-partner", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Queen}, c)
}

func TestFollowTrumpLeadCheapWin(t *testing.T) {
	// On a trump lead the left bower wins just as surely as the right,
	// which stays behind it for the next trick.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.King}},
		{{Suit: engine.Spades, Rank: engine.Jack}, {Suit: engine.Clubs, Rank: engine.Jack}},
		{{Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat1, engine.Seat1)
	addPlays(g, engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Spades, Rank: engine.King}})

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-trump-lead-cheap", rule)
	assert.Equal(t, engine.Card{Suit: engine.Clubs, Rank: engine.Jack}, c)
}

func TestFollowWinHigh(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
		{{Suit: engine.Hearts, Rank: engine.Ace}, {Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-win-high", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, c)
}

func TestFollowDuckLow(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Ace}},
		{{Suit: engine.Hearts, Rank: engine.Ten}, {Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Nine}},
	}, engine.Spades, engine.Seat1, engine.Seat1)
	addPlays(g, engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ace}})

	c, rule := suggest(t, g)
	assert.Equal(t, "follow-duck-low", rule)
	assert.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ten}, c)
}

func TestRuffCheapLast(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Spades, Rank: engine.Ace}, {Suit: engine.Clubs, Rank: engine.Nine}},
	}, engine.Spades, engine.Seat2, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
		engine.Play{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.King}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "ruff-cheap-last", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Nine}, c,
		"the nine of trump wins just as well as the ace")
}

func TestRuffLoneMakerLast(t *testing.T) {
	// A lone maker has no partner in the trick, so the last-to-act rule
	// stays quiet and the plain ruff takes over.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Diamonds, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{},
		{{Suit: engine.Hearts, Rank: engine.Queen}},
	}, engine.Spades, engine.Seat1, engine.Seat4)
	g.Loner = true
	g.SittingOut = engine.Seat3
	addPlays(g,
		engine.Play{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.King}},
	)
	g.Current = engine.Seat1

	c, rule := suggest(t, g)
	assert.Equal(t, "ruff-to-win", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Nine}, c)
}

func TestSloughUnderPartner(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.Ace}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
		{{Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Clubs, Rank: engine.Queen}, {Suit: engine.Clubs, Rank: engine.Nine}},
	}, engine.Spades, engine.Seat1, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Nine}},
		engine.Play{Seat: engine.Seat2, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ace}},
		engine.Play{Seat: engine.Seat3, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Ten}},
	)

	c, rule := suggest(t, g)
	assert.Equal(t, "slough-under-partner", rule)
	assert.Equal(t, engine.Card{Suit: engine.Clubs, Rank: engine.Nine}, c,
		"keep the trump when partner already has the trick")
}

func TestRuffToWin(t *testing.T) {
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Spades, Rank: engine.Ten}, {Suit: engine.Clubs, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat3, engine.Seat1)
	addPlays(g, engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}})

	c, rule := suggest(t, g)
	assert.Equal(t, "ruff-to-win", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Ten}, c)
}

func TestSloughLowOff(t *testing.T) {
	// Void in the led suit with no trump: throw the cheapest card.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Clubs, Rank: engine.King}, {Suit: engine.Diamonds, Rank: engine.Nine}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat3, engine.Seat1)
	addPlays(g, engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}})

	c, rule := suggest(t, g)
	assert.Equal(t, "slough-low-off", rule)
	assert.Equal(t, engine.Card{Suit: engine.Diamonds, Rank: engine.Nine}, c)
}

func TestSloughLowTrumpOnly(t *testing.T) {
	// Only trump in hand and none of it wins over the right bower.
	g := playGame([engine.NumSeats][]engine.Card{
		{{Suit: engine.Hearts, Rank: engine.Queen}},
		{{Suit: engine.Spades, Rank: engine.Nine}, {Suit: engine.Spades, Rank: engine.Ten}},
		{{Suit: engine.Hearts, Rank: engine.King}},
		{{Suit: engine.Hearts, Rank: engine.Ten}},
	}, engine.Spades, engine.Seat3, engine.Seat1)
	addPlays(g,
		engine.Play{Seat: engine.Seat1, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Queen}},
	)
	// Seat 4 already ruffed with the right bower on a previous turn order:
	// shape the trick so no spade in hand can win.
	g.Tricks[0].Plays = append(g.Tricks[0].Plays,
		engine.Play{Seat: engine.Seat4, Card: engine.Card{Suit: engine.Spades, Rank: engine.Jack}})
	g.Current = engine.Seat2

	c, rule := suggest(t, g)
	assert.Equal(t, "slough-low", rule)
	assert.Equal(t, engine.Card{Suit: engine.Spades, Rank: engine.Nine}, c)
}

func TestSuggestPlayWrongPhase(t *testing.T) {
	g := engine.NewGame(engine.DefaultRules(), testSeats(), nil)
	_, _, err := SuggestPlay(g, DefaultTuning)
	assert.ErrorIs(t, err, engine.ErrInvalidStateTransition)
}
