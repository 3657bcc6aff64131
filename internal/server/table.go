// Package server hosts Euchre tables for remote clients: one human seat
// driven over a websocket, three bot seats driven in-process. The engine
// stays authoritative; this layer only translates events and input.
package server

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/euchre/engine"
	"github.com/jason-s-yu/euchre/engine/bot"
)

// BroadcastFunc delivers an event to every spectator of a table.
type BroadcastFunc func(ev GameEvent)

// Table owns one engine game plus the three bot seats. All access to the
// game goes through the table mutex; one table serves one websocket.
type Table struct {
	ID        uuid.UUID
	HumanSeat engine.Seat

	mu     sync.Mutex
	game   *engine.Game
	tuning bot.Tuning
	log    *logrus.Entry

	// broadcastFn sends public events; toHumanFn sends events only the
	// human seat may see (their hand, their turn prompts).
	broadcastFn BroadcastFunc
	toHumanFn   BroadcastFunc
}

// TableConfig seeds a new table.
type TableConfig struct {
	PlayerNames [engine.NumSeats]string
	HumanSeat   engine.Seat
	Rules       engine.Rules
	Tuning      bot.Tuning
	RNG         *rand.Rand // nil for a clock-seeded game
}

// NewTable creates a table and its engine game. Broadcast functions may
// be nil until a client attaches (events are then dropped).
func NewTable(cfg TableConfig, logger *logrus.Logger) *Table {
	var seats [engine.NumSeats]engine.PlayerConfig
	for i := range seats {
		seats[i] = engine.PlayerConfig{
			Name:  cfg.PlayerNames[i],
			Human: engine.Seat(i+1) == cfg.HumanSeat,
		}
	}
	id := uuid.New()
	return &Table{
		ID:        id,
		HumanSeat: cfg.HumanSeat,
		game:      engine.NewGame(cfg.Rules, seats, cfg.RNG),
		tuning:    cfg.Tuning,
		log:       logger.WithField("table", id),
	}
}

// Attach registers the event sinks for the connected client.
func (t *Table) Attach(broadcast, toHuman BroadcastFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.broadcastFn = broadcast
	t.toHumanFn = toHuman
}

func (t *Table) broadcast(ev GameEvent) {
	if t.broadcastFn != nil {
		t.broadcastFn(ev)
	}
}

func (t *Table) toHuman(ev GameEvent) {
	if t.toHumanFn != nil {
		t.toHumanFn(ev)
	}
}

// Start kicks the game off and advances until the human must act.
func (t *Table) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.game.PickDealer(); err != nil {
		return err
	}
	return t.advance()
}

// Resume brings an attached client up to date. A table that has not
// started yet starts now; a table already in play re-sends the human
// seat's hand and the pending prompt instead of restarting.
func (t *Table) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.game.Phase == engine.PhasePickDealer {
		if _, err := t.game.PickDealer(); err != nil {
			return err
		}
		return t.advance()
	}
	if hand := t.game.Player(t.HumanSeat).Hand; len(hand) > 0 {
		t.toHuman(GameEvent{
			Type:  EventPrivateHand,
			Seat:  int(t.HumanSeat),
			Cards: encodeCards(hand),
		})
	}
	return t.advance()
}

// GameOver reports whether the table's game has finished.
func (t *Table) GameOver() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Phase == engine.PhaseGameOver
}

// HandleBid applies the human seat's bid.
func (t *Table) HandleBid(call bool, suit string, loner bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	action := engine.BidAction{Call: call, Loner: loner}
	if suit != "" {
		s, err := suitFromString(suit)
		if err != nil {
			return t.reject(err)
		}
		action.Suit = s
	}
	if err := t.game.SubmitBid(t.HumanSeat, action); err != nil {
		return t.reject(err)
	}
	t.broadcastBid(t.HumanSeat, action)
	return t.advance()
}

// HandleDiscard applies the human dealer's discard.
func (t *Table) HandleDiscard(ec EventCard) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := decodeCard(ec)
	if err != nil {
		return t.reject(err)
	}
	if err := t.game.SubmitDiscard(t.HumanSeat, c); err != nil {
		return t.reject(err)
	}
	t.broadcast(GameEvent{Type: EventDealerPickup, Seat: int(t.HumanSeat)})
	return t.advance()
}

// HandlePlay applies the human seat's card.
func (t *Table) HandlePlay(ec EventCard) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, err := decodeCard(ec)
	if err != nil {
		return t.reject(err)
	}
	return t.submitPlay(t.HumanSeat, c)
}

// reject reports a refused action privately and swallows the error so
// the connection keeps running.
func (t *Table) reject(err error) error {
	t.log.WithError(err).Warn("action rejected")
	t.toHuman(GameEvent{Type: EventError, Message: err.Error()})
	return nil
}

// advance drives the state machine (deals and bot decisions) until the
// human seat must act or the game ends. Callers hold the mutex.
func (t *Table) advance() error {
	g := t.game
	for {
		switch g.Phase {
		case engine.PhaseDeal, engine.PhaseHandDone:
			if err := g.StartDeal(); err != nil {
				return err
			}
			t.broadcast(GameEvent{
				Type: EventDealStarted,
				Seat: int(g.Dealer),
				Card: cardPtr(encodeCard(g.Flip)),
			})
			t.toHuman(GameEvent{
				Type:  EventPrivateHand,
				Seat:  int(t.HumanSeat),
				Cards: encodeCards(g.Player(t.HumanSeat).Hand),
			})

		case engine.PhaseGameOver:
			winner, err := g.Winner()
			if err != nil {
				return err
			}
			t.broadcast(GameEvent{Type: EventGameOver, Team: int(winner), Scores: t.scores()})
			return nil

		default:
			seat, kind := g.Awaiting()
			if seat == t.HumanSeat {
				t.toHuman(GameEvent{Type: EventAwaitingYou, Seat: int(seat), Input: inputName(kind)})
				return nil
			}
			if err := t.actBot(seat, kind); err != nil {
				return err
			}
		}
	}
}

// actBot resolves one bot decision and applies it.
func (t *Table) actBot(seat engine.Seat, kind engine.InputKind) error {
	g := t.game
	switch kind {
	case engine.InputBid:
		d, err := bot.SuggestBid(g, t.tuning)
		if err != nil {
			return err
		}
		action := engine.BidAction{Call: d.Call, Suit: d.Suit, Loner: d.Loner}
		if err := g.SubmitBid(seat, action); err != nil {
			return err
		}
		t.broadcastBid(seat, action)
		return nil

	case engine.InputDiscard:
		c, err := bot.SuggestDiscard(g, t.tuning)
		if err != nil {
			return err
		}
		if err := g.SubmitDiscard(seat, c); err != nil {
			return err
		}
		t.broadcast(GameEvent{Type: EventDealerPickup, Seat: int(seat)})
		return nil

	case engine.InputCard:
		c, ruleName, err := bot.SuggestPlay(g, t.tuning)
		if err != nil {
			return err
		}
		t.log.WithFields(logrus.Fields{"seat": seat, "card": c.String(), "rule": ruleName}).Debug("bot play")
		return t.submitPlay(seat, c)
	}
	return fmt.Errorf("unhandled input kind %d for seat %d", kind, seat)
}

// submitPlay plays a card and emits the trick/score events the play
// triggers.
func (t *Table) submitPlay(seat engine.Seat, c engine.Card) error {
	g := t.game
	trickIdx := len(g.Tricks) - 1
	handsBefore := len(g.Results)

	if err := g.SubmitPlay(seat, c); err != nil {
		if seat == t.HumanSeat {
			return t.reject(err)
		}
		return err
	}
	t.broadcast(GameEvent{Type: EventCardPlayed, Seat: int(seat), Card: cardPtr(encodeCard(c))})

	if trickIdx >= 0 && trickIdx < len(g.Tricks) && g.Tricks[trickIdx].Taker != engine.NoSeat {
		t.broadcast(GameEvent{Type: EventTrickTaken, Seat: int(g.Tricks[trickIdx].Taker)})
	}
	if len(g.Results) > handsBefore {
		r := g.Results[len(g.Results)-1]
		t.broadcast(GameEvent{
			Type:   EventHandScored,
			Team:   int(r.WinningTeam),
			Points: r.Points,
			Scores: t.scores(),
		})
	}
	if seat == t.HumanSeat {
		return t.advance()
	}
	return nil
}

// broadcastBid emits the bid event and, when the bid settles trump, the
// trump event.
func (t *Table) broadcastBid(seat engine.Seat, action engine.BidAction) {
	ev := GameEvent{Type: EventBidMade, Seat: int(seat), Call: action.Call, Loner: action.Loner}
	if action.Suit != engine.NoSuit {
		ev.Suit = suitToString(action.Suit)
	}
	t.broadcast(ev)
	if action.Call && t.game.TrumpNamed() {
		t.broadcast(GameEvent{
			Type:  EventTrumpNamed,
			Seat:  int(t.game.Maker),
			Suit:  suitToString(t.game.Trump),
			Loner: t.game.Loner,
		})
	}
}

func (t *Table) scores() map[string]int {
	return map[string]int{
		"team1": t.game.Score(engine.Team1),
		"team2": t.game.Score(engine.Team2),
	}
}

func inputName(kind engine.InputKind) string {
	switch kind {
	case engine.InputBid:
		return "bid"
	case engine.InputDiscard:
		return "discard"
	case engine.InputCard:
		return "card"
	}
	return "none"
}

func cardPtr(ec EventCard) *EventCard { return &ec }
