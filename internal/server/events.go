package server

import (
	"fmt"

	"github.com/jason-s-yu/euchre/engine"
)

// GameEventType labels a table event broadcast to connected clients.
type GameEventType string

const (
	EventDealStarted  GameEventType = "deal_started"   // public: new hand dealt, flip shown
	EventPrivateHand  GameEventType = "private_hand"   // private: the human seat's cards
	EventBidMade      GameEventType = "bid_made"       // public: a seat ordered, named or passed
	EventTrumpNamed   GameEventType = "trump_named"    // public: trump decided, maker known
	EventDealerPickup GameEventType = "dealer_pickup"  // public: dealer picked up the flip
	EventCardPlayed   GameEventType = "card_played"    // public: a card hit the trick
	EventTrickTaken   GameEventType = "trick_taken"    // public: trick resolved
	EventHandScored   GameEventType = "hand_scored"    // public: hand result and running score
	EventGameOver     GameEventType = "game_over"      // public: a team reached the winning score
	EventAwaitingYou  GameEventType = "awaiting_input" // private: the human seat must act
	EventError        GameEventType = "error"          // private: a rejected action
)

// EventCard is a card in an event payload.
type EventCard struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// GameEvent is the wire structure for everything the table broadcasts.
type GameEvent struct {
	Type    GameEventType  `json:"type"`
	Seat    int            `json:"seat,omitempty"`
	Card    *EventCard     `json:"card,omitempty"`
	Cards   []EventCard    `json:"cards,omitempty"`
	Suit    string         `json:"suit,omitempty"`
	Loner   bool           `json:"loner,omitempty"`
	Call    bool           `json:"call,omitempty"`
	Input   string         `json:"input,omitempty"`
	Points  int            `json:"points,omitempty"`
	Team    int            `json:"team,omitempty"`
	Scores  map[string]int `json:"scores,omitempty"`
	Message string         `json:"message,omitempty"`
}

// suitToString maps engine suits to single-letter wire codes.
func suitToString(s engine.Suit) string {
	switch s {
	case engine.Spades:
		return "S"
	case engine.Hearts:
		return "H"
	case engine.Diamonds:
		return "D"
	case engine.Clubs:
		return "C"
	}
	return "?"
}

// suitFromString parses a single-letter wire code into an engine suit.
func suitFromString(s string) (engine.Suit, error) {
	switch s {
	case "S":
		return engine.Spades, nil
	case "H":
		return engine.Hearts, nil
	case "D":
		return engine.Diamonds, nil
	case "C":
		return engine.Clubs, nil
	}
	return engine.NoSuit, fmt.Errorf("unknown suit %q", s)
}

// rankToString maps engine ranks to wire codes.
func rankToString(r engine.Rank) string {
	switch r {
	case engine.Nine:
		return "9"
	case engine.Ten:
		return "T"
	case engine.Jack:
		return "J"
	case engine.Queen:
		return "Q"
	case engine.King:
		return "K"
	case engine.Ace:
		return "A"
	}
	return "?"
}

// rankFromString parses a wire code into an engine rank.
func rankFromString(s string) (engine.Rank, error) {
	switch s {
	case "9":
		return engine.Nine, nil
	case "T", "10":
		return engine.Ten, nil
	case "J":
		return engine.Jack, nil
	case "Q":
		return engine.Queen, nil
	case "K":
		return engine.King, nil
	case "A":
		return engine.Ace, nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

// encodeCard converts an engine card for an event payload.
func encodeCard(c engine.Card) EventCard {
	return EventCard{Suit: suitToString(c.Suit), Rank: rankToString(c.Rank)}
}

// encodeCards converts a hand for an event payload.
func encodeCards(cards []engine.Card) []EventCard {
	out := make([]EventCard, len(cards))
	for i, c := range cards {
		out[i] = encodeCard(c)
	}
	return out
}

// decodeCard parses a card from a client message.
func decodeCard(ec EventCard) (engine.Card, error) {
	suit, err := suitFromString(ec.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	rank, err := rankFromString(ec.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: suit, Rank: rank}, nil
}
