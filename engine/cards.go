// Package engine implements the Euchre rules engine.
//
// The engine is a pure, synchronous, in-memory state machine: every
// transition either succeeds and advances the game or fails fast with a
// typed error. It never blocks on player input: Awaiting reports which
// seat must act next and callers (server, CLI, tests, bots) resume it.
package engine

import "fmt"

// Suit is one of the four card suits.
type Suit int8

const (
	// NoSuit marks an unset suit (e.g. trump before bidding resolves).
	NoSuit Suit = iota - 1
	Spades
	Hearts
	Diamonds
	Clubs
)

// Color is the color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// Suits lists the four suits in fixed order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Color returns Black for spades/clubs and Red for hearts/diamonds.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// SameColorSuit returns the other suit of the same color.
func (s Suit) SameColorSuit() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	}
	return NoSuit
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank is a card rank. The numeric value doubles as the off-suit ladder
// position (9 < 10 < J < Q < K < A).
type Rank int8

const (
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists the six Euchre ranks in ascending off-suit order.
var Ranks = [6]Rank{Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}

// Card is an immutable value; equality is by (suit, rank).
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// DeckSize is the number of cards in a Euchre deck.
const DeckSize = 24

// NewDeck returns the 24-card Euchre deck in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}
