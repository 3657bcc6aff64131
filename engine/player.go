package engine

// Seat identifies one of the four fixed positions at the table, numbered
// 1 through 4 clockwise. NoSeat marks an unset seat.
type Seat uint8

const (
	NoSeat Seat = 0
	Seat1  Seat = 1
	Seat2  Seat = 2
	Seat3  Seat = 3
	Seat4  Seat = 4
)

// NumSeats is the number of positions at the table.
const NumSeats = 4

// Next returns the seat to the left (clockwise).
func (s Seat) Next() Seat {
	return s%NumSeats + 1
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s+1)%NumSeats + 1
}

// Team returns the team the seat belongs to: seats 1 and 3 form Team1,
// seats 2 and 4 form Team2.
func (s Seat) Team() Team {
	if s == Seat1 || s == Seat3 {
		return Team1
	}
	return Team2
}

// Team identifies one of the two partnerships.
type Team uint8

const (
	Team1 Team = 1
	Team2 Team = 2
)

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

// Player holds one seat's state for the current deal.
type Player struct {
	Name   string
	Seat   Seat
	Human  bool
	Hand   []Card // cards still held, unordered
	Played []Card // cards played this hand, in play order
}

// Team returns the player's partnership.
func (p *Player) Team() Team { return p.Seat.Team() }

// Holds reports whether the player's hand contains c.
func (p *Player) Holds(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// HoldsSuit reports whether the player holds any card of the given
// effective suit (left bower counted as trump).
func (p *Player) HoldsSuit(suit, trump Suit) bool {
	for _, h := range p.Hand {
		if EffectiveSuit(h, trump) == suit {
			return true
		}
	}
	return false
}

// removeCard deletes c from the hand, preserving order. Returns false if
// the card is not held.
func (p *Player) removeCard(c Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
