package engine

// Rank values form a strict total order for a fixed trump suit. Off-suit
// cards occupy 1..6, trump cards 10..16, so every trump outranks every
// off-suit card. RankValue is the single source of truth consumed by
// bidding, trick resolution and card-play heuristics.
const (
	rankValueRight      = 16
	rankValueLeft       = 15
	rankValueTrumpAce   = 14
	rankValueTrumpKing  = 13
	rankValueTrumpQueen = 12
	rankValueTrumpTen   = 11
	rankValueTrumpNine  = 10
)

// IsRightBower reports whether c is the jack of trump.
func IsRightBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether c is the off-suit jack of trump's color.
func IsLeftBower(c Card, trump Suit) bool {
	return c.Rank == Jack && trump != NoSuit && c.Suit == trump.SameColorSuit()
}

// IsTrump reports whether c belongs to the trump suit, counting the left
// bower as trump.
func IsTrump(c Card, trump Suit) bool {
	return c.Suit == trump || IsLeftBower(c, trump)
}

// EffectiveSuit returns the suit c plays as: the left bower counts as the
// trump suit, every other card as its printed suit.
func EffectiveSuit(c Card, trump Suit) Suit {
	if IsLeftBower(c, trump) {
		return trump
	}
	return c.Suit
}

// RankValue returns c's position in the total order for the given trump
// suit: right bower highest, left bower second, remaining trump by the
// trump ladder 9 < 10 < Q < K < A, all strictly above the off-suit ladder
// 9 < 10 < J < Q < K < A.
func RankValue(c Card, trump Suit) int {
	if trump != NoSuit {
		if IsRightBower(c, trump) {
			return rankValueRight
		}
		if IsLeftBower(c, trump) {
			return rankValueLeft
		}
		if c.Suit == trump {
			switch c.Rank {
			case Ace:
				return rankValueTrumpAce
			case King:
				return rankValueTrumpKing
			case Queen:
				return rankValueTrumpQueen
			case Ten:
				return rankValueTrumpTen
			case Nine:
				return rankValueTrumpNine
			}
		}
	}
	return int(c.Rank) - int(Nine) + 1
}
