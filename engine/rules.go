package engine

// Rules holds configurable game rule settings. The engine consumes these
// but does not own them; callers may tweak them per table.
type Rules struct {
	// EnforceFollowSuit requires a seat holding the led suit (left bower
	// counted as trump) to follow it. When false any card may be played.
	EnforceFollowSuit bool

	// AllowRenege tolerates reneges instead of rejecting them. It only
	// matters when EnforceFollowSuit is true.
	AllowRenege bool

	// WinningScore ends the game the instant a team reaches it.
	WinningScore int
}

// DefaultRules returns the standard table rules: follow suit enforced,
// no reneging, first team to 10 wins.
func DefaultRules() Rules {
	return Rules{
		EnforceFollowSuit: true,
		AllowRenege:       false,
		WinningScore:      10,
	}
}
