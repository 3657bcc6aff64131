package engine

import "fmt"

// HandResult records everything about one completed hand. Team scores
// are derived by summing results.
type HandResult struct {
	Dealer      Seat
	Maker       Seat
	Trump       Suit
	Loner       bool
	NamedRound2 bool // trump named by suit call rather than order-up
	MakerTricks int  // tricks taken by the maker's team
	Points      int  // 1, 2 or 4
	WinningTeam Team
	Tricks      []Trick // the five tricks as played
}

// scoreHand scores the finished hand, appends its HandResult and either
// opens the next deal window or ends the game.
//
// Maker's team outcomes: all five alone → 4; all five → 2; three or
// four → 1; two or fewer → euchred, defenders score 2.
func (g *Game) scoreHand() error {
	if g.Maker == NoSeat || g.Trump == NoSuit {
		return fmt.Errorf("%w: scoring a hand with no maker", ErrMissingContext)
	}
	makerTeam := g.Maker.Team()
	makerTricks := g.TricksWon(makerTeam)

	var points int
	winner := makerTeam
	switch {
	case makerTricks == tricksPerHand && g.Loner:
		points = 4
	case makerTricks == tricksPerHand:
		points = 2
	case makerTricks >= 3:
		points = 1
	default:
		points = 2
		winner = makerTeam.Other()
	}

	result := HandResult{
		Dealer:      g.Dealer,
		Maker:       g.Maker,
		Trump:       g.Trump,
		Loner:       g.Loner,
		NamedRound2: g.TurnedDown != nil,
		MakerTricks: makerTricks,
		Points:      points,
		WinningTeam: winner,
		Tricks:      g.Tricks,
	}
	g.Results = append(g.Results, result)
	g.Current = NoSeat

	if g.IsGameOver() {
		g.Phase = PhaseGameOver
		return nil
	}
	g.Phase = PhaseHandDone
	return nil
}

// Score returns the team's cumulative points across completed hands.
func (g *Game) Score(team Team) int {
	total := 0
	for _, r := range g.Results {
		if r.WinningTeam == team {
			total += r.Points
		}
	}
	return total
}

// IsGameOver reports whether either team has reached the winning score.
func (g *Game) IsGameOver() bool {
	return g.Score(Team1) >= g.Rules.WinningScore || g.Score(Team2) >= g.Rules.WinningScore
}

// Winner returns the winning team once the game is over.
func (g *Game) Winner() (Team, error) {
	if !g.IsGameOver() {
		return 0, fmt.Errorf("%w: game is not over", ErrMissingContext)
	}
	if g.Score(Team1) >= g.Rules.WinningScore {
		return Team1, nil
	}
	return Team2, nil
}

// LastResult returns the most recent completed hand's result.
func (g *Game) LastResult() (HandResult, error) {
	if len(g.Results) == 0 {
		return HandResult{}, fmt.Errorf("%w: no hands completed", ErrMissingContext)
	}
	return g.Results[len(g.Results)-1], nil
}
