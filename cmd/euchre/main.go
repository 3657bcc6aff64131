// euchre is a terminal client: you take seat 1 against three bot seats.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/jason-s-yu/euchre/engine"
	"github.com/jason-s-yu/euchre/engine/bot"
)

const humanSeat = engine.Seat1

func main() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Eu", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chre", pterm.FgDarkGray.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("You").Show()
	pterm.Println()

	game := engine.NewGame(engine.DefaultRules(), [engine.NumSeats]engine.PlayerConfig{
		{Name: name, Human: true},
		{Name: "West"},
		{Name: "Partner"},
		{Name: "East"},
	}, nil)

	dealer, err := game.PickDealer()
	fatalOn(err)
	pterm.Info.Printfln("%s deals first", seatName(game, dealer))

	for {
		switch game.Phase {
		case engine.PhaseDeal, engine.PhaseHandDone:
			fatalOn(game.StartDeal())
			pterm.Println()
			pterm.Info.Printfln("%s deals. Flip: %s", seatName(game, game.Dealer), game.Flip)
			printHand(game)

		case engine.PhaseGameOver:
			winner, err := game.Winner()
			fatalOn(err)
			pterm.DefaultBox.WithTitle("GAME OVER").Printfln(
				"Team %d wins %d–%d", winner, game.Score(winner), game.Score(winner.Other()))
			return

		default:
			seat, kind := game.Awaiting()
			if seat == humanSeat {
				promptHuman(game, kind)
			} else {
				actBot(game, seat, kind)
			}
		}
	}
}

func promptHuman(g *engine.Game, kind engine.InputKind) {
	switch kind {
	case engine.InputBid:
		promptBid(g)
	case engine.InputDiscard:
		card := chooseCard(g, "Pick up complete — discard a card", g.Player(humanSeat).Hand)
		fatalOn(g.SubmitDiscard(humanSeat, card))
	case engine.InputCard:
		legal, err := g.LegalPlays(humanSeat)
		fatalOn(err)
		card := chooseCard(g, "Your play", legal)
		playCard(g, humanSeat, card)
	}
}

func promptBid(g *engine.Game) {
	if g.Phase == engine.PhaseBidRound1 {
		options := []string{"Pass", "Order it up", "Order it up alone"}
		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(fmt.Sprintf("Flip is %s — your bid", g.Flip)).
			Show()
		action := engine.BidAction{Call: choice != "Pass", Loner: choice == options[2]}
		fatalOn(g.SubmitBid(humanSeat, action))
		announceTrump(g, action)
		return
	}

	options := []string{}
	if humanSeat != g.Dealer {
		options = append(options, "Pass")
	}
	var suits []engine.Suit
	for _, s := range engine.Suits {
		if g.TurnedDown != nil && s == g.TurnedDown.Suit {
			continue
		}
		suits = append(suits, s)
		options = append(options, "Name "+s.String(), "Name "+s.String()+" alone")
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Name a trump suit").
		Show()
	if choice == "Pass" {
		fatalOn(g.SubmitBid(humanSeat, engine.BidAction{}))
		return
	}
	for _, s := range suits {
		if choice == "Name "+s.String() || choice == "Name "+s.String()+" alone" {
			action := engine.BidAction{Call: true, Suit: s, Loner: choice == "Name "+s.String()+" alone"}
			fatalOn(g.SubmitBid(humanSeat, action))
			announceTrump(g, action)
			return
		}
	}
}

func actBot(g *engine.Game, seat engine.Seat, kind engine.InputKind) {
	switch kind {
	case engine.InputBid:
		d, err := bot.SuggestBid(g, bot.DefaultTuning)
		fatalOn(err)
		action := engine.BidAction{Call: d.Call, Suit: d.Suit, Loner: d.Loner}
		fatalOn(g.SubmitBid(seat, action))
		if !action.Call {
			pterm.Printfln("%s passes", seatName(g, seat))
		}
		announceTrump(g, action)
	case engine.InputDiscard:
		c, err := bot.SuggestDiscard(g, bot.DefaultTuning)
		fatalOn(err)
		fatalOn(g.SubmitDiscard(seat, c))
		pterm.Printfln("%s picks up and discards", seatName(g, seat))
	case engine.InputCard:
		c, _, err := bot.SuggestPlay(g, bot.DefaultTuning)
		fatalOn(err)
		playCard(g, seat, c)
	}
}

// playCard submits the card and reports trick and score transitions.
func playCard(g *engine.Game, seat engine.Seat, c engine.Card) {
	trickIdx := len(g.Tricks) - 1
	handsBefore := len(g.Results)
	fatalOn(g.SubmitPlay(seat, c))
	pterm.Printfln("%s plays %s", seatName(g, seat), c)

	if trickIdx >= 0 && g.Tricks[trickIdx].Taker != engine.NoSeat {
		pterm.Info.Printfln("Trick to %s", seatName(g, g.Tricks[trickIdx].Taker))
	}
	if len(g.Results) > handsBefore {
		r := g.Results[len(g.Results)-1]
		pterm.DefaultBox.WithTitle("HAND SCORED").Printfln(
			"Team %d scores %d (maker took %d tricks)\nTeam 1: %d   Team 2: %d",
			r.WinningTeam, r.Points, r.MakerTricks,
			g.Score(engine.Team1), g.Score(engine.Team2))
	}
}

func announceTrump(g *engine.Game, action engine.BidAction) {
	if !action.Call || !g.TrumpNamed() {
		return
	}
	alone := ""
	if g.Loner {
		alone = ", alone"
	}
	pterm.Info.Printfln("%s makes %s trump%s", seatName(g, g.Maker), g.Trump, alone)
}

func chooseCard(g *engine.Game, prompt string, from []engine.Card) engine.Card {
	options := make([]string, len(from))
	for i, c := range from {
		options[i] = c.String()
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(prompt).
		Show()
	for i, o := range options {
		if o == choice {
			return from[i]
		}
	}
	return from[0]
}

func printHand(g *engine.Game) {
	hand := g.Player(humanSeat).Hand
	out := ""
	for i, c := range hand {
		if i > 0 {
			out += "  "
		}
		out += c.String()
	}
	pterm.Printfln("Your hand: %s", out)
}

func seatName(g *engine.Game, s engine.Seat) string {
	return fmt.Sprintf("%s (seat %d)", g.Player(s).Name, s)
}

func fatalOn(err error) {
	if err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
}
