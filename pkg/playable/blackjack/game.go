package blackjack

import (
	"blackjack/internal/rng"
	"blackjack/pkg/deck"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
)

// Game is a session of blackjack between one player and the dealer
type Game struct {
	options Options
	player  *Player
	dealer  *Dealer
	shoe    *deck.Shoe
	newShoe func() *deck.Shoe
	input   Input
	output  Output
	logger  logrus.FieldLogger

	round   *Round
	rounds  int
	summary Summary
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, input Input, output Output, options Options) (*Game, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if input == nil {
		return nil, errors.New("game requires an input")
	}

	if output == nil {
		return nil, errors.New("game requires an output")
	}

	var gen rng.Generator = rng.Crypto{}
	if options.Seed != 0 {
		gen = rng.NewSeeded(options.Seed)
	}

	g := &Game{
		options: options,
		player:  NewPlayer(options.PlayerName, options.StartingCash),
		dealer:  NewDealer(),
		newShoe: func() *deck.Shoe {
			return deck.NewShoe(options.NumDecks, gen)
		},
		input:  input,
		output: output,
		logger: logger,
		summary: Summary{
			StartingCash: options.StartingCash,
			FinalCash:    options.StartingCash,
		},
	}

	g.shoe = g.newShoe()
	return g, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Player returns the player
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the dealer
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Summary returns the tally so far
func (g *Game) Summary() Summary {
	return g.summary
}

// IsOver returns true if the player could no longer cover the minimum bet
func (g *Game) IsOver() bool {
	return g.round != nil && g.round.State == RoundStateGameOver
}

// Play plays rounds until the game is over and returns the tally
// An error from the input ends the game early and is returned.
func (g *Game) Play() (*Summary, error) {
	g.logger.WithFields(logrus.Fields{
		"player": g.player.Name,
		"cash":   g.player.Cash(),
		"decks":  g.options.NumDecks,
	}).Info("game started")

	for {
		if _, err := g.PlayRound(); err != nil {
			if !errors.Is(err, ErrGameOver) {
				return nil, err
			}

			summary := g.summary
			g.logger.WithFields(logrus.Fields{
				"rounds": summary.RoundsPlayed,
				"net":    summary.Net(),
			}).Info("game over")

			return &summary, nil
		}
	}
}

// PlayRound plays one round from the bet through the reset
// If a step fails, the stakes are returned and the table is cleared before the error is returned.
// ErrGameOver is returned if the player can't cover the minimum bet.
func (g *Game) PlayRound() (*RoundResult, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}

	g.rounds++
	r := newRound(g.rounds, g.player.Cash())
	g.round = r

	for !r.IsOver() {
		if err := g.step(r); err != nil {
			err = fmt.Errorf("round %d (%s): %w", r.Number, r.State, err)
			g.abandon(r)
			return nil, err
		}
	}

	if r.State == RoundStateGameOver {
		return nil, ErrGameOver
	}

	return r.Result, nil
}
