package blackjack

import (
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)
	logger := logrus.StandardLogger()
	input := &scriptedInput{}
	output := &recordingOutput{}

	opts := DefaultOptions()
	opts.MinBet = 0
	game, err := NewGame(logger, input, output, opts)
	a.Nil(game)
	a.EqualError(err, "min bet must be > 0")

	game, err = NewGame(logger, nil, output, DefaultOptions())
	a.Nil(game)
	a.EqualError(err, "game requires an input")

	game, err = NewGame(logger, input, nil, DefaultOptions())
	a.Nil(game)
	a.EqualError(err, "game requires an output")

	game, err = NewGame(logger, input, output, DefaultOptions())
	a.NoError(err)
	a.Equal("Blackjack", game.Name())
	a.Equal("Player", game.Player().Name)
	a.Equal(1000, game.Player().Cash())
	a.Equal(0, game.Dealer().NumHands())
	a.Equal(52, game.shoe.CardsLeft())
	a.False(game.IsOver())
}

func TestNewGame_seed(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.Seed = 42
	opts.NumDecks = 2

	g1, err := NewGame(logrus.StandardLogger(), &scriptedInput{}, &recordingOutput{}, opts)
	a.NoError(err)
	g2, err := NewGame(logrus.StandardLogger(), &scriptedInput{}, &recordingOutput{}, opts)
	a.NoError(err)

	a.Equal(104, g1.shoe.CardsLeft())
	a.Equal(g1.shoe.HashCode(), g2.shoe.HashCode())
}

func TestGame_Play(t *testing.T) {
	a := assert.New(t)

	input := &scriptedInput{bets: []int{10}, moves: []Move{MoveHit, MoveStand}}
	g, output := createTestGame(t, input, withCash(15))
	stackShoes(g, "2c,2h,13s,3c,7d,10d")

	summary, err := g.Play()
	a.NoError(err)
	a.Equal(&Summary{
		RoundsPlayed: 1,
		Losses:       1,
		StartingCash: 15,
		FinalCash:    5,
	}, summary)
	a.Equal(-10, summary.Net())
	a.True(output.hasMessage("You have insufficient cash to play! ($5 left, minimum bet is $10)"))

	// a finished game stays finished
	_, err = g.PlayRound()
	a.Equal(ErrGameOver, err)
}

func TestGame_PlayInputError(t *testing.T) {
	a := assert.New(t)

	input := &scriptedInput{bets: []int{10, 10}, moves: []Move{MoveStand, MoveStand}}
	g, _ := createTestGame(t, input)
	stackShoes(g, "2c,10h,13s,7c,6d,5h", "2c,10h,13s,9c,7d")

	summary, err := g.Play()
	a.Nil(summary)
	a.True(errors.Is(err, io.EOF))
	a.EqualError(err, "round 3 (betting): EOF")

	s := g.Summary()
	a.Equal(2, s.RoundsPlayed)
	a.Equal(1, s.Wins)
	a.Equal(1, s.Losses)
	a.Equal(1000, s.FinalCash)
	a.Equal(0, s.Net())
}

func TestGame_gameOverBeforeFirstRound(t *testing.T) {
	a := assert.New(t)

	g, _ := createTestGame(t, &scriptedInput{}, withCash(5))
	summary, err := g.Play()
	a.NoError(err)
	a.Equal(0, summary.RoundsPlayed)
	a.Equal(5, summary.FinalCash)
	a.True(g.IsOver())
}

func TestGame_logsSettledRounds(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()
	input := &scriptedInput{bets: []int{10}, moves: []Move{MoveStand}}
	g, err := NewGame(logger, input, &recordingOutput{}, DefaultOptions())
	a.NoError(err)
	stackShoes(g, "2c,10h,13s,7c,6d,13h")

	_, err = g.PlayRound()
	a.NoError(err)

	entry := hook.LastEntry()
	a.Equal("round settled", entry.Message)
	a.Equal(logrus.InfoLevel, entry.Level)
	a.Equal(OutcomeDealerBust, entry.Data["outcome"])
	a.Equal(10, entry.Data["adjustment"])
}
