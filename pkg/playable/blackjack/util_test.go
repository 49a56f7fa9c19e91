package blackjack

import (
	"blackjack/internal/rng"
	"blackjack/pkg/deck"
	"blackjack/pkg/playable"
	"github.com/sirupsen/logrus"
	"io"
	"testing"
)

// scriptedInput replays canned answers and records what it was asked
type scriptedInput struct {
	bets      []int
	moves     []Move
	insurance []bool

	betBounds    [][2]int
	allowedMoves [][]Move
}

func (s *scriptedInput) ReadBet(min, max int) (int, error) {
	s.betBounds = append(s.betBounds, [2]int{min, max})
	if len(s.bets) == 0 {
		return 0, io.EOF
	}

	bet := s.bets[0]
	s.bets = s.bets[1:]
	return bet, nil
}

func (s *scriptedInput) ReadMove(allowed []Move) (Move, error) {
	s.allowedMoves = append(s.allowedMoves, allowed)
	if len(s.moves) == 0 {
		return -1, io.EOF
	}

	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func (s *scriptedInput) ReadInsuranceDecision() (bool, error) {
	if len(s.insurance) == 0 {
		return false, io.EOF
	}

	take := s.insurance[0]
	s.insurance = s.insurance[1:]
	return take, nil
}

type recordingOutput struct {
	messages []*playable.LogMessage
	tables   []*GameState
}

func (r *recordingOutput) Message(msg *playable.LogMessage) {
	r.messages = append(r.messages, msg)
}

func (r *recordingOutput) Table(state *GameState) {
	r.tables = append(r.tables, state)
}

func (r *recordingOutput) hasMessage(message string) bool {
	for _, msg := range r.messages {
		if msg.Message == message {
			return true
		}
	}

	return false
}

// stackedShoe returns a shoe that deals the cards in the order given
func stackedShoe(cards string) *deck.Shoe {
	shoe := deck.NewShoe(1, rng.NewSeeded(1))
	drawOrder := deck.CardsFromString(cards)
	shoe.Cards = make([]*deck.Card, len(drawOrder))
	for i, card := range drawOrder {
		shoe.Cards[len(drawOrder)-1-i] = card
	}

	return shoe
}

// stackShoes makes each round deal from the next stacked shoe
// Cards are listed as burn, player, dealer, player, dealer, then any draws.
func stackShoes(g *Game, rounds ...string) {
	g.shoe = stackedShoe(rounds[0])
	next := rounds[1:]
	g.newShoe = func() *deck.Shoe {
		if len(next) == 0 {
			return deck.NewShoe(1, rng.NewSeeded(1))
		}

		shoe := stackedShoe(next[0])
		next = next[1:]
		return shoe
	}
}

func createTestGame(t *testing.T, input *scriptedInput, opts ...func(*Options)) (*Game, *recordingOutput) {
	t.Helper()

	options := DefaultOptions()
	options.Seed = 1
	for _, opt := range opts {
		opt(&options)
	}

	output := &recordingOutput{}
	g, err := NewGame(logrus.StandardLogger(), input, output, options)
	if err != nil {
		t.Fatalf("could not create game: %v", err)
	}

	return g, output
}

func withCash(cash int) func(*Options) {
	return func(o *Options) {
		o.StartingCash = cash
	}
}

func rngForTest() rng.Generator {
	return rng.NewSeeded(1)
}
