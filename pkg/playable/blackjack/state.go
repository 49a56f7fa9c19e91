package blackjack

import "blackjack/pkg/deck"

// GameState is what the player can see of the table
// A hidden hole card is a nil entry in Dealer.Cards.
type GameState struct {
	Round          int         `json:"round"`
	State          RoundState  `json:"state"`
	Player         PlayerState `json:"player"`
	Dealer         DealerState `json:"dealer"`
	MinBet         int         `json:"minBet"`
	MaxBet         int         `json:"maxBet"`
	CardsRemaining int         `json:"cardsRemaining"`
}

// PlayerState is the player's view of themself
type PlayerState struct {
	Name      string       `json:"name"`
	Cash      int          `json:"cash"`
	Bet       int          `json:"bet"`
	Insurance int          `json:"insurance"`
	Cards     []*deck.Card `json:"cards"`
	Score     int          `json:"score"`
	Soft      bool         `json:"soft"`
}

// DealerState is the player's view of the dealer
type DealerState struct {
	Cards       []*deck.Card `json:"cards"`
	HoleVisible bool         `json:"holeVisible"`
	Score       int          `json:"score"`
}

// GameState returns a snapshot of the table
func (g *Game) GameState() *GameState {
	state := &GameState{
		MinBet:         g.options.MinBet,
		MaxBet:         g.options.MaxBet,
		CardsRemaining: g.shoe.CardsLeft(),
	}

	if g.round != nil {
		state.Round = g.round.Number
		state.State = g.round.State
	}

	playerCards := g.player.cards().Clone()
	state.Player = PlayerState{
		Name:      g.player.Name,
		Cash:      g.player.Cash(),
		Bet:       g.player.Bet(),
		Insurance: g.player.Insurance(),
		Cards:     playerCards,
		Score:     Score(playerCards),
		Soft:      IsSoft(playerCards),
	}

	state.Dealer = DealerState{
		Cards:       g.dealer.VisibleCards(),
		HoleVisible: g.dealer.IsHoleVisible(),
		Score:       g.dealer.VisibleScore(),
	}

	return state
}
