package blackjack

import "blackjack/pkg/deck"

// Player is the person playing against the dealer
type Player struct {
	ParticipantState
	Name string

	cash      int
	bet       int
	insurance int
}

// NewPlayer returns a new player with the starting cash
func NewPlayer(name string, cash int) *Player {
	return &Player{
		Name: name,
		cash: cash,
	}
}

// Cash returns the cash not currently on the table
func (p *Player) Cash() int {
	return p.cash
}

// Bet returns the total bet for the current round
func (p *Player) Bet() int {
	return p.bet
}

// Insurance returns the insurance side bet for the current round
func (p *Player) Insurance() int {
	return p.insurance
}

// TakeBet moves amount from cash to the bet
// Returns false and changes nothing if the player can't cover it.
// Bets add up over the round, which is how a double or a hit raises the stake.
func (p *Player) TakeBet(amount int) bool {
	if amount < 0 || amount > p.cash {
		return false
	}

	p.cash -= amount
	p.bet += amount
	return true
}

// TakeInsurance moves amount from cash to the insurance bet
// The caller is responsible for validating the amount.
func (p *Player) TakeInsurance(amount int) {
	p.cash -= amount
	p.insurance += amount
}

// PayoutBet returns the bet plus the bet at the given ratio
// The bet itself is cleared by Reset.
func (p *Player) PayoutBet(ratio Ratio) {
	p.cash += p.bet + ratio.Apply(p.bet)
}

// PayoutInsurance returns the insurance plus the insurance at the given ratio
func (p *Player) PayoutInsurance(ratio Ratio) {
	p.cash += p.insurance + ratio.Apply(p.insurance)
}

// Refund returns the bet and the insurance to cash and returns the amount refunded
// Use it for a round that ends without being settled.
func (p *Player) Refund() int {
	refund := p.bet + p.insurance
	p.cash += refund
	p.bet = 0
	p.insurance = 0
	return refund
}

// CanDouble returns true if the player has cash to match the bet
func (p *Player) CanDouble() bool {
	return p.bet < p.cash
}

// Reset clears the hands, the bet, and the insurance, and returns the discarded cards
func (p *Player) Reset() []*deck.Card {
	p.bet = 0
	p.insurance = 0
	return p.ParticipantState.Reset()
}
