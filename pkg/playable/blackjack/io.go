package blackjack

import "blackjack/pkg/playable"

// Input supplies the player's decisions
// Implementations re-prompt on bad input and only return valid values.
type Input interface {
	// ReadBet returns a whole amount in [min, max]
	ReadBet(min, max int) (int, error)

	// ReadMove returns one of the allowed moves
	ReadMove(allowed []Move) (Move, error)

	// ReadInsuranceDecision returns true if the player wants insurance
	ReadInsuranceDecision() (bool, error)
}

// Output presents the game to the player
type Output interface {
	// Message narrates something that happened
	Message(msg *playable.LogMessage)

	// Table shows the current state of the table
	Table(state *GameState)
}
