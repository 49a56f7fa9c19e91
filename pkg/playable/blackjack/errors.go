package blackjack

import (
	"errors"
	"fmt"
)

// ErrNoSuchHand is an error when a participant is asked for a hand it doesn't have
var ErrNoSuchHand = errors.New("no such hand")

// ErrInvalidBet is an error when a bet is outside of the allowed range
var ErrInvalidBet = errors.New("invalid bet")

// ErrInvalidMoveText is an error when the text doesn't match any move
var ErrInvalidMoveText = errors.New("that's not a valid move command")

// ErrGameOver is returned when a round is requested after the game has ended
var ErrGameOver = errors.New("game is over")

// BetError is an error for a bet amount outside of [Min, Max]
// errors.Is(err, ErrInvalidBet) is true for a BetError
type BetError struct {
	Amount int
	Min    int
	Max    int
}

func (b BetError) Error() string {
	if b.Amount < b.Min {
		return fmt.Sprintf("bet of $%d is below the minimum of $%d", b.Amount, b.Min)
	}

	return fmt.Sprintf("bet of $%d is above the maximum of $%d", b.Amount, b.Max)
}

// Is makes BetError match ErrInvalidBet
func (b BetError) Is(target error) bool {
	return target == ErrInvalidBet
}

// ValidateBet returns a BetError if amount is not within [min, max]
func ValidateBet(amount, min, max int) error {
	if amount < min || amount > max {
		return BetError{Amount: amount, Min: min, Max: max}
	}

	return nil
}

// DisallowedMoveError is an error when a recognized move can't be made right now
type DisallowedMoveError struct {
	Move Move
}

func (d DisallowedMoveError) Error() string {
	return fmt.Sprintf("you can't %s now", d.Move)
}
