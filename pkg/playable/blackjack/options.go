package blackjack

import "errors"

// Options contains options for creating a new game of blackjack
type Options struct {
	MinBet          int
	MaxBet          int
	StartingCash    int
	NumDecks        int
	BlackjackPayout Ratio
	InsurancePayout Ratio
	PlayerName      string

	// Seed makes the shuffles reproducible. Zero uses crypto/rand.
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		MinBet:          10,
		MaxBet:          100,
		StartingCash:    1000,
		NumDecks:        1,
		BlackjackPayout: Ratio{Num: 3, Denom: 2},
		InsurancePayout: Ratio{Num: 2, Denom: 1},
		PlayerName:      "Player",
	}
}

// Validate returns an error if the options can't be used for a game
func (o Options) Validate() error {
	if o.MinBet <= 0 {
		return errors.New("min bet must be > 0")
	}

	if o.MaxBet < o.MinBet {
		return errors.New("max bet must be >= min bet")
	}

	if o.StartingCash < 0 {
		return errors.New("starting cash must be >= 0")
	}

	if o.NumDecks < 1 {
		return errors.New("number of decks must be >= 1")
	}

	if err := o.BlackjackPayout.Validate(); err != nil {
		return err
	}

	return o.InsurancePayout.Validate()
}
