package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	a.Equal(10, opts.MinBet)
	a.Equal(100, opts.MaxBet)
	a.Equal(1000, opts.StartingCash)
	a.Equal(1, opts.NumDecks)
	a.Equal(Ratio{Num: 3, Denom: 2}, opts.BlackjackPayout)
	a.Equal(Ratio{Num: 2, Denom: 1}, opts.InsurancePayout)
	a.NoError(opts.Validate())
}

func TestOptions_Validate(t *testing.T) {
	test := func(modify func(*Options), expected string) {
		t.Helper()
		opts := DefaultOptions()
		modify(&opts)
		assert.EqualError(t, opts.Validate(), expected)
	}

	test(func(o *Options) { o.MinBet = 0 }, "min bet must be > 0")
	test(func(o *Options) { o.MaxBet = 5 }, "max bet must be >= min bet")
	test(func(o *Options) { o.StartingCash = -1 }, "starting cash must be >= 0")
	test(func(o *Options) { o.NumDecks = 0 }, "number of decks must be >= 1")
	test(func(o *Options) { o.BlackjackPayout = Ratio{Num: 3} }, "ratio denominator must be > 0")
	test(func(o *Options) { o.InsurancePayout = Ratio{Num: 2, Denom: -1} }, "ratio denominator must be > 0")
}

func TestValidateBet(t *testing.T) {
	a := assert.New(t)

	a.NoError(ValidateBet(10, 10, 100))
	a.NoError(ValidateBet(100, 10, 100))
	a.EqualError(ValidateBet(9, 10, 100), "bet of $9 is below the minimum of $10")
	a.EqualError(ValidateBet(101, 10, 100), "bet of $101 is above the maximum of $100")
	a.ErrorIs(ValidateBet(101, 10, 100), ErrInvalidBet)
}
