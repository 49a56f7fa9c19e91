package blackjack

import (
	"errors"
	"fmt"
)

// Ratio is a payout ratio expressed as two integers, e.g., 3:2
type Ratio struct {
	Num   int `json:"num" yaml:"num" toml:"num"`
	Denom int `json:"denom" yaml:"denom" toml:"denom"`
}

// ratios used by settlement
var (
	// RatioPush returns the bet and nothing more
	RatioPush = Ratio{Num: 0, Denom: 1}

	// RatioEvenMoney pays the bet 1:1
	RatioEvenMoney = Ratio{Num: 1, Denom: 1}

	// RatioSurrender forfeits half of the bet
	RatioSurrender = Ratio{Num: -1, Denom: 2}
)

// Apply returns amount * ratio rounded to the nearest whole unit
// Halves are rounded away from zero, so 21 at -1:2 is -11 and 15 at 3:2 is 23.
func (r Ratio) Apply(amount int) int {
	return divRound(amount*r.Num, r.Denom)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Denom)
}

// Validate ensures the ratio can be applied
func (r Ratio) Validate() error {
	if r.Denom <= 0 {
		return errors.New("ratio denominator must be > 0")
	}

	return nil
}

// divRound divides n by d, rounding half away from zero
func divRound(n, d int) int {
	if d < 0 {
		n, d = -n, -d
	}

	q, rem := n/d, n%d
	if rem < 0 {
		rem = -rem
	}

	if 2*rem >= d {
		if n < 0 {
			q--
		} else {
			q++
		}
	}

	return q
}
