package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOutcome(t *testing.T) {
	a := assert.New(t)

	for _, o := range []Outcome{OutcomeBlackjack, OutcomeWin, OutcomeDealerBust} {
		a.True(o.IsWin(), o)
		a.False(o.IsLoss(), o)
	}

	for _, o := range []Outcome{OutcomeLose, OutcomeDealerBlackjack, OutcomeBust} {
		a.False(o.IsWin(), o)
		a.True(o.IsLoss(), o)
	}

	for _, o := range []Outcome{OutcomePush, OutcomeSurrender} {
		a.False(o.IsWin(), o)
		a.False(o.IsLoss(), o)
	}
}

func TestSummary_record(t *testing.T) {
	a := assert.New(t)

	s := Summary{StartingCash: 100, FinalCash: 100}
	s.record(&RoundResult{Outcome: OutcomeBlackjack, CashAfter: 115})
	s.record(&RoundResult{Outcome: OutcomePush, CashAfter: 115})
	s.record(&RoundResult{Outcome: OutcomeBust, CashAfter: 105})
	s.record(&RoundResult{Outcome: OutcomeSurrender, CashAfter: 100})
	s.record(&RoundResult{Outcome: OutcomeDealerBust, CashAfter: 110})

	a.Equal(Summary{
		RoundsPlayed: 5,
		Wins:         2,
		Losses:       1,
		Pushes:       1,
		Blackjacks:   1,
		Surrenders:   1,
		StartingCash: 100,
		FinalCash:    110,
	}, s)
	a.Equal(10, s.Net())
}

func TestRoundResult_Adjustment(t *testing.T) {
	r := &RoundResult{CashBefore: 1000, CashAfter: 989}
	assert.Equal(t, -11, r.Adjustment())
}
