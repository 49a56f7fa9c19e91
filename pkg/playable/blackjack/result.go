package blackjack

// Outcome is how a round ended for the player
type Outcome string

// Outcome constants
const (
	OutcomeBlackjack       Outcome = "blackjack"
	OutcomeWin             Outcome = "win"
	OutcomeDealerBust      Outcome = "dealer-bust"
	OutcomePush            Outcome = "push"
	OutcomeLose            Outcome = "lose"
	OutcomeDealerBlackjack Outcome = "dealer-blackjack"
	OutcomeBust            Outcome = "bust"
	OutcomeSurrender       Outcome = "surrender"
)

// IsWin returns true if the player was paid more than their bet
func (o Outcome) IsWin() bool {
	return o == OutcomeBlackjack || o == OutcomeWin || o == OutcomeDealerBust
}

// IsLoss returns true if the player lost their whole bet
func (o Outcome) IsLoss() bool {
	return o == OutcomeLose || o == OutcomeDealerBlackjack || o == OutcomeBust
}

// RoundResult is the settled result of a round
type RoundResult struct {
	Round       int     `json:"round"`
	Outcome     Outcome `json:"outcome"`
	Bet         int     `json:"bet"`
	Insurance   int     `json:"insurance"`
	PlayerScore int     `json:"playerScore"`
	DealerScore int     `json:"dealerScore"`
	CashBefore  int     `json:"cashBefore"`
	CashAfter   int     `json:"cashAfter"`
}

// Adjustment returns how much the player's cash changed over the round
func (r *RoundResult) Adjustment() int {
	return r.CashAfter - r.CashBefore
}

// Summary is the tally of a game session
type Summary struct {
	RoundsPlayed int `json:"roundsPlayed"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Pushes       int `json:"pushes"`
	Blackjacks   int `json:"blackjacks"`
	Surrenders   int `json:"surrenders"`
	StartingCash int `json:"startingCash"`
	FinalCash    int `json:"finalCash"`
}

// Net returns the player's total winnings, negative for a loss
func (s *Summary) Net() int {
	return s.FinalCash - s.StartingCash
}

func (s *Summary) record(result *RoundResult) {
	s.RoundsPlayed++
	s.FinalCash = result.CashAfter

	switch {
	case result.Outcome == OutcomePush:
		s.Pushes++
	case result.Outcome == OutcomeSurrender:
		s.Surrenders++
	case result.Outcome.IsWin():
		s.Wins++
	case result.Outcome.IsLoss():
		s.Losses++
	}

	if result.Outcome == OutcomeBlackjack {
		s.Blackjacks++
	}
}
