package blackjack

import (
	"blackjack/pkg/deck"
	"blackjack/pkg/playable"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting is waiting on the player's bet
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing burns a card and deals two cards each
	RoundStateDealing RoundState = "dealing"

	// RoundStateInsuranceOffer offers the insurance side bet
	RoundStateInsuranceOffer RoundState = "insurance-offer"

	// RoundStateBlackjackCheck settles naturals
	RoundStateBlackjackCheck RoundState = "blackjack-check"

	// RoundStatePlayerDecision is waiting on the player's moves
	RoundStatePlayerDecision RoundState = "player-decision"

	// RoundStateDealerPlay means the dealer is drawing to 17
	RoundStateDealerPlay RoundState = "dealer-play"

	// RoundStateSettlement compares the hands and pays out
	RoundStateSettlement RoundState = "settlement"

	// RoundStateReset clears the table for the next round
	RoundStateReset RoundState = "reset"

	// RoundStateGameOver means the player can't cover the minimum bet
	RoundStateGameOver RoundState = "game-over"
)

// Round is a single hand of blackjack from bet to reset
type Round struct {
	Number int          `json:"number"`
	State  RoundState   `json:"state"`
	Result *RoundResult `json:"result,omitempty"`

	cashBefore int
	done       bool
}

func newRound(number, cash int) *Round {
	return &Round{
		Number:     number,
		State:      RoundStateBetting,
		cashBefore: cash,
	}
}

// IsOver returns true once the round has been reset or the game ended
func (r *Round) IsOver() bool {
	return r.done
}

// step runs the current state and moves the round to the next one
func (g *Game) step(r *Round) error {
	switch r.State {
	case RoundStateBetting:
		return g.takeBet(r)
	case RoundStateDealing:
		return g.deal(r)
	case RoundStateInsuranceOffer:
		return g.offerInsurance(r)
	case RoundStateBlackjackCheck:
		return g.checkBlackjack(r)
	case RoundStatePlayerDecision:
		return g.playerDecision(r)
	case RoundStateDealerPlay:
		return g.dealerPlay(r)
	case RoundStateSettlement:
		return g.settle(r)
	case RoundStateReset:
		return g.reset(r)
	}

	return fmt.Errorf("cannot step from state: %s", r.State)
}

func (g *Game) setState(r *Round, state RoundState) {
	g.logger.WithFields(logrus.Fields{
		"round": r.Number,
		"from":  r.State,
		"to":    state,
	}).Debug("round state")

	r.State = state
}

func (g *Game) takeBet(r *Round) error {
	if g.player.Cash() < g.options.MinBet {
		g.message(playable.SubjectPlayer, "You have insufficient cash to play! ($%d left, minimum bet is $%d)", g.player.Cash(), g.options.MinBet)
		g.setState(r, RoundStateGameOver)
		r.done = true
		return nil
	}

	maxBet := min(g.player.Cash(), g.options.MaxBet)
	g.message(playable.SubjectPlayer, "You have $%d. You must bet at least $%d and no more than $%d.", g.player.Cash(), g.options.MinBet, maxBet)

	amount, err := g.input.ReadBet(g.options.MinBet, maxBet)
	if err != nil {
		return err
	}

	if err := ValidateBet(amount, g.options.MinBet, maxBet); err != nil {
		return err
	}

	if !g.player.TakeBet(amount) {
		return fmt.Errorf("player cannot cover a bet of $%d", amount)
	}

	g.message(playable.SubjectPlayer, "%s bets $%d", g.player.Name, amount)
	g.setState(r, RoundStateDealing)
	return nil
}

func (g *Game) deal(r *Round) error {
	if _, err := g.shoe.Draw(1); err != nil {
		return err
	}

	g.message(playable.SubjectTable, "The top card is burned. Dealing...")

	for i := 0; i < 2; i++ {
		if err := g.dealPlayer(); err != nil {
			return err
		}

		if err := g.dealDealer(); err != nil {
			return err
		}
	}

	g.cardsMessage(playable.SubjectDealer, []*deck.Card{g.dealer.UpCard()}, "The dealer shows")
	g.output.Table(g.GameState())

	if g.dealer.EligibleForInsurance() {
		g.setState(r, RoundStateInsuranceOffer)
	} else {
		g.setState(r, RoundStateBlackjackCheck)
	}

	return nil
}

func (g *Game) offerInsurance(r *Round) error {
	g.setState(r, RoundStateBlackjackCheck)

	maxInsurance := min(g.player.Bet()/2, g.player.Cash())
	if maxInsurance < 1 {
		g.logger.WithField("round", r.Number).Debug("insurance offer skipped, nothing to wager")
		return nil
	}

	g.message(playable.SubjectTable, "Insurance is open. If the dealer has a natural blackjack, insurance pays %s. Otherwise, you forfeit the insurance amount.", g.options.InsurancePayout)

	take, err := g.input.ReadInsuranceDecision()
	if err != nil {
		return err
	}

	if !take {
		return nil
	}

	g.message(playable.SubjectPlayer, "Your insurance bet can be up to half of your original bet.")
	amount, err := g.input.ReadBet(1, maxInsurance)
	if err != nil {
		return err
	}

	if err := ValidateBet(amount, 1, maxInsurance); err != nil {
		return err
	}

	g.player.TakeInsurance(amount)
	g.message(playable.SubjectPlayer, "%s takes $%d of insurance", g.player.Name, amount)
	return nil
}

func (g *Game) checkBlackjack(r *Round) error {
	playerHand, err := g.player.Hand(0)
	if err != nil {
		return err
	}

	dealerHand, err := g.dealer.Hand(0)
	if err != nil {
		return err
	}

	playerHas21 := IsNatural(playerHand)
	dealerHas21 := IsNatural(dealerHand)

	if dealerHas21 {
		g.dealer.ShowCards()
		g.cardsMessage(playable.SubjectDealer, g.dealer.VisibleCards(), "The dealer has blackjack!")
		g.output.Table(g.GameState())

		if g.player.Insurance() > 0 {
			g.player.PayoutInsurance(g.options.InsurancePayout)
			g.message(playable.SubjectPlayer, "Your insurance is paid out at %s.", g.options.InsurancePayout)
		}

		if playerHas21 {
			g.player.PayoutBet(RatioPush)
			g.message(playable.SubjectPlayer, "You tied with the dealer. Your bet is returned to you.")
			return g.finish(r, OutcomePush)
		}

		g.message(playable.SubjectPlayer, "You lose your bet...")
		return g.finish(r, OutcomeDealerBlackjack)
	}

	if g.player.Insurance() > 0 {
		g.message(playable.SubjectPlayer, "The dealer doesn't have blackjack. You've lost your insurance.")
	}

	if playerHas21 {
		g.player.PayoutBet(g.options.BlackjackPayout)
		g.message(playable.SubjectPlayer, "Blackjack! You are paid out at %s.", g.options.BlackjackPayout)
		return g.finish(r, OutcomeBlackjack)
	}

	g.setState(r, RoundStatePlayerDecision)
	return nil
}

func (g *Game) playerDecision(r *Round) error {
	allowed := []Move{MoveStand, MoveHit, MoveSurrender, MoveHelp}
	if g.player.CanDouble() {
		allowed = append(allowed, MoveDouble)
	}

	move, err := g.readMove(allowed)
	if err != nil {
		return err
	}

	switch move {
	case MoveStand:
		g.message(playable.SubjectPlayer, "%s stands", g.player.Name)

	case MoveSurrender:
		g.player.PayoutBet(RatioSurrender)
		g.message(playable.SubjectPlayer, "%s surrenders. Half of the bet is returned.", g.player.Name)
		return g.finish(r, OutcomeSurrender)

	case MoveDouble:
		bet := g.player.Bet()
		if !g.player.TakeBet(bet) {
			return fmt.Errorf("player cannot cover a double of $%d", bet)
		}

		g.message(playable.SubjectPlayer, "%s doubles down for another $%d", g.player.Name, bet)
		if err := g.hit(); err != nil {
			return err
		}

	case MoveHit:
		bet := g.player.Bet()
		if g.player.TakeBet(bet) {
			g.message(playable.SubjectPlayer, "%s adds $%d to the bet", g.player.Name, bet)
		} else {
			g.logger.WithFields(logrus.Fields{
				"round": r.Number,
				"bet":   bet,
				"cash":  g.player.Cash(),
			}).Debug("hit without raising the bet")
		}

		if err := g.hit(); err != nil {
			return err
		}

		if err := g.keepHitting(); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unexpected move: %s", move)
	}

	hand, err := g.player.Hand(0)
	if err != nil {
		return err
	}

	if IsBust(hand) {
		g.setState(r, RoundStateSettlement)
	} else {
		g.setState(r, RoundStateDealerPlay)
	}

	return nil
}

// keepHitting offers more cards until the player stands or reaches 21
func (g *Game) keepHitting() error {
	for {
		score, err := g.player.Score(0)
		if err != nil {
			return err
		}

		if score >= Blackjack {
			return nil
		}

		move, err := g.readMove([]Move{MoveStand, MoveHit, MoveHelp})
		if err != nil {
			return err
		}

		if move == MoveStand {
			g.message(playable.SubjectPlayer, "%s stands", g.player.Name)
			return nil
		}

		if err := g.hit(); err != nil {
			return err
		}
	}
}

// readMove asks for a move until one other than help comes back
func (g *Game) readMove(allowed []Move) (Move, error) {
	for {
		move, err := g.input.ReadMove(allowed)
		if err != nil {
			return -1, err
		}

		if err := CheckMove(move, allowed); err != nil {
			return -1, err
		}

		if move != MoveHelp {
			return move, nil
		}
	}
}

func (g *Game) hit() error {
	if err := g.dealPlayer(); err != nil {
		return err
	}

	g.cardsMessage(playable.SubjectPlayer, []*deck.Card{g.player.cards().LastCard()}, "The dealer deals you a card")
	g.output.Table(g.GameState())
	return nil
}

func (g *Game) dealerPlay(r *Round) error {
	g.dealer.ShowCards()
	g.cardsMessage(playable.SubjectDealer, g.dealer.VisibleCards(), "The dealer flips over the hole card")
	g.output.Table(g.GameState())

	for g.dealer.ShouldDraw() {
		if err := g.dealDealer(); err != nil {
			return err
		}

		g.cardsMessage(playable.SubjectDealer, []*deck.Card{g.dealer.cards().LastCard()}, "The dealer deals a card to themself")
		g.output.Table(g.GameState())
	}

	score, err := g.dealer.Score(0)
	if err != nil {
		return err
	}

	g.message(playable.SubjectDealer, "The dealer finishes with %d", score)
	g.setState(r, RoundStateSettlement)
	return nil
}

func (g *Game) settle(r *Round) error {
	playerHand, err := g.player.Hand(0)
	if err != nil {
		return err
	}

	playerScore := Score(playerHand)
	if IsBust(playerHand) {
		g.message(playable.SubjectPlayer, "Oops! You've busted with %d.", playerScore)
		return g.finish(r, OutcomeBust)
	}

	dealerHand, err := g.dealer.Hand(0)
	if err != nil {
		return err
	}

	dealerScore := Score(dealerHand)
	switch {
	case dealerScore == playerScore:
		g.player.PayoutBet(RatioPush)
		g.message(playable.SubjectPlayer, "You tied with the dealer at %d. Your bet is returned to you.", playerScore)
		return g.finish(r, OutcomePush)
	case IsBust(dealerHand):
		g.player.PayoutBet(RatioEvenMoney)
		g.message(playable.SubjectDealer, "The dealer busted! You are paid out %s.", RatioEvenMoney)
		return g.finish(r, OutcomeDealerBust)
	case dealerScore > playerScore:
		g.message(playable.SubjectDealer, "The dealer beat you, %d to %d.", dealerScore, playerScore)
		return g.finish(r, OutcomeLose)
	}

	g.player.PayoutBet(RatioEvenMoney)
	g.message(playable.SubjectPlayer, "You beat the dealer, %d to %d! You are paid out %s.", playerScore, dealerScore, RatioEvenMoney)
	return g.finish(r, OutcomeWin)
}

// finish records the result and moves the round to reset
func (g *Game) finish(r *Round, outcome Outcome) error {
	playerScore, err := g.player.Score(0)
	if err != nil {
		return err
	}

	dealerScore, err := g.dealer.Score(0)
	if err != nil {
		return err
	}

	r.Result = &RoundResult{
		Round:       r.Number,
		Outcome:     outcome,
		Bet:         g.player.Bet(),
		Insurance:   g.player.Insurance(),
		PlayerScore: playerScore,
		DealerScore: dealerScore,
		CashBefore:  r.cashBefore,
		CashAfter:   g.player.Cash(),
	}

	g.summary.record(r.Result)

	g.logger.WithFields(logrus.Fields{
		"round":      r.Number,
		"outcome":    outcome,
		"bet":        r.Result.Bet,
		"adjustment": r.Result.Adjustment(),
	}).Info("round settled")

	g.setState(r, RoundStateReset)
	return nil
}

func (g *Game) reset(r *Round) error {
	if r.Result == nil {
		return errors.New("cannot reset a round without a result")
	}

	g.player.Reset()
	g.dealer.Reset()
	g.shoe = g.newShoe()

	g.logger.WithFields(logrus.Fields{
		"round": r.Number,
		"shoe":  g.shoe.HashCode(),
	}).Trace("new shoe")

	r.done = true
	return nil
}

// abandon returns the stakes of an unfinished round and clears the table for the next one
func (g *Game) abandon(r *Round) {
	refund := g.player.Refund()
	g.player.Reset()
	g.dealer.Reset()
	g.shoe = g.newShoe()

	g.logger.WithFields(logrus.Fields{
		"round":  r.Number,
		"state":  r.State,
		"refund": refund,
		"shoe":   g.shoe.HashCode(),
	}).Warn("round abandoned")

	r.done = true
}

func (g *Game) dealPlayer() error {
	cards, err := g.shoe.Draw(1)
	if err != nil {
		return err
	}

	return g.player.Deal(0, cards...)
}

func (g *Game) dealDealer() error {
	cards, err := g.shoe.Draw(1)
	if err != nil {
		return err
	}

	return g.dealer.Deal(0, cards...)
}

func (g *Game) message(subject playable.Subject, format string, a ...interface{}) {
	g.output.Message(playable.SimpleLogMessage(subject, format, a...))
}

func (g *Game) cardsMessage(subject playable.Subject, cards []*deck.Card, format string, a ...interface{}) {
	g.output.Message(playable.CardsLogMessage(subject, cards, format, a...))
}
