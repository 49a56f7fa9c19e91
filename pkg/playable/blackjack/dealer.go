package blackjack

import "blackjack/pkg/deck"

// positions in the dealer's hand
const (
	UpCardIndex   = 0
	HoleCardIndex = 1
)

// DealerStandsOn is the score the dealer stops drawing at
// The dealer stands on every 17, soft or hard.
const DealerStandsOn = 17

// Dealer plays for the house
type Dealer struct {
	ParticipantState
	holeVisible bool
}

// NewDealer returns a new dealer
func NewDealer() *Dealer {
	return &Dealer{}
}

// UpCard returns the face-up card or nil
func (d *Dealer) UpCard() *deck.Card {
	return d.cards().CardAt(UpCardIndex)
}

// HoleCard returns the hole card or nil
func (d *Dealer) HoleCard() *deck.Card {
	return d.cards().CardAt(HoleCardIndex)
}

// EligibleForInsurance returns true if the hole card is an ace or worth ten
func (d *Dealer) EligibleForInsurance() bool {
	hole := d.HoleCard()
	if hole == nil {
		return false
	}

	return hole.IsAce() || hole.Rank >= deck.Ten
}

// ShowCards turns the hole card face up until the next Reset
func (d *Dealer) ShowCards() {
	d.holeVisible = true
}

// IsHoleVisible returns true if the hole card has been revealed
func (d *Dealer) IsHoleVisible() bool {
	return d.holeVisible
}

// VisibleCards returns the dealer's hand with a nil in place of a hidden hole card
func (d *Dealer) VisibleCards() []*deck.Card {
	cards := d.cards().Clone()
	if !d.holeVisible && len(cards) > HoleCardIndex {
		cards[HoleCardIndex] = nil
	}

	return cards
}

// VisibleScore returns the score of the cards the player can see
func (d *Dealer) VisibleScore() int {
	visible := make([]*deck.Card, 0, 2)
	for _, card := range d.VisibleCards() {
		if card != nil {
			visible = append(visible, card)
		}
	}

	return Score(visible)
}

// ShouldDraw returns true while the dealer's score is below DealerStandsOn
func (d *Dealer) ShouldDraw() bool {
	return Score(d.cards()) < DealerStandsOn
}

// Reset clears the hand, hides the hole card, and returns the discarded cards
func (d *Dealer) Reset() []*deck.Card {
	d.holeVisible = false
	return d.ParticipantState.Reset()
}
