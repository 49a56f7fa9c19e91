package blackjack

import (
	"blackjack/pkg/deck"
	"fmt"
)

// ParticipantState holds the hands shared by the dealer and the player
type ParticipantState struct {
	hands []deck.Hand
}

// Deal appends the cards to the hand at handIndex
// Empty hands are added until handIndex exists.
func (p *ParticipantState) Deal(handIndex int, cards ...*deck.Card) error {
	if handIndex < 0 {
		return fmt.Errorf("deal to hand %d: %w", handIndex, ErrNoSuchHand)
	}

	for len(p.hands) <= handIndex {
		p.hands = append(p.hands, deck.Hand{})
	}

	p.hands[handIndex].AddCards(cards...)
	return nil
}

// Hand returns a copy of the hand at handIndex
func (p *ParticipantState) Hand(handIndex int) (deck.Hand, error) {
	if handIndex < 0 || handIndex >= len(p.hands) {
		return nil, fmt.Errorf("hand %d of %d: %w", handIndex, len(p.hands), ErrNoSuchHand)
	}

	return p.hands[handIndex].Clone(), nil
}

// Score returns the score of the hand at handIndex
func (p *ParticipantState) Score(handIndex int) (int, error) {
	hand, err := p.Hand(handIndex)
	if err != nil {
		return 0, err
	}

	return Score(hand), nil
}

// NumHands returns the number of hands
func (p *ParticipantState) NumHands() int {
	return len(p.hands)
}

// Reset clears every hand and returns the discarded cards
func (p *ParticipantState) Reset() []*deck.Card {
	discards := make([]*deck.Card, 0)
	for _, hand := range p.hands {
		discards = append(discards, hand...)
	}

	p.hands = nil
	return discards
}

// cards returns the first hand, or nil if nothing has been dealt
func (p *ParticipantState) cards() deck.Hand {
	if len(p.hands) == 0 {
		return nil
	}

	return p.hands[0]
}
