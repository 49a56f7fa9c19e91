package blackjack

import "blackjack/pkg/deck"

// Blackjack is the best possible score
const Blackjack = 21

// softAceBonus is what an ace adds when it counts as 11 instead of 1
const softAceBonus = 10

// Score returns the best blackjack total for the cards
// At most one ace is ever counted as 11, and only when that cannot bust the hand.
func Score(cards []*deck.Card) int {
	sum, aces := splitAces(cards)
	if sum > 10 {
		return sum + aces
	}

	if aces >= 1 && aces <= 11-sum {
		return sum + 11 + (aces - 1)
	}

	return sum + aces
}

// IsSoft returns true if the score counts an ace as 11
func IsSoft(cards []*deck.Card) bool {
	sum, aces := splitAces(cards)
	return aces > 0 && Score(cards) == sum+aces+softAceBonus
}

// IsBust returns true if the score is over 21
func IsBust(cards []*deck.Card) bool {
	return Score(cards) > Blackjack
}

// IsNatural returns true if the cards are a two-card 21
func IsNatural(cards []*deck.Card) bool {
	return len(cards) == 2 && Score(cards) == Blackjack
}

func splitAces(cards []*deck.Card) (sum int, aces int) {
	for _, card := range cards {
		if card.IsAce() {
			aces++
		} else {
			sum += card.Value()
		}
	}

	return sum, aces
}
