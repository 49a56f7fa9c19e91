package deck

// Hand is the ordered cards a participant holds
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddCards adds the cards to the hand in order
func (h *Hand) AddCards(cards ...*Card) {
	*h = append(*h, cards...)
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// CardAt returns the card at the position or nil if there isn't one
func (h Hand) CardAt(i int) *Card {
	if i < 0 || i >= len(h) {
		return nil
	}

	return h[i]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
