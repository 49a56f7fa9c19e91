package deck

import (
	"blackjack/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrEmptyShoe is an error when Draw() asks for more cards than remain
var ErrEmptyShoe = errors.New("not enough cards left in the shoe")

// CardsPerDeck is the number of cards in one standard deck
const CardsPerDeck = 52

// Shoe is the pile of one or more shuffled decks that cards are drawn from
// The top of the shoe is the end of Cards.
type Shoe struct {
	Cards    []*Card `json:"cards"`
	numDecks int
	rng      rng.Generator
}

// NewShoe returns a shuffled shoe built from numDecks standard decks
func NewShoe(numDecks int, gen rng.Generator) *Shoe {
	if numDecks < 1 {
		panic(fmt.Sprintf("a shoe needs at least one deck, got %d", numDecks))
	}

	s := &Shoe{
		numDecks: numDecks,
		rng:      gen,
	}

	s.build()
	s.Shuffle()
	return s
}

func (s *Shoe) build() {
	cards := make([]*Card, 0, CardsPerDeck*s.numDecks)
	for i := 0; i < s.numDecks; i++ {
		for _, suit := range Suits {
			for rank := MinRank; rank <= MaxRank; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	s.Cards = cards
}

// Shuffle shuffles the cards remaining in the shoe
func (s *Shoe) Shuffle() {
	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// Draw removes the top n cards and returns them in the order they were drawn
// If fewer than n cards remain, ErrEmptyShoe is returned and the shoe is untouched.
func (s *Shoe) Draw(n int) ([]*Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}

	if !s.CanDraw(n) {
		return nil, fmt.Errorf("draw %d with %d left: %w", n, len(s.Cards), ErrEmptyShoe)
	}

	cards := make([]*Card, n)
	for i := 0; i < n; i++ {
		last := len(s.Cards) - 1
		cards[i] = s.Cards[last]
		s.Cards = s.Cards[:last]
	}

	return cards, nil
}

// Add puts the cards at the bottom of the shoe
func (s *Shoe) Add(cards ...*Card) {
	newCards := make([]*Card, 0, len(cards)+len(s.Cards))
	newCards = append(newCards, cards...)
	s.Cards = append(newCards, s.Cards...)
}

// CanDraw returns true if there are {want} cards left in the shoe
func (s *Shoe) CanDraw(want int) bool {
	return len(s.Cards) >= want
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// NumDecks returns how many decks the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// HashCode returns a SHA1 hash code of the shoe.
func (s *Shoe) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range s.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
