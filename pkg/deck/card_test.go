package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 10, Ten)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♡", CardFromString("2h").String())
	a.Equal("10♣", CardFromString("10c").String())
	a.Equal("J♣", CardFromString("11c").String())
	a.Equal("Q♢", CardFromString("12d").String())
	a.Equal("K♠", CardFromString("13s").String())
	a.Equal("A♠", CardFromString("14s").String())
}

func TestCard_Name(t *testing.T) {
	a := assert.New(t)
	a.Equal("Ace of Spades", CardFromString("14s").Name())
	a.Equal("King of Hearts", CardFromString("13h").Name())
	a.Equal("Queen of Diamonds", CardFromString("12d").Name())
	a.Equal("Jack of Clubs", CardFromString("11c").Name())
	a.Equal("10 of Hearts", CardFromString("10h").Name())
	a.Equal("2 of Clubs", CardFromString("2c").Name())
}

func TestCard_Value(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, CardFromString("14s").Value())
	a.Equal(10, CardFromString("13s").Value())
	a.Equal(10, CardFromString("12s").Value())
	a.Equal(10, CardFromString("11s").Value())
	a.Equal(10, CardFromString("10s").Value())
	for rank := 2; rank <= 9; rank++ {
		card := Card{Rank: rank, Suit: Clubs}
		a.Equal(rank, card.Value())
	}

	a.True(CardFromString("14d").IsAce())
	a.False(CardFromString("13d").IsAce())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("14s").Equal(&Card{Rank: Ace, Suit: Spades}))
	a.False(CardFromString("14s").Equal(CardFromString("14h")))
	a.False(CardFromString("14s").Equal(CardFromString("13s")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Nil(CardFromString(""))
	a.Equal(&Card{Rank: 10, Suit: Hearts}, CardFromString("10H"))

	a.PanicsWithValue("could not parse card: 1s", func() {
		CardFromString("1s")
	})

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)
	cards := CardsFromString("14s, 10h,2c,13d")
	a.Equal(4, len(cards))
	a.Equal("14s,10h,2c,13d", CardsToString(cards))
	a.Equal("", CardToString(nil))
	a.Equal([]*Card{}, CardsFromString(""))
}

func TestSuit_Name(t *testing.T) {
	a := assert.New(t)
	a.Equal("Spades", Spades.Name())
	a.Equal("Hearts", Hearts.Name())
	a.Equal("Diamonds", Diamonds.Name())
	a.Equal("Clubs", Clubs.Name())

	a.PanicsWithValue("unknown suit: stars", func() {
		_ = Suit("stars").Name()
	})
}
