package blackjack

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMove_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("stand", MoveStand.String())
	a.Equal("hit", MoveHit.String())
	a.Equal("double", MoveDouble.String())
	a.Equal("surrender", MoveSurrender.String())
	a.Equal("help", MoveHelp.String())

	a.PanicsWithValue("invalid move: -1", func() {
		_ = Move(-1).String()
	})
}

func TestMoveFromString(t *testing.T) {
	test := func(text string, expected Move) {
		t.Helper()
		move, err := MoveFromString(text)
		assert.NoError(t, err, text)
		assert.Equal(t, expected, move, text)
	}

	test("stand", MoveStand)
	test("S", MoveStand)
	test("hit", MoveHit)
	test("H", MoveHit)
	test("Double", MoveDouble)
	test("d", MoveDouble)
	test("SURRENDER", MoveSurrender)
	test("su", MoveSurrender)
	test("help", MoveHelp)
	test("?", MoveHelp)
	test("  hit\n", MoveHit)

	for _, text := range []string{"", "x", "stan", "sur", "double down"} {
		move, err := MoveFromString(text)
		assert.Equal(t, Move(-1), move)
		assert.True(t, errors.Is(err, ErrInvalidMoveText), text)
	}
}

func TestMove_Aliases(t *testing.T) {
	assert.Equal(t, []string{"surrender", "su"}, MoveSurrender.Aliases())
	assert.Equal(t, []string{"help", "?"}, MoveHelp.Aliases())
}

func TestCheckMove(t *testing.T) {
	a := assert.New(t)

	allowed := []Move{MoveStand, MoveHit, MoveHelp}
	a.NoError(CheckMove(MoveHit, allowed))

	err := CheckMove(MoveSurrender, allowed)
	a.EqualError(err, "you can't surrender now")
	a.Equal(DisallowedMoveError{Move: MoveSurrender}, err)
}

func TestMove_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(MoveDouble)
	assert.NoError(t, err)
	assert.Equal(t, `{"id":2,"name":"double"}`, string(b))
}
