package blackjack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is a decision the player can make on their turn
type Move int

// Move constants
const (
	MoveStand Move = iota
	MoveHit
	MoveDouble
	MoveSurrender
	MoveHelp
)

// moveAliases maps the lower-case text a player can type to a move
var moveAliases = map[string]Move{
	"stand":     MoveStand,
	"s":         MoveStand,
	"hit":       MoveHit,
	"h":         MoveHit,
	"double":    MoveDouble,
	"d":         MoveDouble,
	"surrender": MoveSurrender,
	"su":        MoveSurrender,
	"help":      MoveHelp,
	"?":         MoveHelp,
}

func (m Move) String() string {
	switch m {
	case MoveStand:
		return "stand"
	case MoveHit:
		return "hit"
	case MoveDouble:
		return "double"
	case MoveSurrender:
		return "surrender"
	case MoveHelp:
		return "help"
	}

	panic(fmt.Sprintf("invalid move: %d", m))
}

// MarshalJSON encodes the JSON
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(m),
		Name: m.String(),
	})
}

// Aliases returns every text alias of the move, long form first
func (m Move) Aliases() []string {
	aliases := []string{m.String()}
	for text, move := range moveAliases {
		if move == m && text != m.String() {
			aliases = append(aliases, text)
		}
	}

	return aliases
}

// MoveFromString returns the move for the text
// Matching ignores case and surrounding whitespace.
func MoveFromString(text string) (Move, error) {
	move, ok := moveAliases[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return -1, ErrInvalidMoveText
	}

	return move, nil
}

// CheckMove returns a DisallowedMoveError if move isn't in allowed
func CheckMove(move Move, allowed []Move) error {
	for _, m := range allowed {
		if m == move {
			return nil
		}
	}

	return DisallowedMoveError{Move: move}
}
