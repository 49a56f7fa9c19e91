package playable

import (
	"blackjack/pkg/deck"
	"fmt"
	"github.com/google/uuid"
	"time"
)

// Subject identifies who a log message is about
type Subject string

// Subject constants
const (
	SubjectTable  Subject = ""
	SubjectPlayer Subject = "player"
	SubjectDealer Subject = "dealer"
)

// LogMessage is the format a game uses to narrate what happened
// If Subject is empty, it's a general statement, otherwise the message is about the player or the dealer
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Subject Subject      `json:"subject,omitempty"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// String returns the message followed by any cards in short form
func (l *LogMessage) String() string {
	if len(l.Cards) == 0 {
		return l.Message
	}

	return fmt.Sprintf("%s %v", l.Message, l.Cards)
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(subject Subject, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Subject: subject,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that carries cards
func CardsLogMessage(subject Subject, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(subject, format, a...)
	lm.Cards = cards
	return lm
}
