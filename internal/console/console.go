package console

import (
	"blackjack/pkg/deck"
	"blackjack/pkg/playable"
	"blackjack/pkg/playable/blackjack"
	"bufio"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/term"
	"io"
	"os"
	"strconv"
	"strings"
)

var errWholeNumber = errors.New("you must bet a whole number")

const (
	defaultWidth = 60
	maxWidth     = 80
)

// Options control how the console renders
type Options struct {
	Color bool
	Width int
}

// TerminalOptions returns options suited to f
// Color is only used when wantColor is true and f is a terminal.
func TerminalOptions(f *os.File, wantColor bool) Options {
	fd := int(f.Fd())
	opts := Options{Width: defaultWidth}
	if !term.IsTerminal(fd) {
		return opts
	}

	opts.Color = wantColor
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		opts.Width = width
		if opts.Width > maxWidth {
			opts.Width = maxWidth
		}
	}

	return opts
}

// Console plays blackjack over a line-based reader and a writer
// It implements both blackjack.Input and blackjack.Output.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
	width int
}

var (
	_ blackjack.Input  = (*Console)(nil)
	_ blackjack.Output = (*Console)(nil)
)

// New returns a new console
func New(in io.Reader, out io.Writer, opts Options) *Console {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: opts.Color,
		width: width,
	}
}

// ReadBet prompts until the player enters a whole amount in [min, max]
func (c *Console) ReadBet(min, max int) (int, error) {
	for {
		c.prompt("Place your bet ($%d-$%d): ", min, max)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		amount, err := strconv.Atoi(line)
		if err != nil {
			c.problem(errWholeNumber)
			continue
		}

		if err := blackjack.ValidateBet(amount, min, max); err != nil {
			c.problem(err)
			continue
		}

		return amount, nil
	}
}

// ReadMove prompts until the player enters one of the allowed moves
// Help is answered here and never returned.
func (c *Console) ReadMove(allowed []blackjack.Move) (blackjack.Move, error) {
	names := make([]string, 0, len(allowed))
	for _, move := range allowed {
		names = append(names, move.String())
	}

	for {
		c.prompt("What would you like to do? [%s]: ", strings.Join(names, ", "))
		line, err := c.readLine()
		if err != nil {
			return -1, err
		}

		move, err := blackjack.MoveFromString(line)
		if err != nil {
			c.problem(err)
			continue
		}

		if move == blackjack.MoveHelp {
			c.Help()
			continue
		}

		if err := blackjack.CheckMove(move, allowed); err != nil {
			c.problem(err)
			continue
		}

		return move, nil
	}
}

// ReadInsuranceDecision asks a yes/no question; an empty answer is no
func (c *Console) ReadInsuranceDecision() (bool, error) {
	for {
		c.prompt("Would you like to buy insurance? [y/N]: ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}

		c.problem(errors.New("please answer y or n"))
	}
}

// Message prints a line of narration
func (c *Console) Message(msg *playable.LogMessage) {
	text := msg.Message
	switch msg.Subject {
	case playable.SubjectDealer:
		text = c.paint(color.FgYellow, "%s", text)
	case playable.SubjectPlayer:
		text = c.paint(color.FgCyan, "%s", text)
	}

	if len(msg.Cards) > 0 {
		text += " " + c.cards(msg.Cards)
	}

	fmt.Fprintln(c.out, text)
}

// Table prints the dealer's and the player's hands
func (c *Console) Table(state *blackjack.GameState) {
	p := state.Player
	rule := strings.Repeat("─", c.width)

	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "Round %d | Cash $%d | Bet $%d", state.Round, p.Cash, p.Bet)
	if p.Insurance > 0 {
		fmt.Fprintf(c.out, " | Insurance $%d", p.Insurance)
	}
	fmt.Fprintf(c.out, " | Shoe %d\n", state.CardsRemaining)

	dealerLabel := "showing"
	if state.Dealer.HoleVisible {
		dealerLabel = "score"
	}
	c.hand("Dealer", state.Dealer.Cards, fmt.Sprintf("%s %d", dealerLabel, state.Dealer.Score))

	score := strconv.Itoa(p.Score)
	if p.Soft {
		score = "soft " + score
	}
	c.hand(p.Name, p.Cards, "score "+score)
	fmt.Fprintln(c.out, rule)
}

// Help prints the available commands
func (c *Console) Help() {
	fmt.Fprintln(c.out, c.paint(color.Bold, "Commands:"))
	for _, move := range helpOrder {
		fmt.Fprintf(c.out, "  %-22s %s\n", strings.Join(move.Aliases(), ", "), helpText[move])
	}
}

// Summary prints the tally at the end of a session
func (c *Console) Summary(s *blackjack.Summary) {
	fmt.Fprintln(c.out, c.paint(color.Bold, "Thanks for playing!"))
	fmt.Fprintf(c.out, "Rounds played: %d\n", s.RoundsPlayed)
	fmt.Fprintf(c.out, "Wins: %d (blackjacks: %d) | Losses: %d | Pushes: %d | Surrenders: %d\n",
		s.Wins, s.Blackjacks, s.Losses, s.Pushes, s.Surrenders)

	net := s.Net()
	attr := color.FgGreen
	if net < 0 {
		attr = color.FgRed
	}
	fmt.Fprintf(c.out, "Cash: $%d -> $%d (%s)\n", s.StartingCash, s.FinalCash, c.paint(attr, "%+d", net))
}

var helpOrder = []blackjack.Move{
	blackjack.MoveStand,
	blackjack.MoveHit,
	blackjack.MoveDouble,
	blackjack.MoveSurrender,
	blackjack.MoveHelp,
}

var helpText = map[blackjack.Move]string{
	blackjack.MoveStand:     "keep your hand and let the dealer play",
	blackjack.MoveHit:       "take another card (adds the bet again if you can cover it)",
	blackjack.MoveDouble:    "double the bet and take exactly one more card",
	blackjack.MoveSurrender: "give up the hand and get half of the bet back",
	blackjack.MoveHelp:      "show this list",
}

func (c *Console) hand(label string, cards []*deck.Card, score string) {
	fmt.Fprintf(c.out, "%-10s %s (%s)\n", label+":", c.cards(cards), score)
}

func (c *Console) cards(cards []*deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = c.card(card)
	}

	return strings.Join(parts, " ")
}

func (c *Console) card(card *deck.Card) string {
	if card == nil {
		return c.paint(color.Faint, "[HOLE CARD]")
	}

	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		return c.paint(color.FgRed, "%s", card.String())
	}

	return card.String()
}

func (c *Console) paint(attr color.Attribute, format string, a ...interface{}) string {
	p := color.New(attr)
	if c.color {
		p.EnableColor()
	} else {
		p.DisableColor()
	}

	return p.Sprintf(format, a...)
}

func (c *Console) prompt(format string, a ...interface{}) {
	fmt.Fprint(c.out, c.paint(color.Bold, format, a...))
}

func (c *Console) problem(err error) {
	fmt.Fprintln(c.out, c.paint(color.FgRed, "%v", err))
}

// readLine returns the next trimmed line
// A final line without a newline is still returned; io.EOF comes on the next call.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
