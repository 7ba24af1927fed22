package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/game"
)

// inputError is a problem with what the player typed; they are asked again
type inputError string

func (e inputError) Error() string { return string(e) }

func badInput(format string, args ...any) error {
	return inputError(fmt.Sprintf(format, args...))
}

// HumanAgent asks a person at the console for each decision
type HumanAgent struct {
	name    string
	console *Console
}

var _ game.Agent = (*HumanAgent)(nil)

// Agent returns a game.Agent for the named human
func (c *Console) Agent(name string) *HumanAgent {
	return &HumanAgent{name: name, console: c}
}

// MakeDecision shows the table to the player and prompts until the input is
// a legal action. It never guesses: closed input returns ErrInputClosed.
func (a *HumanAgent) MakeDecision(ctx context.Context, state game.TableState, valid []game.ValidAction) (game.Decision, error) {
	c := a.console
	a.showState(state)

	for {
		if err := ctx.Err(); err != nil {
			return game.Decision{}, err
		}

		line, err := c.ReadLine(actionPrompt(state.CallAmount))
		if err != nil {
			return game.Decision{}, err
		}

		d, err := a.parse(line, state, valid)
		var bad inputError
		if errors.As(err, &bad) {
			c.Error(bad.Error())
			continue
		}
		if err != nil {
			return game.Decision{}, err
		}
		if err := game.Validate(d, state.CallAmount, state.Player.Chips); err != nil {
			c.Error(err.Error())
			continue
		}
		return d, nil
	}
}

func actionPrompt(callAmount int) string {
	if callAmount == 0 {
		return "Action: (ch)eck, (r)aise, (f)old, (a)ll-in: "
	}
	return "Action: (f)old, (c)all, (r)aise, (a)ll-in: "
}

func (a *HumanAgent) showState(state game.TableState) {
	c := a.console
	s := c.styles
	c.Println()
	c.Println(s.Header.Render(fmt.Sprintf("%s to act (%s)", a.name, state.Street)))
	c.Printf("%s %s\n", s.HandInfo.Render("Your hand:"), s.cards(state.Player.HoleCards))
	if len(state.CommunityCards) > 0 {
		c.Printf("%s %s\n", s.HandInfo.Render("Board:"), s.cards(state.CommunityCards))
	}
	c.Println(s.Info.Render(fmt.Sprintf("Chips: %s  Pot: %s  To call: %s",
		humanize.Comma(int64(state.Player.Chips)),
		humanize.Comma(int64(state.Pot)),
		humanize.Comma(int64(state.CallAmount)))))
	if hand, ok := currentHand(state); ok {
		c.Println(s.Info.Render("You have " + hand))
	}
}

// currentHand describes the player's best hand once the flop is out
func currentHand(state game.TableState) (string, bool) {
	if len(state.CommunityCards) < 3 {
		return "", false
	}
	cards := append(append([]deck.Card{}, state.Player.HoleCards...), state.CommunityCards...)
	hand, err := evaluator.Best(cards)
	if err != nil {
		return "", false
	}
	return hand.Description(), true
}

// parse turns a line of input into a decision. Accepted words are
// ch/check/k, c/call, f/fold, a/all/allin/all-in and r/raise with an
// optional amount; a raise without one asks for it.
func (a *HumanAgent) parse(line string, state game.TableState, valid []game.ValidAction) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Decision{}, badInput("please enter an action")
	}

	switch fields[0] {
	case "ch", "check", "k":
		return game.Decision{Action: game.Check}, nil
	case "c", "call":
		return game.Decision{Action: game.Call}, nil
	case "f", "fold":
		return game.Decision{Action: game.Fold}, nil
	case "a", "all", "allin", "all-in":
		return game.Decision{Action: game.AllIn}, nil
	case "r", "raise":
		raise, ok := raiseRange(valid)
		if !ok {
			return game.Decision{}, badInput("you cannot raise, you only have %d chips", state.Player.Chips)
		}
		amountText := ""
		if len(fields) > 1 {
			amountText = fields[1]
		} else {
			var err error
			amountText, err = a.console.ReadLine(fmt.Sprintf("Raise amount (max %d): ", raise.MaxAmount))
			if err != nil {
				return game.Decision{}, err
			}
		}
		amount, err := strconv.Atoi(strings.TrimSpace(amountText))
		if err != nil {
			return game.Decision{}, badInput("invalid raise amount %q", amountText)
		}
		if amount < raise.MinAmount || amount > raise.MaxAmount {
			return game.Decision{}, badInput("raise must be between %d and %d", raise.MinAmount, raise.MaxAmount)
		}
		return game.Decision{Action: game.Raise, Amount: amount}, nil
	default:
		return game.Decision{}, badInput("unknown action %q", fields[0])
	}
}

func raiseRange(valid []game.ValidAction) (game.ValidAction, bool) {
	for _, v := range valid {
		if v.Action == game.Raise {
			return v, true
		}
	}
	return game.ValidAction{}, false
}
