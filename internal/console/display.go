package console

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/session"
)

// Display prints hand events as they happen. Only the hole cards of the
// named humans are shown before the showdown.
type Display struct {
	console *Console
	humans  map[string]bool
	hands   int
}

var _ game.EventSubscriber = (*Display)(nil)

// Display returns an event subscriber writing to the console
func (c *Console) Display(humans ...string) *Display {
	d := &Display{console: c, humans: make(map[string]bool, len(humans))}
	for _, h := range humans {
		d.humans[h] = true
	}
	return d
}

func chips(n int) string {
	return humanize.Comma(int64(n))
}

// OnEvent implements game.EventSubscriber
func (d *Display) OnEvent(event game.GameEvent) {
	c := d.console
	s := c.styles

	switch e := event.(type) {
	case game.HandStartEvent:
		d.hands++
		c.Println()
		c.Println(s.Header.Render(fmt.Sprintf("Hand #%d", d.hands)))
		for _, seat := range e.Seats {
			c.Println(s.Info.Render(fmt.Sprintf("  %s: %s chips", seat.Name, chips(seat.Chips))))
		}
	case game.HoleCardsEvent:
		if d.humans[e.Name] {
			c.Printf("%s %s\n", s.HandInfo.Render(e.Name+"'s hand:"), s.cards(e.Cards))
		}
	case game.StreetChangeEvent:
		c.Printf("\n%s %s  %s\n",
			s.Street.Render("*** "+strings.ToUpper(e.Street.String())+" ***"),
			s.cards(e.CommunityCards),
			s.Info.Render("pot "+chips(e.Pot)))
	case game.PlayerActionEvent:
		if d.humans[e.Name] {
			c.Println(s.Actions.Render(game.FormatAction(e)))
			return
		}
		c.Println(game.FormatAction(e))
	case game.ShowdownEvent:
		c.Printf("%s shows %s %s\n", e.Name, s.cards(e.HoleCards), s.Info.Render("("+e.Hand.Description()+")"))
	case game.HandEndEvent:
		d.showResult(e.Result)
	}
}

func (d *Display) showResult(r *game.Result) {
	c := d.console
	s := d.console.styles

	var msg string
	switch {
	case r.ByDefault:
		msg = fmt.Sprintf("%s wins %s chips, everyone else folded", r.WinnerName, chips(r.Pot))
	case r.WinningHand != nil:
		msg = fmt.Sprintf("%s wins %s chips with %s", r.WinnerName, chips(r.Pot), r.WinningHand.Description())
	default:
		msg = fmt.Sprintf("%s wins %s chips", r.WinnerName, chips(r.Pot))
	}
	c.Println(s.Success.Render(msg))
	if r.IsTie() {
		c.Println(s.Info.Render(fmt.Sprintf("Tie between %d players, the earliest seat takes the pot", len(r.Tied))))
	}
}

// Standings prints the chip counts, richest first
func (c *Console) Standings(standings []session.Standing) {
	s := c.styles
	c.Println()
	c.Println(s.Header.Render("Standings"))
	for i, st := range standings {
		line := fmt.Sprintf("%2d. %-14s %s", i+1, st.Name, chips(st.Chips))
		if st.Chips == 0 {
			line += " (busted)"
		}
		if st.Human {
			line = s.Actions.Render(line)
		}
		c.Println(line)
	}
}
