package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem/internal/deck"
)

// HandHistory is an EventSubscriber that records a hand as it is played and
// hands a plain text transcript to onHand when the hand ends. It can be
// reused across hands; each HandStartEvent starts a new transcript. Nothing
// is written to disk.
type HandHistory struct {
	onHand func(handID, transcript string)

	b      strings.Builder
	street Street
}

// NewHandHistory creates a recorder. onHand may be nil when only Text is
// needed.
func NewHandHistory(onHand func(handID, transcript string)) *HandHistory {
	return &HandHistory{onHand: onHand}
}

// OnEvent implements EventSubscriber
func (hh *HandHistory) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case HandStartEvent:
		hh.b.Reset()
		hh.street = Preflop
		fmt.Fprintf(&hh.b, "=== HAND %s ===\n", e.HandID)
		fmt.Fprintf(&hh.b, "Date: %s\n", e.Timestamp().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&hh.b, "Players: %d\n\n", len(e.Seats))
		hh.b.WriteString("STARTING STACKS:\n")
		for _, s := range e.Seats {
			fmt.Fprintf(&hh.b, "Seat %d: %s (%d chips)\n", s.Seat+1, s.Name, s.Chips)
		}
		hh.b.WriteString("\nHOLE CARDS:\n")
	case HoleCardsEvent:
		fmt.Fprintf(&hh.b, "%s: %s\n", e.Name, deck.FormatCards(e.Cards))
	case StreetChangeEvent:
		hh.street = e.Street
		fmt.Fprintf(&hh.b, "\n*** %s ***\n", strings.ToUpper(e.Street.String()))
		if len(e.CommunityCards) > 0 {
			fmt.Fprintf(&hh.b, "Board: [%s]\n", deck.FormatCards(e.CommunityCards))
		}
	case PlayerActionEvent:
		fmt.Fprintf(&hh.b, "%s\n", FormatAction(e))
	case ShowdownEvent:
		if hh.street != Showdown {
			hh.street = Showdown
			hh.b.WriteString("\n*** SHOWDOWN ***\n")
		}
		fmt.Fprintf(&hh.b, "%s shows [%s] (%s)\n", e.Name, deck.FormatCards(e.HoleCards), e.Hand.Description())
	case HandEndEvent:
		hh.writeSummary(e.Result)
		if hh.onHand != nil {
			hh.onHand(e.Result.HandID, hh.b.String())
		}
	}
}

// Text returns the transcript recorded so far
func (hh *HandHistory) Text() string {
	return hh.b.String()
}

func (hh *HandHistory) writeSummary(r *Result) {
	hh.b.WriteString("\n*** SUMMARY ***\n")
	fmt.Fprintf(&hh.b, "Total pot %d\n", r.Pot)
	if len(r.Community) > 0 {
		fmt.Fprintf(&hh.b, "Board [%s]\n", deck.FormatCards(r.Community))
	}
	switch {
	case r.ByDefault:
		fmt.Fprintf(&hh.b, "%s wins %d uncontested\n", r.WinnerName, r.Pot)
	case r.WinningHand != nil:
		fmt.Fprintf(&hh.b, "%s wins %d with %s\n", r.WinnerName, r.Pot, r.WinningHand.Description())
	}
	if r.IsTie() {
		fmt.Fprintf(&hh.b, "Tied seats: %v (earliest seat takes the pot)\n", seatNumbers(r.Tied))
	}
	hh.b.WriteString("=== END HAND ===\n")
}

func seatNumbers(seats []int) []int {
	out := make([]int, len(seats))
	for i, s := range seats {
		out[i] = s + 1
	}
	return out
}

// FormatAction renders an applied action, e.g. "Bob: raises 40 (puts in 60)"
func FormatAction(e PlayerActionEvent) string {
	switch e.Decision.Action {
	case Fold:
		return fmt.Sprintf("%s: folds", e.Name)
	case Check:
		return fmt.Sprintf("%s: checks", e.Name)
	case Call:
		if e.Committed < e.CallAmount {
			return fmt.Sprintf("%s: calls %d and is all-in", e.Name, e.Committed)
		}
		return fmt.Sprintf("%s: calls %d", e.Name, e.Committed)
	case Raise:
		return fmt.Sprintf("%s: raises %d (puts in %d)", e.Name, e.Decision.Amount, e.Committed)
	case AllIn:
		return fmt.Sprintf("%s: goes all-in for %d", e.Name, e.Committed)
	default:
		return fmt.Sprintf("%s: %s", e.Name, e.Decision)
	}
}
