package evaluator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/lox/holdem/internal/deck"
)

type showdownContext struct {
	board []deck.Card
	holes map[string][]deck.Card
	hands map[string]Hand
}

func (s *showdownContext) reset() {
	s.board = nil
	s.holes = make(map[string][]deck.Card)
	s.hands = make(map[string]Hand)
}

func (s *showdownContext) theBoardIs(cards string) error {
	board, err := deck.ParseCards(cards)
	if err != nil {
		return err
	}
	s.board = board
	return nil
}

func (s *showdownContext) playerHolds(name, cards string) error {
	hole, err := deck.ParseCards(cards)
	if err != nil {
		return err
	}
	s.holes[name] = hole
	return nil
}

func (s *showdownContext) theHandsAreEvaluated() error {
	for name, hole := range s.holes {
		h, err := BestOf(hole, s.board)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.hands[name] = h
	}
	return nil
}

func (s *showdownContext) playerHasWithTiebreak(name, category, tiebreak string) error {
	h, ok := s.hands[name]
	if !ok {
		return fmt.Errorf("no hand evaluated for %s", name)
	}
	if h.Category.String() != category {
		return fmt.Errorf("%s has %s, expected %s", name, h.Category, category)
	}
	var want []int
	for _, f := range strings.Fields(tiebreak) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return err
		}
		want = append(want, n)
	}
	if fmt.Sprint(want) != fmt.Sprint(h.Tiebreak) {
		return fmt.Errorf("%s tiebreak %v, expected %v", name, h.Tiebreak, want)
	}
	return nil
}

func (s *showdownContext) handsAreEqual(a, b string) error {
	if c := Compare(s.hands[a], s.hands[b]); c != 0 {
		return fmt.Errorf("expected equal hands, compare returned %d", c)
	}
	return nil
}

func (s *showdownContext) playerBeats(a, b string) error {
	if !s.hands[a].Beats(s.hands[b]) {
		return fmt.Errorf("%s (%s) does not beat %s (%s)", a, s.hands[a], b, s.hands[b])
	}
	if Compare(s.hands[b], s.hands[a]) != -1 {
		return fmt.Errorf("comparison is not antisymmetric")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	sc := &showdownContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	ctx.Step(`^the board is "([^"]*)"$`, sc.theBoardIs)
	ctx.Step(`^"([^"]*)" holds "([^"]*)"$`, sc.playerHolds)
	ctx.Step(`^the hands are evaluated$`, sc.theHandsAreEvaluated)
	ctx.Step(`^"([^"]*)" has a "([^"]*)" with tiebreak "([^"]*)"$`, sc.playerHasWithTiebreak)
	ctx.Step(`^the hands of "([^"]*)" and "([^"]*)" are equal$`, sc.handsAreEqual)
	ctx.Step(`^"([^"]*)" beats "([^"]*)"$`, sc.playerBeats)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
