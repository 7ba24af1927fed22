package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/deck"
)

// Hand is the betting state machine for a single hand of Texas Hold'em.
//
// It moves Preflop -> Flop -> Turn -> River -> Showdown, dealing the street's
// community cards (after a burn) and running exactly one betting round per
// street. As soon as a single player is left unfolded the hand skips to the
// showdown and that player takes the pot without a hand being evaluated.
//
// A Hand is single threaded: players act one at a time in seat order and
// nothing else touches the deck, pot or players while Play runs.
type Hand struct {
	ID             string
	Players        []*Player
	Street         Street
	CommunityCards []deck.Card
	Pot            Pot

	deck   *deck.Deck
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
	played bool
}

// NewHand creates a hand for players in seat order. The deck is reset when
// the hand is played. Panics on programming errors (nil deck, fewer than two
// players, a player without an agent).
func NewHand(d *deck.Deck, players []*Player, opts ...HandOption) *Hand {
	if d == nil {
		panic("deck is required for hand creation")
	}
	if len(players) < 2 {
		panic("at least 2 players required")
	}
	for _, p := range players {
		if p.Agent == nil {
			panic(fmt.Sprintf("player %q has no agent", p.Name))
		}
	}

	cfg := newHandConfig(opts)
	return &Hand{
		ID:      cfg.handID,
		Players: players,
		Street:  Preflop,
		deck:    d,
		logger:  cfg.logger.With("hand", shortID(cfg.handID)),
		clock:   cfg.clock,
		bus:     cfg.bus,
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Play runs the hand to completion and awards the pot. An error means the
// hand was abandoned: an agent failed or broke its contract, the context was
// cancelled between actions, or (never expected) an engine invariant broke.
// An abandoned hand gives every player back the chips they started it with.
func (h *Hand) Play(ctx context.Context) (_ *Result, err error) {
	if h.played {
		return nil, ErrHandComplete
	}
	h.played = true
	start := h.clock.Now()
	defer func() {
		if err != nil {
			h.abandon(err)
		}
	}()

	h.deck.Reset()
	h.CommunityCards = nil
	h.Pot = Pot{}
	seats := make([]SeatInfo, len(h.Players))
	for i, p := range h.Players {
		p.resetForHand()
		seats[i] = SeatInfo{Seat: p.Seat, Name: p.Name, Chips: p.Chips}
	}
	h.logger.Info("Starting hand", "players", len(h.Players))
	h.publish(HandStartEvent{HandID: h.ID, Seats: seats, timestamp: h.clock.Now()})

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	reached := Preflop
	for _, street := range BettingStreets {
		if h.playersInHand() <= 1 {
			break
		}
		if err := h.openStreet(street); err != nil {
			return nil, err
		}
		reached = street
		if err := h.bettingRound(ctx); err != nil {
			return nil, err
		}
	}

	h.Street = Showdown
	result, err := h.showdown()
	if err != nil {
		return nil, err
	}
	result.StreetReached = reached
	result.Duration = h.clock.Since(start)

	h.logger.Info("Hand complete", "winner", result.WinnerName, "pot", result.Pot,
		"by_default", result.ByDefault, "street", reached)
	h.publish(HandEndEvent{Result: result, timestamp: h.clock.Now()})
	return result, nil
}

func (h *Hand) abandon(err error) {
	for _, p := range h.Players {
		p.Chips = p.StartingChips
		p.StreetBet = 0
		p.TotalBet = 0
	}
	h.Pot = Pot{}
	h.logger.Warn("Hand abandoned, stacks restored", "error", err)
}

// dealHoleCards deals two passes round the table, one card per player each
func (h *Hand) dealHoleCards() error {
	for range 2 {
		for _, p := range h.Players {
			c, err := h.deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing hole cards: %w", err)
			}
			p.HoleCards = append(p.HoleCards, c)
		}
	}
	for _, p := range h.Players {
		h.logger.Debug("Dealt hole cards", "player", p.Name, "cards", deck.FormatCards(p.HoleCards))
		h.publish(HoleCardsEvent{Seat: p.Seat, Name: p.Name, Cards: slices.Clone(p.HoleCards), timestamp: h.clock.Now()})
	}
	return nil
}

// openStreet deals the street's board cards and resets per-street betting
func (h *Hand) openStreet(street Street) error {
	h.Street = street
	if n := street.communityCards(); n > 0 {
		if err := h.deck.Burn(); err != nil {
			return fmt.Errorf("burning before %s: %w", street, err)
		}
		cards, err := h.deck.DrawN(n)
		if err != nil {
			return fmt.Errorf("dealing %s: %w", street, err)
		}
		h.CommunityCards = append(h.CommunityCards, cards...)
	}

	h.Pot.resetStreet()
	for _, p := range h.Players {
		p.StreetBet = 0
	}

	h.logger.Debug("Street opened", "street", street, "board", deck.FormatCards(h.CommunityCards), "pot", h.Pot.Total)
	h.publish(StreetChangeEvent{
		Street:         street,
		CommunityCards: slices.Clone(h.CommunityCards),
		Pot:            h.Pot.Total,
		timestamp:      h.clock.Now(),
	})
	return nil
}

// bettingRound polls every player who can act exactly once, in seat order.
// It is skipped when fewer than two players can act and stops early once
// only one player remains unfolded.
func (h *Hand) bettingRound(ctx context.Context) error {
	var actors []*Player
	for _, p := range h.Players {
		if p.CanAct() {
			actors = append(actors, p)
		}
	}
	if len(actors) < 2 {
		h.logger.Debug("Skipping betting round", "street", h.Street, "actors", len(actors))
		return nil
	}

	for _, p := range actors {
		if h.playersInHand() <= 1 {
			break
		}
		if !p.CanAct() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.act(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// act solicits a decision from p's agent, validates it and applies it
func (h *Hand) act(ctx context.Context, p *Player) error {
	callAmount := h.Pot.ToCall(p.StreetBet)
	valid := LegalActions(callAmount, p.Chips)

	decision, err := p.Agent.MakeDecision(ctx, h.tableState(p, callAmount), valid)
	if err != nil {
		return fmt.Errorf("player %s: %w", p.Name, err)
	}
	if err := Validate(decision, callAmount, p.Chips); err != nil {
		h.logger.Warn("Rejected action", "player", p.Name, "action", decision, "to_call", callAmount, "chips", p.Chips)
		return fmt.Errorf("player %s: %w", p.Name, err)
	}

	committed := h.apply(p, decision, callAmount)
	h.logger.Debug("Player acted", "player", p.Name, "action", decision, "committed", committed,
		"chips", p.Chips, "pot", h.Pot.Total, "reason", decision.Reasoning)
	h.publish(PlayerActionEvent{
		Seat:       p.Seat,
		Name:       p.Name,
		Street:     h.Street,
		Decision:   decision,
		CallAmount: callAmount,
		Committed:  committed,
		ChipsAfter: p.Chips,
		PotAfter:   h.Pot.Total,
		timestamp:  h.clock.Now(),
	})

	return h.checkInvariants()
}

// apply moves chips for a validated decision and returns the amount committed
func (h *Hand) apply(p *Player, d Decision, callAmount int) int {
	committed := 0
	switch d.Action {
	case Fold:
		p.Folded = true
	case Check:
		// nothing owed
	case Call:
		committed = p.Bet(callAmount)
	case Raise:
		committed = p.Bet(callAmount + d.Amount)
		h.Pot.Raise(p.StreetBet)
	case AllIn:
		committed = p.Bet(p.Chips)
		h.Pot.Raise(p.StreetBet)
	}
	h.Pot.Add(committed)
	return committed
}

// checkInvariants verifies chip conservation after every action
func (h *Hand) checkInvariants() error {
	sum := 0
	for _, p := range h.Players {
		if p.Chips < 0 {
			return fmt.Errorf("%w: %s has %d chips", ErrChipAccounting, p.Name, p.Chips)
		}
		if p.Chips+p.TotalBet != p.StartingChips {
			return fmt.Errorf("%w: %s has %d chips and committed %d, started with %d",
				ErrChipAccounting, p.Name, p.Chips, p.TotalBet, p.StartingChips)
		}
		sum += p.TotalBet
	}
	if sum != h.Pot.Total {
		return fmt.Errorf("%w: pot is %d but players committed %d", ErrChipAccounting, h.Pot.Total, sum)
	}
	return nil
}

func (h *Hand) tableState(p *Player, callAmount int) TableState {
	return TableState{
		HandID:         h.ID,
		Street:         h.Street,
		CallAmount:     callAmount,
		Pot:            h.Pot.Total,
		CurrentBet:     h.Pot.CurrentBet,
		CommunityCards: slices.Clone(h.CommunityCards),
		ActivePlayers:  h.playersInHand(),
		Player: PlayerState{
			Seat:      p.Seat,
			Name:      p.Name,
			Chips:     p.Chips,
			StreetBet: p.StreetBet,
			TotalBet:  p.TotalBet,
			HoleCards: slices.Clone(p.HoleCards),
		},
	}
}

func (h *Hand) playersInHand() int {
	n := 0
	for _, p := range h.Players {
		if p.InHand() {
			n++
		}
	}
	return n
}

func (h *Hand) publish(e GameEvent) {
	h.bus.Publish(e)
}
