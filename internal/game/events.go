package game

import (
	"time"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHoleCards    EventType = "hole_cards"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
	EventTypeShowdown     EventType = "showdown"
	EventTypeHandEnd      EventType = "hand_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a hand
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// SeatInfo is a snapshot of a seat at the start of a hand
type SeatInfo struct {
	Seat  int
	Name  string
	Chips int
}

// HandStartEvent is published when a new hand begins
type HandStartEvent struct {
	HandID    string
	Seats     []SeatInfo
	timestamp time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// HoleCardsEvent is published when a player receives their two hole cards
type HoleCardsEvent struct {
	Seat      int
	Name      string
	Cards     []deck.Card
	timestamp time.Time
}

func (e HoleCardsEvent) EventType() EventType { return EventTypeHoleCards }
func (e HoleCardsEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when a new street opens
type StreetChangeEvent struct {
	Street         Street
	CommunityCards []deck.Card
	Pot            int
	timestamp      time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after an action has been applied
type PlayerActionEvent struct {
	Seat       int
	Name       string
	Street     Street
	Decision   Decision
	CallAmount int // Owed before the action
	Committed  int // Chips moved into the pot by the action
	ChipsAfter int
	PotAfter   int
	timestamp  time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published when a player's hand is revealed
type ShowdownEvent struct {
	Seat      int
	Name      string
	HoleCards []deck.Card
	Hand      evaluator.Hand
	timestamp time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published when the pot has been awarded
type HandEndEvent struct {
	Result    *Result
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(event GameEvent)

// OnEvent calls f
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous and
// in subscription order, which keeps the hand strictly turn ordered.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
