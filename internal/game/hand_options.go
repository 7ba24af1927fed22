package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

// handConfig holds optional configuration for creating a hand.
type handConfig struct {
	handID string
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// WithHandID sets the hand identifier. Default is a random UUID.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.handID = id
	}
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used for event timestamps and hand duration.
// Tests pass quartz.NewMock.
func WithClock(clock quartz.Clock) HandOption {
	return func(c *handConfig) {
		c.clock = clock
	}
}

// WithEventBus publishes hand events to bus
func WithEventBus(bus EventBus) HandOption {
	return func(c *handConfig) {
		c.bus = bus
	}
}

// WithSubscriber publishes hand events to a single subscriber
func WithSubscriber(subscriber EventSubscriber) HandOption {
	return func(c *handConfig) {
		bus := NewEventBus()
		bus.Subscribe(subscriber)
		c.bus = bus
	}
}

func newHandConfig(opts []HandOption) *handConfig {
	cfg := &handConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.handID == "" {
		cfg.handID = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	return cfg
}
