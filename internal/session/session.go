// Package session runs a table of humans and bots over many hands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/statistics"
)

// ErrNotEnoughPlayers is returned when fewer than two players have chips
var ErrNotEnoughPlayers = errors.New("not enough players with chips")

// BotNames are handed out in order to generated bots
var BotNames = []string{
	"Bot_Alpha", "Bot_Beta", "Bot_Gamma", "Bot_Delta",
	"Bot_Echo", "Bot_Foxtrot", "Bot_Golf", "Bot_Hotel",
}

// Human is a seat driven by a person
type Human struct {
	Name  string
	Agent game.Agent
}

// Standing is a player's chip count between hands
type Standing struct {
	Seat  int
	Name  string
	Chips int
	Human bool
}

// Session owns the seated players, the deck and the accumulated statistics.
// It is single threaded: hands are played one after another.
type Session struct {
	players []*game.Player
	humans  map[int]bool
	seed    int64
	deck    *deck.Deck
	stats   *statistics.Statistics

	logger  *log.Logger
	clock   quartz.Clock
	bus     *game.SimpleEventBus
	started time.Time
	hands   int
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger passed down to hands and bots
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock sets the clock used for hand timing
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithSubscriber subscribes to the events of every hand
func WithSubscriber(subscriber game.EventSubscriber) Option {
	return func(s *Session) { s.bus.Subscribe(subscriber) }
}

// New seats humans first, then the configured bots, then generated bots
// until the table holds cfg.Game.TotalPlayers. Every random source is derived
// from the configured seed, so a fixed seed replays the same session.
func New(cfg *config.Config, humans []Human, opts ...Option) (*Session, error) {
	if err := cfg.Validate(len(humans)); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Session{
		humans: make(map[int]bool),
		seed:   randutil.Seed(cfg.Game.Seed),
		stats:  &statistics.Statistics{},
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
		bus:    game.NewEventBus(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.deck = deck.New(randutil.Derive(s.seed, 0))
	s.started = s.clock.Now()

	if s.logger.GetLevel() <= log.DebugLevel {
		s.bus.Subscribe(game.NewHandHistory(func(handID, transcript string) {
			s.logger.Debug("Hand transcript", "hand", handID, "transcript", transcript)
		}))
	}

	taken := make(map[string]bool)
	seat := func(name string, chips int, agent game.Agent) {
		s.players = append(s.players, game.NewPlayer(len(s.players), name, chips, agent))
		taken[name] = true
	}

	for _, h := range humans {
		if h.Name == "" || taken[h.Name] {
			return nil, fmt.Errorf("human player name %q is empty or already taken", h.Name)
		}
		s.humans[len(s.players)] = true
		seat(h.Name, cfg.Game.StartingChips, h.Agent)
	}

	for _, b := range cfg.Bots {
		if taken[b.Name] {
			return nil, fmt.Errorf("bot name %q is already taken", b.Name)
		}
		agent, err := bot.NewAgent(bot.Style(b.Style), b.Name, s.botRNG(), s.logger)
		if err != nil {
			return nil, err
		}
		seat(b.Name, b.Chips, agent)
	}

	for i := 0; len(s.players) < cfg.Game.TotalPlayers; i++ {
		name := generatedName(i)
		if taken[name] {
			continue
		}
		seat(name, cfg.Game.StartingChips, bot.New(name, s.botRNG(), s.logger))
	}

	s.logger.Info("Session seated", "players", len(s.players), "humans", len(humans), "seed", s.seed)
	return s, nil
}

// botRNG derives the next bot's random stream from the session seed
func (s *Session) botRNG() *rand.Rand {
	return randutil.Derive(s.seed, uint64(len(s.players)+1))
}

// generatedName names the i-th generated bot; the second lap round the list
// is suffixed _1, the third _2
func generatedName(i int) string {
	name := BotNames[i%len(BotNames)]
	if i >= len(BotNames) {
		name = fmt.Sprintf("%s_%d", name, i/len(BotNames))
	}
	return name
}

// Seed returns the seed every random source was derived from
func (s *Session) Seed() int64 { return s.seed }

// Players returns the seated players in seat order
func (s *Session) Players() []*game.Player { return s.players }

// Stats returns the statistics accumulated so far
func (s *Session) Stats() *statistics.Statistics { return s.stats }

// HandsPlayed returns the number of completed hands
func (s *Session) HandsPlayed() int { return s.hands }

// Elapsed returns the time since the session was created
func (s *Session) Elapsed() time.Duration { return s.clock.Since(s.started) }

// active returns the players who still have chips; busted players sit out
func (s *Session) active() []*game.Player {
	var out []*game.Player
	for _, p := range s.players {
		if p.Chips > 0 {
			out = append(out, p)
		}
	}
	return out
}

// CanContinue reports whether at least two players have chips
func (s *Session) CanContinue() bool {
	return len(s.active()) >= 2
}

// PlayHand deals a fresh hand among players with chips and records it
func (s *Session) PlayHand(ctx context.Context) (*game.Result, error) {
	active := s.active()
	if len(active) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	h := game.NewHand(s.deck, active,
		game.WithLogger(s.logger),
		game.WithClock(s.clock),
		game.WithEventBus(s.bus),
	)
	result, err := h.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("hand %d: %w", s.hands+1, err)
	}

	s.hands++
	s.stats.Add(statistics.FromGame(result, active))
	for _, p := range active {
		if p.Chips == 0 {
			s.logger.Info("Player busted", "player", p.Name, "hand", s.hands)
		}
	}
	return result, nil
}

// Run plays hands until fewer than two players have chips or next returns
// false. next is called after every hand with its result.
func (s *Session) Run(ctx context.Context, next func(*game.Result) bool) error {
	for s.CanContinue() {
		result, err := s.PlayHand(ctx)
		if err != nil {
			return err
		}
		if !next(result) {
			break
		}
	}
	s.logger.Info("Session finished", "hands", s.hands, "elapsed", s.Elapsed())
	return nil
}

// Standings returns every seated player by chip count, most chips first
func (s *Session) Standings() []Standing {
	out := make([]Standing, len(s.players))
	for i, p := range s.players {
		out[i] = Standing{Seat: p.Seat, Name: p.Name, Chips: p.Chips, Human: s.humans[p.Seat]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Chips > out[j].Chips })
	return out
}
