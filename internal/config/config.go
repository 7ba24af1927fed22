// Package config loads the HCL configuration file for holdem.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem/internal/bot"
)

const (
	DefaultTotalPlayers  = 6
	DefaultStartingChips = 1000
	DefaultLogLevel      = "info"
	DefaultLogFile       = "holdem.log"

	MinPlayers = 2
	MaxPlayers = 10
)

// Config represents the complete configuration file
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
	Bots []BotConfig   `hcl:"bot,block"`
}

// GameSettings controls the table
type GameSettings struct {
	TotalPlayers  int   `hcl:"total_players,optional"`
	StartingChips int   `hcl:"starting_chips,optional"`
	Seed          int64 `hcl:"seed,optional"` // 0 picks a seed from the clock
}

// LogSettings controls the diagnostic log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// BotConfig seats a named bot. Bots listed here are seated before the
// generated ones.
type BotConfig struct {
	Name  string `hcl:"name,label"`
	Style string `hcl:"style,optional"`
	Chips int    `hcl:"chips,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.TotalPlayers == 0 {
		c.Game.TotalPlayers = DefaultTotalPlayers
	}
	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = DefaultStartingChips
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}

	for i := range c.Bots {
		if c.Bots[i].Style == "" {
			c.Bots[i].Style = string(bot.StyleHeuristic)
		}
		if c.Bots[i].Chips == 0 {
			c.Bots[i].Chips = c.Game.StartingChips
		}
	}
}

// Validate checks the configuration for a table with the given number of
// human players
func (c *Config) Validate(humans int) error {
	if c.Game.TotalPlayers < MinPlayers || c.Game.TotalPlayers > MaxPlayers {
		return fmt.Errorf("total players must be between %d and %d, got %d", MinPlayers, MaxPlayers, c.Game.TotalPlayers)
	}
	if c.Game.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", c.Game.StartingChips)
	}
	if humans < 0 || humans > c.Game.TotalPlayers {
		return fmt.Errorf("%d human players do not fit at a %d player table", humans, c.Game.TotalPlayers)
	}
	if humans+len(c.Bots) > c.Game.TotalPlayers {
		return fmt.Errorf("%d humans and %d configured bots exceed %d seats", humans, len(c.Bots), c.Game.TotalPlayers)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, b := range c.Bots {
		if seen[b.Name] {
			return fmt.Errorf("bot %s: configured more than once", b.Name)
		}
		seen[b.Name] = true
		if !validStyle(b.Style) {
			return fmt.Errorf("bot %s: invalid style %s", b.Name, b.Style)
		}
		if b.Chips <= 0 {
			return fmt.Errorf("bot %s: chips must be positive", b.Name)
		}
	}
	return nil
}

func validStyle(style string) bool {
	for _, s := range bot.Styles {
		if string(s) == style {
			return true
		}
	}
	return false
}

// ParseLevel maps a configured level name to a log level. "warning" is
// accepted as an alias for "warn".
func ParseLevel(level string) (log.Level, error) {
	if strings.EqualFold(level, "warning") {
		level = "warn"
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return l, nil
}
