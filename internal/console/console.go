// Package console implements the line-oriented terminal front end: a human
// game.Agent that prompts for actions and a display that renders hand events.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ErrInputClosed is returned when input ends while waiting for a player
var ErrInputClosed = errors.New("input closed")

// Console reads answers from one reader and writes prompts and events to one
// writer. It is shared by every human at the table.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// Option configures a Console
type Option func(*lipgloss.Renderer)

// WithColorProfile forces a color profile, e.g. termenv.Ascii for --no-color
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(profile)
	}
}

// New creates a console over in and out. Colors are chosen for out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	renderer := lipgloss.NewRenderer(out)
	for _, opt := range opts {
		opt(renderer)
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(renderer),
	}
}

// Printf writes formatted output
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of output
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine shows prompt and returns the next trimmed line of input
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt))
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Confirm asks a yes/no question. Only "y" or "yes" is a yes.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.ReadLine(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Error prints a problem with the player's input
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.styles.Error.Render(msg))
}
