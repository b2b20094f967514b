// Package console renders game narration to a terminal and reads the
// player's answers to prompts.
package console

import (
	"fmt"
	"io"
)

// Style classifies a narration line for rendering.
type Style int

const (
	// Plain is ordinary narration.
	Plain Style = iota
	// Heading marks entering a room or a section of the summary.
	Heading
	// Good marks a success or a gain.
	Good
	// Bad marks a failure or a loss.
	Bad
	// Status marks the player status line.
	Status
)

func (s Style) color() string {
	switch s {
	case Heading:
		return BrightYellow
	case Good:
		return Green
	case Bad:
		return Red
	case Status:
		return BrightCyan
	default:
		return ""
	}
}

// Narrator writes narration lines to an output stream.
type Narrator struct {
	w     io.Writer
	color bool
}

// NewNarrator creates a Narrator writing to w, colorizing when color is set.
//
// Precondition: w must be non-nil.
func NewNarrator(w io.Writer, color bool) *Narrator {
	return &Narrator{w: w, color: color}
}

// Say writes one plain line.
func (n *Narrator) Say(format string, args ...any) {
	n.Styled(Plain, format, args...)
}

// Styled writes one line in the given style.
func (n *Narrator) Styled(s Style, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if c := s.color(); n.color && c != "" {
		text = Colorize(c, text)
	}
	// Narration is best effort; a closed stdout must not stop the game.
	_, _ = fmt.Fprintln(n.w, text)
}

// Blank writes an empty line.
func (n *Narrator) Blank() {
	_, _ = fmt.Fprintln(n.w)
}
