package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the player a question and returns the raw answer.
type Prompter interface {
	// Ask shows prompt and blocks for one line of input. It returns io.EOF
	// when no more input is available.
	Ask(prompt string) (string, error)
}

// LinePrompter reads answers line by line from an input stream.
type LinePrompter struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewLinePrompter creates a LinePrompter that writes prompts to out and reads
// answers from in.
//
// Precondition: in and out must be non-nil.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{out: out, reader: bufio.NewReader(in)}
}

// Ask writes prompt and reads one line, stripped of its line terminator.
//
// Postcondition: a final line without a newline is returned with a nil error;
// an exhausted stream returns io.EOF.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choice is a prompt with one accepted keyword; everything else, including
// missing input, selects the safe default.
type Choice struct {
	Prompt  string
	Accept  string
	Default string
}

// TrapChoice is the trap prompt: "disarm" attempts the trap, anything else bypasses it.
var TrapChoice = Choice{
	Prompt:  "Do you want to disarm or bypass it? ",
	Accept:  "disarm",
	Default: "bypass",
}

// PuzzleChoice is the puzzle prompt: "yes" attempts the puzzle, anything else declines.
var PuzzleChoice = Choice{
	Prompt:  "Do you want to solve the puzzle? (yes/no): ",
	Accept:  "yes",
	Default: "no",
}

// Ask poses c through p and reports whether the player accepted, along with
// the normalized answer. Read errors select the default.
//
// Postcondition: answer is either c.Accept or c.Default.
func (c Choice) Ask(p Prompter) (accepted bool, answer string, err error) {
	raw, err := p.Ask(c.Prompt)
	if err != nil {
		return false, c.Default, err
	}
	if strings.EqualFold(strings.TrimSpace(raw), c.Accept) {
		return true, c.Accept, nil
	}
	return false, c.Default, nil
}
