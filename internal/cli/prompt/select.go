// Package prompt provides interactive selection for commands that need
// an entity name and were not given one.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"agentdeck/internal/errors"
	"agentdeck/internal/logging"
)

// Sentinel errors for selection.
var (
	ErrNothingToSelect    = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector prompts the user to pick one name from a list.
type Selector struct {
	reader io.Reader
	writer io.Writer
	fuzzy  bool
}

// NewSelector creates a Selector on stdin/stdout, using the fuzzy
// finder when stdout is a terminal.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
		fuzzy:  logging.IsTTY(os.Stdout),
	}
}

// NewSelectorWithIO creates a Selector with explicit streams for tests.
// The fuzzy finder is disabled; selection is the numbered prompt.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{reader: r, writer: w}
}

// Select prompts for one of names. A single candidate is auto-selected
// without prompting; on a terminal the fuzzy finder is used, otherwise
// a numbered prompt defaulting to the first entry.
func (s *Selector) Select(kind string, names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.WithDetailf(ErrNothingToSelect, "no %s available", kind)
	}
	if len(names) == 1 {
		return names[0], nil
	}

	if s.fuzzy {
		idx, err := fuzzyfinder.Find(names,
			func(i int) string { return names[i] },
			fuzzyfinder.WithPromptString(kind+"> "))
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return "", ErrSelectionCancelled
			}
			return "", errors.Wrap(err, "running finder")
		}
		return names[idx], nil
	}

	return s.numbered(kind, names)
}

func (s *Selector) numbered(kind string, names []string) (string, error) {
	fmt.Fprintf(s.writer, "Select a %s:\n", kind)
	for i, name := range names {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, name)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return names[0], nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if n < 1 || n > len(names) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(names))
	}
	return names[n-1], nil
}
