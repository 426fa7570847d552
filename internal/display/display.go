package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console renders the terminal's status line to a writer, one line per
// update.
type Console struct {
	out io.Writer
	mu  sync.Mutex
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowStatus(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, text) //nolint:errcheck
}

// Stats renders the cumulative withdrawal figures panel.
type Stats struct {
	out io.Writer
	mu  sync.Mutex
}

func NewStats(out io.Writer) *Stats {
	return &Stats{out: out}
}

func (s *Stats) ShowStats(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, "--- dispensed so far ---") //nolint:errcheck
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))  //nolint:errcheck
}
