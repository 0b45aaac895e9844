package imgfetch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter answers the yes/no questions Fetch asks at its decision points:
// content-type mismatch, overwrite, large file. A non-interactive embedding
// supplies a policy here instead of blocking on a terminal.
type Prompter interface {
	Confirm(question string) bool
}

// StdinPrompter asks on Out and reads one line from In. Any answer other
// than "y" (case-insensitive) is a decline.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{In: os.Stdin, Out: os.Stdout}
}

func (p *StdinPrompter) Confirm(question string) bool {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	fmt.Fprintf(p.Out, "%s (y/N): ", question)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// AcceptAll answers yes to every question, for --yes runs.
type AcceptAll struct{}

func (AcceptAll) Confirm(string) bool { return true }
