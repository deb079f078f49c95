package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/unitconv/internal/domain"
)

const msgTooManyAttempts = "Too many failed attempts. Returning to menu."

// Prompter reads answers line by line from the user.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt and returns the trimmed answer. io.EOF is returned
// only when the input ends before anything was typed.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Errorf prints a single-line error message.
func (p *Prompter) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "Error: "+format+"\n", args...)
}

// Pause waits for Enter.
func (p *Prompter) Pause() error {
	fmt.Fprint(p.out, "\nPress Enter to continue...")
	_, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}
	return err
}

// askUntilValid re-prompts until parse accepts the answer, giving up with
// domain.ErrRetryBudgetExhausted after attempts consecutive failures.
func askUntilValid[T any](p *Prompter, prompt string, attempts int, invalid string, parse func(string) (T, error)) (T, error) {
	var zero T
	for range attempts {
		answer, err := p.Ask(prompt)
		if err != nil {
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		p.Errorf("%s", invalid)
	}
	p.Errorf("%s", msgTooManyAttempts)
	return zero, domain.ErrRetryBudgetExhausted
}
