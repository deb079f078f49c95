package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/doeshing/unitconv/internal/application/convert"
	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

const (
	msgInvalidNumber = "Invalid number! Please try again."
	msgInvalidUnit   = "Invalid unit! Please try again."
)

// MenuSettings controls pacing and destinations of the interactive menu.
type MenuSettings struct {
	MaxAttempts int
	ClearScreen bool
	Pause       bool
	CSVFile     string
	Location    *time.Location
	Now         func() time.Time
}

// Menu is the interactive text UI. It only talks to the engine through
// the conversion service and its history repository.
type Menu struct {
	service  *convert.Service
	prompt   *Prompter
	screen   *Screen
	out      io.Writer
	settings MenuSettings
}

// NewMenu builds a menu reading answers from in and drawing on out.
func NewMenu(service *convert.Service, in io.Reader, out io.Writer, settings MenuSettings) *Menu {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = domain.DefaultMaxAttempts
	}
	if settings.CSVFile == "" {
		settings.CSVFile = domain.DefaultCSVFile
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &Menu{
		service:  service,
		prompt:   NewPrompter(in, out),
		screen:   NewScreen(out, settings.ClearScreen),
		out:      out,
		settings: settings,
	}
}

// Run loops over the main menu until the user quits or input ends.
func (m *Menu) Run() error {
	categories := m.service.Units.Categories()
	historyChoice := len(categories) + 1
	helpChoice := len(categories) + 2
	quitChoice := len(categories) + 3

	for {
		m.screen.Clear()
		RenderMainMenu(m.out, categories)

		choice, err := m.readChoice(quitChoice)
		if err == nil {
			switch {
			case choice == quitChoice:
				fmt.Fprintln(m.out, "Goodbye!")
				return nil
			case choice == historyChoice:
				err = m.showHistory()
			case choice == helpChoice:
				err = m.showHelp()
			default:
				err = m.convertIn(categories[choice-1])
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readChoice re-prompts until a number in [1, quit] or a leading q/Q is typed.
func (m *Menu) readChoice(quit int) (int, error) {
	for {
		answer, err := m.prompt.Ask("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		if answer == "" {
			m.prompt.Errorf("Please enter a choice.")
			continue
		}
		if answer[0] == 'q' || answer[0] == 'Q' {
			return quit, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > quit {
			m.prompt.Errorf("Invalid choice! Please enter a number between 1 and %d.", quit)
			continue
		}
		return n, nil
	}
}

func (m *Menu) convertIn(category domain.Category) error {
	m.screen.Clear()
	RenderHeader(m.out, string(category))
	RenderUnitTable(m.out, m.service.Units.Units(category))

	attempts := m.settings.MaxAttempts
	value, err := askUntilValid(m.prompt, "Enter value: ", attempts, msgInvalidNumber, numfmt.Parse)
	if err != nil {
		return m.abandon(err)
	}
	from, err := askUntilValid(m.prompt, "Convert from: ", attempts, msgInvalidUnit, m.unitIn(category))
	if err != nil {
		return m.abandon(err)
	}
	to, err := askUntilValid(m.prompt, "Convert to: ", attempts, msgInvalidUnit, m.unitIn(category))
	if err != nil {
		return m.abandon(err)
	}

	res, err := m.service.Convert(domain.ConversionRequest{
		Value: value,
		From:  from,
		To:    to,
		Scope: category,
	})
	if err != nil {
		m.prompt.Errorf("%v", err)
		return m.pause()
	}

	fmt.Fprint(m.out, "\nResult: ")
	RenderConversion(m.out, res.Entry, numfmt.Display)
	RenderWarnings(m.out, res.Warnings)
	return m.pause()
}

// unitIn accepts tokens that resolve inside category and returns them raw.
func (m *Menu) unitIn(category domain.Category) func(string) (string, error) {
	return func(raw string) (string, error) {
		if _, _, err := m.service.Resolve(raw, category); err != nil {
			return "", err
		}
		return raw, nil
	}
}

// abandon returns to the menu after an exhausted retry budget; other
// errors such as io.EOF propagate.
func (m *Menu) abandon(err error) error {
	if errors.Is(err, domain.ErrRetryBudgetExhausted) {
		return m.pause()
	}
	return err
}

func (m *Menu) showHistory() error {
	m.screen.Clear()
	RenderHeader(m.out, "Conversion History")

	history := m.service.History
	entries := history.Entries()
	if len(entries) == 0 {
		m.prompt.Errorf(msgNoHistory)
		return m.pause()
	}

	RenderHistory(m.out, entries, m.settings.Location, m.settings.Now())
	fmt.Fprint(m.out, "\nOptions:\n1. Clear history\n2. Export to CSV\n3. Return to menu\n\n")

	answer, err := m.prompt.Ask("Enter your choice: ")
	if err != nil {
		return err
	}
	switch answer {
	case "1":
		if err := history.Clear(); err != nil {
			m.prompt.Errorf("could not save history: %v", err)
			fmt.Fprintln(m.out, "History cleared in memory only; the history file was not changed.")
		} else {
			fmt.Fprintln(m.out, "History cleared!")
		}
	case "2":
		if err := history.ExportCSV(m.settings.CSVFile); err != nil {
			m.prompt.Errorf("Could not create CSV file! %v", err)
		} else {
			fmt.Fprintf(m.out, "History exported to %s\n", m.settings.CSVFile)
		}
	case "3":
		return nil
	default:
		m.prompt.Errorf("Invalid choice!")
	}
	return m.pause()
}

func (m *Menu) showHelp() error {
	m.screen.Clear()
	RenderHelp(m.out)
	return m.pause()
}

func (m *Menu) pause() error {
	if !m.settings.Pause {
		return nil
	}
	return m.prompt.Pause()
}
