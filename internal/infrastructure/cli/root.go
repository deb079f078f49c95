package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/unitconv/internal/app"
	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	// Clock and Location are overridable for tests.
	Clock    func() time.Time
	Location *time.Location
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

// session builds the container on first use, so argument errors never
// touch the config or the history file.
type session struct {
	opts      Options
	container *app.Container
}

func (s *session) load(ctx context.Context) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	c, err := app.BuildContainer(ctx, app.Options{
		ConfigPath: s.opts.ConfigPath,
		Verbose:    s.opts.Verbose,
		LogWriter:  s.opts.Err,
		Clock:      s.opts.Clock,
		Location:   s.opts.Location,
	})
	if err != nil {
		return nil, err
	}
	s.container = c
	return c, nil
}

func (s *session) close() error {
	return s.container.Close()
}

// Execute runs the CLI with args (without the program name) and returns the
// process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	s := &session{opts: opts.withDefaults()}
	root := newRootCmd(s)
	root.SetArgs(PrepareArgs(args))

	cmd, err := root.ExecuteContextC(ctx)
	if cerr := s.close(); cerr != nil {
		fmt.Fprintf(s.opts.Err, "Error: %v\n", cerr)
	}
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(s.opts.Err, "Error: %v\n", err)
	code := GetExitCode(err)
	if code == ExitUsage {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprint(s.opts.Err, cmd.UsageString())
	}
	return code
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "unitconv [value from_unit to_unit]",
		Short: "Interactive terminal unit converter",
		Long: "unitconv converts values between units of the same category.\n\n" +
			"Run without arguments for the interactive menu, or pass\n" +
			"value, source unit and target unit to convert directly:\n\n" +
			"  unitconv 100 C F",
		Args: rootArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				return runDirect(cmd, s, args)
			}
			return runInteractive(cmd, s)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(s.opts.In)
	root.SetOut(s.opts.Out)
	root.SetErr(s.opts.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitUsage, "invalid flags", err)
	})

	root.PersistentFlags().StringVar(&s.opts.ConfigPath, "config", s.opts.ConfigPath, "Config file (default ~/.unitconv/config.yaml)")
	root.PersistentFlags().BoolVarP(&s.opts.Verbose, "verbose", "v", s.opts.Verbose, "Enable debug logging on standard error")

	root.AddCommand(newHistoryCommand(s))
	root.AddCommand(newUnitsCommand(s))
	root.AddCommand(newInfoCommand(s))
	root.AddCommand(newBatchCommand(s))
	return root
}

func rootArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 3:
		return nil
	}
	return NewExitError(ExitUsage, fmt.Sprintf("expected no arguments or <value> <from_unit> <to_unit>, got %d argument(s)", len(args)))
}

// usageArgs marks positional-argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return WrapExitError(ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}

func runDirect(cmd *cobra.Command, s *session, args []string) error {
	value, err := numfmt.Parse(args[0])
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("invalid value %q", args[0]), domain.ErrParseNumber)
	}

	c, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	res, err := c.Service.Convert(domain.ConversionRequest{
		Value: value,
		From:  args[1],
		To:    args[2],
		Scope: domain.CategoryAll,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	RenderConversion(cmd.OutOrStdout(), res.Entry, numfmt.Display)
	RenderWarnings(cmd.ErrOrStderr(), res.Warnings)
	return nil
}

func runInteractive(cmd *cobra.Command, s *session) error {
	c, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	menu := NewMenu(c.Service, cmd.InOrStdin(), cmd.OutOrStdout(), MenuSettings{
		MaxAttempts: c.Config.Prompt.MaxAttempts,
		ClearScreen: c.Config.Display.ClearScreen,
		Pause:       c.Config.Display.Pause,
		CSVFile:     c.Config.History.CSVFile,
		Location:    s.opts.Location,
		Now:         s.opts.Clock,
	})
	return menu.Run()
}
