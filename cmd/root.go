package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/redneckbeard/rangex/compiler"
	"github.com/redneckbeard/rangex/logs"
	"github.com/redneckbeard/rangex/parser"
	"github.com/redneckbeard/rangex/types"
	"github.com/spf13/cobra"
)

var (
	Kind              string
	LogLevel, LogFile string
	NoColor           bool
)

var (
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "rangex",
	Short: "Walk stepped numeric ranges and compile them to Go",
	Long: `rangex evaluates Ruby-style range literals over Go's numeric types.
'1..5' includes its upper bound and '1...5' excludes it; a step follows as
'step N', 'by N' or '.step(N)', and 'as KIND' picks the element type:

	rangex each '(5..0).step(-1) as uint8'
	rangex sum 1..100 as uint8

Put '--' before a literal that starts with a minus sign.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if NoColor {
			color.NoColor = true
		}
		l, closer, err := logs.New(logs.Options{
			Level:  LogLevel,
			File:   LogFile,
			Stderr: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		logger, closeLog = l, closer
		return nil
	},
}

// execute runs the command tree and closes the log file whether or not the
// command succeeded.
func execute(ctx context.Context) (err error) {
	defer func() {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
		closeLog = func() error { return nil }
	}()
	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the command tree, printing any error in red and exiting
// non-zero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := execute(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&Kind, "type", "t", "", "Element type for literals without an 'as' annotation (default inferred: float64 if any literal is a float, else int)")
	rootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "warn", "One of debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&LogFile, "log-file", "", "Also write JSON log records to this file")
	rootCmd.PersistentFlags().BoolVar(&NoColor, "no-color", false, "Disable colored output")
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logs.WithCommand(ctx, cmd.Name())
}

func fallbackKind() (types.Kind, error) {
	if Kind == "" {
		return types.Invalid, nil
	}
	return types.Lookup(Kind)
}

// instantiate parses args, joined with spaces so literals need no quoting,
// and builds the range they describe.
func instantiate(cmd *cobra.Command, args []string) (compiler.Instance, error) {
	node, err := parser.ParseString(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	return build(cmd, node)
}

func build(cmd *cobra.Command, node *parser.RangeNode) (compiler.Instance, error) {
	fallback, err := fallbackKind()
	if err != nil {
		return nil, err
	}
	inst, err := compiler.Instantiate(node, fallback)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(commandContext(cmd), "range built",
		"range", inst.String(),
		"step_kind", inst.StepKind().String(),
		"end", inst.End(),
		"len", inst.Len(),
	)
	return inst, nil
}
