package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/redneckbeard/rangex/parser"
	"github.com/spf13/cobra"
)

// evaluate runs one REPL line. A line is a range literal, optionally led by
// `sum` or `info`; a bare literal prints its values.
func evaluate(cmd *cobra.Command, w io.Writer, line string) error {
	verb, src := "each", line
	if head, rest, ok := strings.Cut(line, " "); ok && (head == "sum" || head == "info") {
		verb, src = head, rest
	}
	node, err := parser.ParseString(src)
	if err != nil {
		return err
	}
	inst, err := build(cmd, node)
	if err != nil {
		return err
	}
	switch verb {
	case "sum":
		fmt.Fprintln(w, inst.Sum())
	case "info":
		info, err := describe(inst, nil)
		if err != nil {
			return err
		}
		return writeInfo(w, info, "text", nil)
	default:
		for line := range inst.Lines(Indexed) {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate range literals interactively",
	Long: `Reads range literals one line at a time and prints their values. Start a
line with 'sum' or 'info' to run that command instead. Exit with Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".rangex_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "> ",
			HistoryFile: historyFile,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if err := evaluate(cmd, rl.Stdout(), line); err != nil {
				color.New(color.FgRed).Fprintln(rl.Stderr(), err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVarP(&Indexed, "index", "i", false, "Prefix each value with its position")
}
