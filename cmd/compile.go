package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/quick"
	"github.com/redneckbeard/rangex/compiler"
	"github.com/spf13/cobra"
)

var (
	Target    string
	Highlight bool
)

var compileCmd = &cobra.Command{
	Use:   "compile RANGE",
	Short: "Convert a range to a Go program",
	Long: `Emits a Go main package that prints the values of the range with a plain
loop. The normalized end is computed ahead of time and written into the
program as a literal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instantiate(cmd, args)
		if err != nil {
			return err
		}
		compiled, err := compiler.Compile(inst, Indexed)
		if err != nil {
			return err
		}
		logger.DebugContext(commandContext(cmd), "compiled", "bytes", len(compiled), "target", Target)
		if Target != "" {
			return os.WriteFile(Target, []byte(compiled), 0644)
		}
		if Highlight {
			return quick.Highlight(cmd.OutOrStdout(), compiled, "go", "terminal256", "monokai")
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), compiled)
		return err
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&Target, "target", "o", "", "Destination for resulting Go (defaults to stdout)")
	compileCmd.Flags().BoolVar(&Highlight, "highlight", false, "Syntax-highlight the Go written to the terminal")
	compileCmd.Flags().BoolVarP(&Indexed, "index", "i", false, "Print each value's position alongside it")
}
