/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/redneckbeard/rangex/compiler"
	"github.com/redneckbeard/rangex/parser"
	"github.com/spf13/cobra"
)

var (
	CheckFile string
	Watch     bool
)

func runCheck(ctx context.Context, w io.Writer, inst compiler.Instance) bool {
	fmt.Fprintf(w, "Checking '%s': ", inst)
	red, green := color.New(color.FgRed), color.New(color.FgGreen)
	if diff, compiled, err := compiler.CompareLibraryToGo(ctx, inst, Indexed); err != nil {
		red.Fprintln(w, "FAIL\n    ")
		red.Fprintln(w, err.Error())
		return false
	} else if diff != "" {
		red.Fprintf(w, `FAIL
   
%s
Translation:
------------
%s`, diff, compiled)
		return false
	}
	green.Fprintln(w, "PASS")
	return true
}

// checkFile checks every range in CheckFile and prints a summary. It fails
// when any range does.
func checkFile(cmd *cobra.Command) error {
	nodes, err := parser.ParseFile(CheckFile)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()
	var passes, fails int
	for _, node := range nodes {
		inst, err := build(cmd, node)
		if err != nil {
			fmt.Fprintf(w, "Checking '%s': ", node)
			color.New(color.FgRed).Fprintln(w, "FAIL\n    "+err.Error())
			fails++
			continue
		}
		if runCheck(ctx, w, inst) {
			passes++
		} else {
			fails++
		}
	}
	summary := fmt.Sprintf("\n%d passing ranges, %d failures\n", passes, fails)
	if fails > 0 {
		color.New(color.FgRed).Fprint(w, summary)
		return errors.Errorf("%d of %d ranges failed", fails, passes+fails)
	}
	color.New(color.FgGreen).Fprint(w, summary)
	return nil
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks compiled ranges against the library",
	Long: `Reads one range literal per line (blank lines and lines starting with '#'
	are skipped), walks each one through the library, compiles it to Go and runs
	the result with 'go run', then compares the two outputs line by line. With
	--watch the file is checked again every time it changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Watch && CheckFile == "" {
			return errors.New("--watch needs a file to watch")
		}
		err := checkFile(cmd)
		if !Watch {
			return err
		}
		if err != nil {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
		}
		return watchFile(commandContext(cmd), CheckFile, func() {
			if err := checkFile(cmd); err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&CheckFile, "file", "f", "", "File of range literals, one per line (defaults to stdin)")
	checkCmd.Flags().BoolVarP(&Indexed, "index", "i", false, "Compare indexed output")
	checkCmd.Flags().BoolVarP(&Watch, "watch", "w", false, "Check again whenever the file changes")
}
