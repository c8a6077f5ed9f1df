/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/redneckbeard/rangex/compiler"
	"github.com/spf13/cobra"
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec RANGE",
	Short: "Compiles and executes the range",
	Long: `'rangex exec' compiles the range and immediately executes the Go
	output with 'go run'. Useful for checking a literal against what the
	library itself prints.`,
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
		ctx := commandContext(cmd)
		logger.DebugContext(ctx, "go run", "range", inst.String())
		stdout, err := compiler.Run(ctx, compiled)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintln(w, strings.Repeat("-", 20))
		fmt.Fprint(w, stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolVarP(&Indexed, "index", "i", false, "Print each value's position alongside it")
}
