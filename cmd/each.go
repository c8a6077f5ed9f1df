package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Indexed bool

var eachCmd = &cobra.Command{
	Use:   "each RANGE",
	Short: "Print every value of a range",
	Long: `Prints each value of the range on its own line. With --index, each line
starts with the value's zero-based position.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instantiate(cmd, args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for line := range inst.Lines(Indexed) {
			fmt.Fprintln(w, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eachCmd)
	eachCmd.Flags().BoolVarP(&Indexed, "index", "i", false, "Prefix each value with its position")
}
