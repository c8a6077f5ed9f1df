package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sumCmd = &cobra.Command{
	Use:   "sum RANGE",
	Short: "Print the sum of a range",
	Long: `Adds up the values of the range in the widest type of the same family
(int64, uint64 or float64), so '1..100 as uint8' sums to 5050.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instantiate(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inst.Sum())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
}
