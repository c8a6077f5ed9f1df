package cmd

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/redneckbeard/rangex/compiler"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	Covers     []string
	InfoFormat string
)

type rangeInfo struct {
	Range    string          `yaml:"range" toml:"range"`
	Kind     string          `yaml:"kind" toml:"kind"`
	StepKind string          `yaml:"step_kind" toml:"step_kind"`
	End      string          `yaml:"end" toml:"end"`
	Length   int             `yaml:"length" toml:"length"`
	First    string          `yaml:"first,omitempty" toml:"first,omitempty"`
	Last     string          `yaml:"last,omitempty" toml:"last,omitempty"`
	Covers   map[string]bool `yaml:"covers,omitempty" toml:"covers,omitempty"`
}

func describe(inst compiler.Instance, covers []string) (*rangeInfo, error) {
	info := &rangeInfo{
		Range:    inst.String(),
		Kind:     inst.Kind().String(),
		StepKind: inst.StepKind().String(),
		End:      inst.End(),
		Length:   inst.Len(),
	}
	if first, ok := inst.First(); ok {
		info.First = first
	}
	if last, ok := inst.Last(); ok {
		info.Last = last
	}
	for _, lit := range covers {
		covered, err := inst.Covers(lit)
		if err != nil {
			return nil, err
		}
		if info.Covers == nil {
			info.Covers = make(map[string]bool)
		}
		info.Covers[lit] = covered
	}
	return info, nil
}

func report(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-10s %s\n", label, value)
}

func writeInfo(w io.Writer, info *rangeInfo, format string, covers []string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(info)
	case "", "text":
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or toml)", format)
	}
	report(w, "range", info.Range)
	report(w, "kind", info.Kind)
	report(w, "step kind", info.StepKind)
	report(w, "end", info.End)
	report(w, "length", fmt.Sprint(info.Length))
	if info.Length > 0 {
		report(w, "first", info.First)
		report(w, "last", info.Last)
	}
	// covers keeps the order the values were asked for
	for _, lit := range covers {
		report(w, "covers", fmt.Sprintf("%s: %t", lit, info.Covers[lit]))
	}
	return nil
}

var infoCmd = &cobra.Command{
	Use:   "info RANGE",
	Short: "Describe how a range was normalized",
	Long: `Prints the element and step types of the range, its normalized end (the
value the loop stops at), its length and its first and last values. Each
--covers value is reported as inside or outside the range. --format yaml or
--format toml prints the same fields as a document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := instantiate(cmd, args)
		if err != nil {
			return err
		}
		info, err := describe(inst, Covers)
		if err != nil {
			return err
		}
		return writeInfo(cmd.OutOrStdout(), info, InfoFormat, Covers)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringSliceVarP(&Covers, "covers", "c", nil, "Values to test for membership")
	infoCmd.Flags().StringVar(&InfoFormat, "format", "text", "Output format: text, yaml or toml")
}
