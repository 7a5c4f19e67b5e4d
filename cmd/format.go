package cmd

import (
	"bufio"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"valuefmt/values"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [TEXT...]",
		Short: "Describe text values",
		Long: `Prints a description of every argument, one per line. Without arguments the
lines of stdin are described instead. An empty value is described as "empty".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, arg := range args {
					fmt.Fprintln(out, values.Format(arg))
				}
				return nil
			}

			logger.Debug("Reading values from stdin")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
			n := 0
			for scanner.Scan() {
				fmt.Fprintln(out, values.Format(scanner.Text()))
				n++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			logger.Debug("Formatted stdin", zap.Int("lines", n))
			return nil
		},
	}
}
