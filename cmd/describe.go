package cmd

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"valuefmt/values"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [NAME VALUE]",
		Short: "Describe a name/value pair",
		Long: `Prints "NAME: VALUE" for a name and a base 10 integer value. Without
arguments both are asked for interactively. Negative values need a "--"
separator so they are not read as flags:

  valuefmt describe -- offset -7`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name, raw string
			if len(args) == 2 {
				name, raw = args[0], args[1]
			} else {
				var err error
				name, raw, err = promptNamedValue()
				if err != nil {
					return err
				}
			}

			value, err := parseValue(raw)
			if err != nil {
				return err
			}

			nv := values.New(name, value)
			logger.Debug("Describing value", zap.String("name", nv.Name()), zap.Int("value", nv.Value()))
			fmt.Fprintln(cmd.OutOrStdout(), nv.Describe())
			return nil
		},
	}
}

func parseValue(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return value, nil
}

func promptNamedValue() (string, string, error) {
	namePrompt := promptui.Prompt{
		Label: "Name",
	}
	name, err := namePrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("name prompt failed: %w", err)
	}

	valuePrompt := promptui.Prompt{
		Label: "Value",
		Validate: func(s string) error {
			_, err := parseValue(s)
			return err
		},
	}
	raw, err := valuePrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("value prompt failed: %w", err)
	}
	return name, raw, nil
}
