package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"valuefmt/gitutil"
	"valuefmt/sources"
	"valuefmt/transformations"
)

func newRenderCmd(configPath *string) *cobra.Command {
	var outputPath string
	var contextFlags []string
	var noComments bool

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Describe every value listed in the project file",
		Long: `Reads the project file, selects contexts if needed, loads the values of every
matching source and writes one description per value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			// Select contexts for filtering sources
			selectedContexts := contextFlags
			if len(selectedContexts) == 0 && len(config.Contexts) > 0 {
				prompt := &survey.MultiSelect{
					Message: "Select contexts (press Enter for none, Space to select):",
					Options: config.Contexts,
				}
				if err := survey.AskOne(prompt, &selectedContexts); err != nil {
					return fmt.Errorf("context selection failed: %w", err)
				}
			}
			logger.Debug("Selected contexts", zap.Strings("contexts", selectedContexts))

			groups, err := sources.Collect(config.Sources, selectedContexts)
			if err != nil {
				return err
			}

			output, count, err := renderGroups(groups, !noComments)
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), output)
				return err
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.Debug("Rendered values", zap.Int("count", count), zap.String("output", outputPath))

			entry, err := gitutil.EnsureGitignored(outputPath)
			if err != nil {
				return err
			}
			if entry != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to .gitignore\n", entry)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d values to %s\n", count, outputPath)
			return nil
		},
	}

	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout")
	renderCmd.Flags().StringArrayVarP(&contextFlags, "context", "c", []string{}, "context for filtering sources (can be repeated, prompts if not provided and contexts are defined)")
	renderCmd.Flags().BoolVar(&noComments, "no-comments", false, "omit the source comment before each value")
	return renderCmd
}

func renderGroups(groups []sources.Group, comments bool) (string, int, error) {
	var b strings.Builder
	count := 0
	for _, group := range groups {
		for _, entry := range group.Entries {
			line, err := transformations.Describe(entry.Value, group.Source.Transformations)
			if err != nil {
				return "", 0, fmt.Errorf("source %s: %w", group.Source.Label(), err)
			}
			if comments {
				fmt.Fprintf(&b, "# %s %s\n", entry.SourceType, entry.Origin)
			}
			b.WriteString(line)
			b.WriteByte('\n')
			count++
		}
	}
	return b.String(), count, nil
}
