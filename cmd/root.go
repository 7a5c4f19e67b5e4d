package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = ".valuefmt.yaml"

var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	var verbose bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "valuefmt",
		Short: "Describe text and named values",
		Long: `valuefmt renders human readable descriptions of text and of name/value pairs,
either from the command line or from the sources listed in a .valuefmt.yaml file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.WarnLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the project file")

	rootCmd.AddCommand(
		newFormatCmd(),
		newDescribeCmd(),
		newRenderCmd(&configPath),
	)
	return rootCmd
}

// newLogger builds a production style JSON logger writing to w
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core, zap.AddCaller())
}

// execute runs root and flushes the logger whether or not the command failed
func execute(root *cobra.Command) error {
	err := root.Execute()
	_ = logger.Sync()
	return err
}

func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
