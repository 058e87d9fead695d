package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/masterclass/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Submit a source file to the code execution service",
	Long:  `Sends the file to runner.url and prints what the practice page would show: "Running..." followed by the output.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		out := cmd.OutOrStdout()
		text := newRunner(cfg, logger).Run(cmd.Context(), string(source), runner.DisplayFunc(func(s string) {
			fmt.Fprintln(out, s)
		}))
		if text == runner.ErrorText {
			return errors.New("code run failed")
		}
		return nil
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps <file>",
	Short: "Print the numbered steps of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		for _, step := range runner.Steps(string(source)) {
			fmt.Fprintln(cmd.OutOrStdout(), step)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stepsCmd)
}
