package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/masterclass/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "masterclass",
	Short: "Serve a programming masterclass from a single content document",
	Long: `Masterclass renders course sections, topics and practice programs from one
content document and forwards "run my code" requests to an external code
execution service.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

