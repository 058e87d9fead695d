package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/masterclass/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a masterclass config file with an interactive wizard",
	Long:  `Asks for the content source, code runner URL, port and highlight language, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
