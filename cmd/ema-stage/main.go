// Command ema-stage turns model output into animation scenes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ema-stage",
		Short:   "Orchestrate animation scenes from model output",
		Long:    titleStyle.Render("ema-stage") + "\n\nTurns the structured payload of a model reply into a per-actor animation schedule.",
		Version: version,

		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "config file (default ./ema-stage.yaml)")

	rootCmd.AddCommand(
		newOrchestrateCmd(),
		newPreviewCmd(),
		newNormalizeCmd(),
		newSchemaCmd(),
		newVocabularyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
