package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	backend  string
	stateDir string
)

var rootCmd = &cobra.Command{
	Use:           "lifeos",
	Short:         "lifeos tracks focus, goals and daily reviews with an AI coach",
	Long:          "lifeos is a local-first self-tracking tool: daily logs, goals broken into systems, a life score and coaching from Gemini.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "State store: file, sqlite, postgres or redis (default from STORE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory for the file and sqlite stores (default from STATE_DIR)")
}
