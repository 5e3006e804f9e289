package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chatfilter/chatfilter/internal/log"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes.
const (
	ExitSuccess    = 0
	ExitNoMatch    = 1
	ExitInputError = 2
)

var rootCmd = &cobra.Command{
	Use:   "chatfilter",
	Short: "Parse and apply chat resource filter expressions",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	log.InitLogger()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInputError)
	}
}
