package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"drift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "Drift language front end",
	Long:  `Drift is a small scripting language; for now the toolchain covers the tokenizer`,
}

// main wires the subcommands and persistent flags, then executes the root
// command. On error the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
