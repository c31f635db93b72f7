package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drift/internal/diagfmt"
	"drift/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a drift source file or directory",
	Long:  `Tokenize breaks down drift source (.dr) into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("lenient", false, "silently drop unrecognized input instead of failing")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := tokenizeOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		return runTokenizeDir(cmd, path, format, opts, jobs)
	}
	return runTokenizeFile(cmd, path, format, opts)
}

// tokenizeOptions собирает driver.Options из флагов и drift.toml.
// Явный флаг --lenient сильнее манифеста.
func tokenizeOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	lenient, _ := cmd.Flags().GetBool("lenient")
	if !cmd.Flags().Changed("lenient") {
		if manifest, ok, err := loadProjectManifest("."); err != nil {
			return driver.Options{}, err
		} else if ok {
			lenient = manifest.Config.Lexer.Lenient
		}
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Lenient:        lenient,
	}

	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err := driver.OpenTokenCache("drift")
		if err != nil {
			return driver.Options{}, fmt.Errorf("failed to open token cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func runTokenizeFile(cmd *cobra.Command, path, format string, opts driver.Options) error {
	result, err := driver.Tokenize(path, opts)
	if err != nil {
		if result != nil {
			printDiagnostics(cmd, result)
		}
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result)

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	}
}

func runTokenizeDir(cmd *cobra.Command, dir, format string, opts driver.Options, jobs int) error {
	fileSet, results, err := driver.TokenizeDir(context.Background(), dir, opts, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	var failed error
	for _, res := range results {
		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, prettyOpts(cmd))
		}
		if res.Err != nil {
			failed = errors.Join(failed, res.Err)
			continue
		}
		switch format {
		case "json":
			err = diagfmt.FormatTokensJSON(os.Stdout, res.Tokens, fileSet)
		default:
			err = diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, fileSet)
		}
		if err != nil {
			return err
		}
	}
	if failed != nil {
		return fmt.Errorf("tokenization failed: %w", failed)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.TokenizeResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
}

func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	return diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	}
}
