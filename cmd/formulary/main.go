// Formulary asks the questions of a JSON, YAML or TOML file in the
// terminal and writes the answers as JSON or YAML.
//
// Usage:
//
//	formulary prompt -i questions.yaml
//	formulary wizard -i questions.toml --title "New project" --summary
//
// Cancelling a form exits with status 130.
// See 'formulary --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/ui"
	"github.com/muurk/formulary/internal/version"
)

// exitCancelled is the status of a run the user cancelled, as for SIGINT.
const exitCancelled = 130

// errCancelled is returned by form commands when the user cancels.
var errCancelled = errors.New("cancelled by user")

var logLevel string

func main() {
	os.Exit(run())
}

func run() int {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			return exitCancelled
		}
		printError(err)
		return 1
	}
	return 0
}

func printError(err error) {
	p := ui.NewPrinter(os.Stderr, nil)
	if question.IsDefinitionError(err) {
		p.PrintError("Invalid questions", err, []string{
			"Check the questions file against 'formulary types' and 'formulary validators'",
		})
		return
	}
	p.PrintError("Error", err, nil)
}

var rootCmd = &cobra.Command{
	Use:   "formulary",
	Short: "Terminal forms from question files",
	Long: `Formulary shows the questions of a JSON, YAML or TOML file as an
inline prompt or a full screen wizard and writes the answers to stdout or
a file.

Set FORMULARY_LOG_LEVEL (debug, info, warn, error) and FORMULARY_LOG_FILE
to log what happens behind the form.`,
	Version:       version.Get().Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "formulary "+version.Full())
	},
}
