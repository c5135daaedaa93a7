package main

import (
	"github.com/spf13/cobra"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/ui"
	"github.com/muurk/formulary/internal/validators"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(validatorsCmd)
	rootCmd.AddCommand(typesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	Run: func(cmd *cobra.Command, args []string) {
		reg := theme.Builtins()
		details := make([]ui.Detail, 0, 2)
		for _, name := range reg.Names() {
			t, _ := reg.Get(name)
			details = append(details, ui.Detail{Key: name, Value: t.Colors.Primary + " / " + t.Colors.Accent})
		}
		ui.NewPrinter(cmd.OutOrStdout(), nil).PrintHeader("Themes", "Use with --theme or 'formulary config set theme'", details)
	},
}

var validatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "List the built-in validators",
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(cmd.OutOrStdout(), nil)
		for _, name := range validators.Builtins().Names() {
			p.Println(name)
		}
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the question types",
	Run: func(cmd *cobra.Command, args []string) {
		reg := handlers.Builtins()
		details := make([]ui.Detail, 0, 9)
		for _, name := range reg.Names() {
			t, _ := reg.Lookup(name)
			details = append(details, ui.Detail{Key: name, Value: t.Description})
		}
		ui.NewPrinter(cmd.OutOrStdout(), nil).PrintHeader("Question types", "", details)
	},
}
