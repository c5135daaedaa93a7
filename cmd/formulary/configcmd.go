package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formulary/internal/config"
	"github.com/muurk/formulary/internal/ui"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage preferences",
	Long: `Show and change the preferences file: default theme, question mark,
selection symbols and wizard button texts.

The file lives in the user config directory unless $` + config.PathEnvVar + ` is set.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := config.Load()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Example: `  formulary config set theme purple
  formulary config set question_mark '>'
  formulary config set wizard.finish_text Done`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := config.Load()
		if err != nil {
			return err
		}
		if err := prefs.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := prefs.Save(); err != nil {
			return err
		}
		path, _ := config.GetConfigPath()
		ui.NewPrinter(cmd.OutOrStdout(), nil).PrintSuccess("Preference saved", []ui.Detail{
			{Key: args[0], Value: args[1]},
			{Key: "File", Value: path},
		})
		return nil
	},
}
