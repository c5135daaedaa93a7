package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/formulary"
	"github.com/muurk/formulary/internal/codec"
	"github.com/muurk/formulary/internal/config"
	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/theme"
)

// Flags shared by the form commands
var (
	inputPath    string
	outputPath   string
	themeName    string
	inputFormat  string
	outputFormat string
)

// Wizard flags
var (
	wizardTitle     string
	wizardIntro     string
	wizardSummary   bool
	summaryTemplate string
	fastForward     bool
	nextText        string
	previousText    string
	cancelText      string
	finishText      string
)

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Questions file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Answers file (default stdout)")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "Theme name or theme file (default from preferences)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Questions format: json, yaml or toml (default from extension)")
	cmd.Flags().StringVar(&outputFormat, "output-format", "json", "Answers format: json or yaml")
	_ = cmd.MarkFlagRequired("input")
}

func init() {
	addFormFlags(promptCmd)
	addFormFlags(wizardCmd)

	f := wizardCmd.Flags()
	f.StringVar(&wizardTitle, "title", "", "Wizard title")
	f.StringVar(&wizardIntro, "intro", "", "Introduction page text")
	f.BoolVar(&wizardSummary, "summary", false, "Show a summary page before finishing")
	f.StringVar(&summaryTemplate, "summary-template", "", "Summary page template; $name is replaced by the answer to name")
	f.BoolVar(&fastForward, "fast-forward", false, "Skip steps whose defaults are already valid")
	f.StringVar(&nextText, "next-text", "", "Next button text")
	f.StringVar(&previousText, "previous-text", "", "Previous button text")
	f.StringVar(&cancelText, "cancel-text", "", "Cancel button text")
	f.StringVar(&finishText, "finish-text", "", "Finish button text")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(wizardCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask the questions one by one",
	Long: `Ask the questions of a file one after the other, inline in the terminal.

Each question is asked until its answer passes every validator. Disabled
questions are skipped.`,
	Example: `  # Ask and print the answers as JSON
  formulary prompt -i questions.yaml

  # Write YAML answers to a file with the purple theme
  formulary prompt -i questions.json -o answers.yaml --output-format yaml -t purple`,
	RunE: runPrompt,
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Show the questions as a full screen wizard",
	Long: `Show the questions of a file as a multi step dialog with a step list,
Previous/Next buttons and an optional introduction and summary page.`,
	Example: `  # A titled wizard with a summary page
  formulary wizard -i questions.toml --title "New project" --summary

  # Custom summary
  formulary wizard -i q.yaml --summary-template 'Deploying $app to ${env}'`,
	RunE: runWizard,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	qs, opts, err := loadForm()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	answers, ok, err := formulary.Prompt(ctx, qs, opts...)
	return finish(cmd, answers, ok, err)
}

func runWizard(cmd *cobra.Command, args []string) error {
	qs, opts, err := loadForm()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	answers, ok, err := formulary.Wizard(ctx, qs, wizardOptions(), opts...)
	return finish(cmd, answers, ok, err)
}

// wizardOptions merges the wizard flags over the preferred button texts.
func wizardOptions() formulary.WizardOptions {
	wo := formulary.WizardOptions{
		Title:           wizardTitle,
		Intro:           wizardIntro,
		Summary:         wizardSummary,
		SummaryTemplate: summaryTemplate,
		FastForward:     fastForward,
		NextText:        nextText,
		PreviousText:    previousText,
		CancelText:      cancelText,
		FinishText:      finishText,
	}
	if prefs, err := config.Load(); err == nil && prefs.Wizard != nil {
		fill(&wo.NextText, prefs.Wizard.NextText)
		fill(&wo.PreviousText, prefs.Wizard.PreviousText)
		fill(&wo.CancelText, prefs.Wizard.CancelText)
		fill(&wo.FinishText, prefs.Wizard.FinishText)
	}
	return wo
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// loadForm reads the questions and resolves the theme from the flags and
// the preferences file.
func loadForm() ([]*formulary.Question, []formulary.Option, error) {
	var format codec.Format
	if inputFormat != "" {
		f, err := codec.ParseFormat(inputFormat)
		if err != nil {
			return nil, nil, err
		}
		format = f
	}
	qs, err := codec.LoadQuestions(inputPath, format)
	if err != nil {
		return nil, nil, err
	}

	prefs, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	t, err := resolveTheme(prefs)
	if err != nil {
		return nil, nil, err
	}

	logging.Debug("Loaded form",
		zap.String("input", inputPath),
		zap.Int("questions", len(qs)),
		zap.String("theme", t.Name),
	)
	return qs, []formulary.Option{formulary.WithTheme(t)}, nil
}

// resolveTheme picks the --theme flag, then the preferred theme file, then
// the preferred theme name. A flag value naming an existing file is loaded
// as a theme file.
func resolveTheme(prefs *config.Preferences) (*theme.Theme, error) {
	var (
		t   *theme.Theme
		err error
	)
	switch {
	case themeName != "":
		if _, statErr := os.Stat(themeName); statErr == nil {
			t, err = theme.Load(themeName)
		} else {
			t, err = theme.Builtins().Get(themeName)
		}
	case prefs.ThemeFile != "":
		t, err = theme.Load(prefs.ThemeFile)
	default:
		t, err = theme.Builtins().Get(prefs.Theme)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return prefs.Apply(t), nil
}

// finish writes the answers of a completed form.
func finish(cmd *cobra.Command, answers formulary.Answers, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	format, err := codec.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" && outputPath != "-" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create answers file: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err := codec.EncodeAnswers(w, answers, format); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return nil
}
