package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/muurk/formulary"
	"github.com/muurk/formulary/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommands(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	require.Contains(t, out, "daterange")
	require.Contains(t, out, "selectmany")

	out, err = execute(t, "validators")
	require.NoError(t, err)
	require.Contains(t, out, "min-length")

	out, err = execute(t, "themes")
	require.NoError(t, err)
	require.Contains(t, out, "purple")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.PathEnvVar, path)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, path)

	_, err = execute(t, "config", "set", "wizard.finish_text", "Done")
	require.NoError(t, err)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "finish_text: Done")

	_, err = execute(t, "config", "set", "colour", "red")
	require.ErrorContains(t, err, "unknown preference")

	wo := wizardOptions()
	require.Equal(t, "Done", wo.FinishText)
}

func TestPromptRequiresInput(t *testing.T) {
	_, err := execute(t, "prompt")
	require.Error(t, err)
}

func TestPromptBadQuestionsFile(t *testing.T) {
	t.Setenv(config.PathEnvVar, filepath.Join(t.TempDir(), "config.yaml"))
	_, err := execute(t, "prompt", "-i", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "failed to open questions file")
}

func TestFinish(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	outputPath, outputFormat = "", "yaml"
	t.Cleanup(func() { outputFormat = "json" })

	require.ErrorIs(t, finish(cmd, nil, false, nil), errCancelled)
	require.NoError(t, finish(cmd, formulary.Answers{"name": "Jo"}, true, nil))
	require.Equal(t, "name: Jo\n", out.String())
}

func TestResolveTheme(t *testing.T) {
	prefs := config.NewPreferences()
	prefs.QuestionMark = ">"

	themeName = "purple"
	t.Cleanup(func() { themeName = "" })
	th, err := resolveTheme(prefs)
	require.NoError(t, err)
	require.Equal(t, "purple", th.Name)
	require.Equal(t, ">", th.Symbols.QuestionMark)

	themeName = "nope"
	_, err = resolveTheme(prefs)
	require.ErrorContains(t, err, "failed to load theme")
}
