// Package config manages the formulary preferences file.
//
// Preferences hold the default theme, the question mark shown in prompt mode,
// the selection symbols and the wizard button texts. They are stored as YAML
// in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/formulary/config.yaml or $HOME/.config/formulary/config.yaml
//   - macOS: $HOME/.config/formulary/config.yaml
//   - Windows: %LOCALAPPDATA%\formulary\config.yaml
//
// FORMULARY_CONFIG overrides the location.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	th := prefs.Apply(theme.Default())
//
//	_ = prefs.Set("selectone_symbol", "(*)")
//	if err := prefs.Save(); err != nil {
//	    return err
//	}
//
// Nothing in this package is global: callers load preferences and pass the
// resulting theme and texts on explicitly.
package config
