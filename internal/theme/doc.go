// Package theme defines color palettes and widget symbols, and turns them
// into lipgloss styles.
//
// Two themes are built in, "default" and "purple". Custom themes are YAML
// files; any key left out is taken from the default theme:
//
//	name: ocean
//	colors:
//	  primary: "#0087AF"
//	  accent: "#87D7FF"
//	symbols:
//	  selectone_checked: "(*)"
package theme
