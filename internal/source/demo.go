package source

import _ "embed"

//go:embed demo_roster.csv
var demoRoster string

// Demo is the built-in roster used when no URL or file is configured.
func Demo() StaticSource {
	return StaticSource{Name: "demo", Text: demoRoster}
}
