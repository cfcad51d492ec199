// yamlroulette - YAML syntax checker
//
// yamlroulette loads a YAML file and reports whether it parses. On failure it
// shows the problem, its line and column, and the offending source line.
package main

import (
	"os"

	"github.com/ccollicutt/yamlroulette/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
