package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/personakit/personakit/internal/cli"
)

const (
	cmdName = "persona"

	shortDesc = "Validate and inspect character files."
	longDesc  = `Persona is a validator and inspector for character files: the JSON (or
YAML) documents that describe a conversational agent's persona, behavior
examples, and settings.

It checks a document against the character schema, reports every violation
with its field path and a suggestion, and can open the document in an
interactive collapsible tree viewer.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
