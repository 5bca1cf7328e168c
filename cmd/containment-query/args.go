package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kingpin"
	"github.com/sourcegraph/containment/internal/config"
)

var app = kingpin.New(
	"containment-query",
	"containment-query answers questions about which containers hold which.",
).Version(version)

var (
	rulesFile *os.File
	cfg       *config.Config

	ancestorsCommand = app.Command("ancestors", "List every container that can hold the given container.")
	ancestorsKey     = ancestorsCommand.Arg("container", "The container to look up.").Required().Strings()

	countCommand = app.Command("count", "Count the containers that can hold the given container.")
	countKey     = countCommand.Arg("container", "The container to look up.").Required().Strings()

	totalCommand   = app.Command("total", "Count the containers nested inside the given container.")
	totalKey       = totalCommand.Arg("container", "The container to look up.").Required().Strings()
	skipCycleCheck = totalCommand.Flag("skip-cycle-check", "Do not check the rules for cycles first.").Bool()
)

func init() {
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')

	app.Flag("rules-file", "The rule file to read.").Short('f').Default("rules.txt").FileVar(&rulesFile)
	cfg = config.Register(app)
}

func parseArgs(args []string) (string, error) {
	return app.Parse(args)
}

// containerName joins unquoted multi-word arguments such as `shiny gold`.
func containerName(words []string) string {
	return strings.Join(words, " ")
}
