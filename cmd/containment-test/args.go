package main

import (
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/sourcegraph/containment/internal/config"
)

var app = kingpin.New(
	"containment-test",
	"containment-test checks a rule file against expected query results.",
).Version(version)

var (
	rulesFile *os.File
	testsFile *os.File
	cfg       *config.Config
)

func init() {
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.HelpFlag.Hidden()

	app.Arg("rules-file", "The rule file to test.").Default("rules.txt").FileVar(&rulesFile)
	app.Arg("tests-file", "The test specification file.").Default("tests.yaml").FileVar(&testsFile)
	cfg = config.Register(app)
}

func parseArgs(args []string) (err error) {
	if _, err := app.Parse(args); err != nil {
		return err
	}

	return nil
}
