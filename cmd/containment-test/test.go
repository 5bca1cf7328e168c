package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/cmd/containment-test/internal/runner"
)

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	if err := parseArgs(os.Args[1:]); err != nil {
		return err
	}

	defer rulesFile.Close()
	defer testsFile.Close()

	format, err := cfg.RuleFormat()
	if err != nil {
		return err
	}

	ctx := runner.NewRunnerContext(format, cfg.LineCapacity(), cfg.Logger(os.Stderr))
	return test(os.Stdout, ctx, rulesFile, testsFile)
}

func test(w io.Writer, ctx *runner.RunnerContext, rulesFile, testsFile io.Reader) error {
	runner := &runner.Runner{Context: ctx}

	count, failures, err := runner.Run(rulesFile, testsFile)
	if err != nil {
		return err
	}

	for _, failure := range failures {
		fmt.Fprintf(w, "%s %s\n", color.RedString("FAIL"), failure)
	}

	if len(failures) > 0 {
		return errors.Errorf("%d failures across %d test specs", len(failures), count)
	}

	fmt.Fprintf(w, "%s %d test specs\n", color.GreenString("PASS"), count)
	return nil
}
