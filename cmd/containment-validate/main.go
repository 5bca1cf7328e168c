package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sourcegraph/containment/internal/assets"
	"github.com/sourcegraph/containment/internal/config"
	"github.com/sourcegraph/containment/internal/output"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/validation"
	"github.com/xeipuuv/gojsonschema"
)

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	app := kingpin.New("containment-validate", "containment-validate is a validator for container rule files.").Version(version)
	rulesFile := app.Arg("rules-file", "The rule file to validate.").Default("rules.txt").File()
	disableJSONSchema := app.Flag("disable-jsonschema", "Turn off JSON schema validation of json rules.").Bool()
	requireDeclarations := app.Flag("require-declarations", "Report containers that are never declared as an owner.").Bool()
	stopOnError := app.Flag("stop-on-error", "Stop validation after the first error.").Bool()
	cfg := config.Register(app)

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	defer (*rulesFile).Close()

	logger := cfg.Logger(os.Stderr)

	format, err := cfg.RuleFormat()
	if err != nil {
		return err
	}

	var schema *gojsonschema.Schema
	if !*disableJSONSchema {
		if schema, err = assets.RuleSchema(); err != nil {
			return errors.Wrap(err, "schema")
		}
	}

	validator := validation.NewValidator(schema, format, validation.Options{
		DisableJSONSchema:   *disableJSONSchema,
		RequireDeclarations: *requireDeclarations,
	})

	allOk := true
	err = output.WithProgress(cfg.Progress, func(update output.Update) error {
		return reader.Read(*rulesFile, cfg.LineCapacity(), func(lineContext reader.LineContext) bool {
			if !validator.ValidateLine(lineContext) {
				allOk = false

				if *stopOnError {
					return false
				}
			}

			update("Validated %d lines", validator.Lines())
			return true
		})
	})
	if err != nil {
		return err
	}

	logger.Info("validated rule lines", "file", (*rulesFile).Name(), "lines", validator.Lines())

	if allOk {
		if !validator.ValidateGraph(*stopOnError) {
			allOk = false
		}
	}

	g := validator.Graph()
	logger.Info("built containment graph", "containers", g.Len(), "edges", g.Edges())

	if !allOk {
		printErrors(os.Stdout, validator.Errors())
		return errors.Errorf("%s is invalid", (*rulesFile).Name())
	}

	fmt.Printf("Rules are valid!\n")
	return nil
}

func printErrors(w io.Writer, errs []validation.ValidationError) {
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "Found %d errors\n\n", len(errs))

	for i, err := range errs {
		fmt.Fprintf(w, "%d) %s\n", i+1, err.Message)

		for _, lineContext := range err.RelevantLines {
			fmt.Fprintf(w, "\t%s %s\n", yellow(fmt.Sprintf("on line #%d:", lineContext.Index)), lineContext.Text)
		}
	}

	fmt.Fprintf(w, "\n")
}
