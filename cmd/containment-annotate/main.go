package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin"
	"github.com/fatih/color"
	"github.com/sourcegraph/containment/graph"
	"github.com/sourcegraph/containment/internal/config"
	"github.com/sourcegraph/containment/internal/reader"
	"github.com/sourcegraph/containment/rules"
)

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("error: %v\n", err))
		os.Exit(1)
	}
}

func realMain() error {
	app := kingpin.New("containment-annotate", "containment-annotate is an annotator for debugging rule files.").Version(version)
	rulesFile := app.Arg("rules-file", "The rule file to annotate.").Default("rules.txt").File()
	cfg := config.Register(app)

	_, err := app.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	defer (*rulesFile).Close()

	format, err := cfg.RuleFormat()
	if err != nil {
		return err
	}

	content, err := ioutil.ReadAll(*rulesFile)
	if err != nil {
		return err
	}

	return annotate(os.Stdout, content, format, cfg.LineCapacity())
}

func annotate(w io.Writer, content []byte, format rules.Format, bufferCapacity int) error {
	// Malformed lines are annotated below rather than rejected, so the graph
	// is built only from the lines that parse.
	g := graph.New()
	if err := reader.Read(bytes.NewReader(content), bufferCapacity, func(lineContext reader.LineContext) bool {
		if _, parsed, err := rules.Parse(format, lineContext.Text); err == nil {
			for _, rule := range parsed {
				_ = g.AddRule(rule.Owner, rule.Target, rule.Amount)
			}
		}

		return true
	}); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	yellow := color.New(color.FgYellow).SprintFunc()
	padding := strconv.Itoa(len(strconv.Itoa(len(lines))))

	for i, line := range lines {
		linePrefix := fmt.Sprintf("Line %-"+padding+"d|", i+1)
		fmt.Fprintln(w, yellow(linePrefix)+line)

		if strings.TrimSpace(line) == "" {
			continue
		}

		owner, _, err := rules.Parse(format, line)
		if err != nil {
			fmt.Fprintln(w, color.RedString("%s^ %s", strings.Repeat(" ", len(linePrefix)), err))
			continue
		}

		start, width := locate(line, owner)
		whitespace := strings.Repeat(" ", len(linePrefix)+start)
		indicator := strings.Repeat("^", width)
		fmt.Fprintln(w, color.GreenString("%s%s %s", whitespace, indicator, describe(g, owner)))
	}

	return nil
}

func describe(g *graph.Graph, owner string) string {
	label := fmt.Sprintf("%s: %d ancestors", graph.Normalize(owner), len(g.Ancestors(owner)))

	if err := g.CheckAcyclicFrom(owner); err != nil {
		return label + ", total unavailable (cycle)"
	}

	total, err := g.TotalContained(owner)
	if err != nil {
		return label + ", total unavailable (" + err.Error() + ")"
	}

	return label + ", total " + strconv.FormatUint(total, 10)
}

//
// Helpers

// locate finds the byte span of owner within line, ignoring case and
// whitespace runs. Falls back to the first byte when the owner cannot be
// matched to the raw text.
func locate(line, owner string) (int, int) {
	lower := strings.ToLower(line)
	words := strings.Fields(strings.ToLower(owner))
	if len(words) == 0 {
		return 0, 1
	}

	for offset := 0; offset < len(lower); {
		start := strings.Index(lower[offset:], words[0])
		if start < 0 {
			break
		}

		start += offset
		if end, ok := matchWords(lower, start, words); ok {
			return start, end - start
		}

		offset = start + 1
	}

	return 0, 1
}

func matchWords(s string, pos int, words []string) (int, bool) {
	for i, word := range words {
		if i > 0 {
			skipped := pos
			for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
				pos++
			}
			if pos == skipped {
				return 0, false
			}
		}

		if !strings.HasPrefix(s[pos:], word) {
			return 0, false
		}

		pos += len(word)
	}

	return pos, true
}
