// Package assets holds files compiled into the binaries.
package assets

import (
	"embed"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var files embed.FS

func Asset(name string) ([]byte, error) {
	content, err := files.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "asset %s", name)
	}

	return content, nil
}

// RuleSchema compiles the JSON schema for json-formatted rule lines.
func RuleSchema() (*gojsonschema.Schema, error) {
	content, err := Asset("rule.schema.json")
	if err != nil {
		return nil, err
	}

	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(string(content)))
}
