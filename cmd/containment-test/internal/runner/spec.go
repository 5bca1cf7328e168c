package runner

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// TestSpec lists the expectations for one container. Unset fields are not
// checked.
type TestSpec struct {
	Container     string   `yaml:"container"`
	Ancestors     []string `yaml:"ancestors"`
	AncestorCount *int     `yaml:"ancestorCount"`
	Descendants   []string `yaml:"descendants"`
	Total         *uint64  `yaml:"total"`
}

func ReadTestSpecs(r io.Reader) ([]TestSpec, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var testSpecs []TestSpec
	if err := yaml.UnmarshalStrict(content, &testSpecs); err != nil {
		return nil, errors.Wrap(err, "test specs")
	}

	for i, testSpec := range testSpecs {
		if testSpec.Container == "" {
			return nil, errors.Errorf("test spec #%d has no container", i+1)
		}
	}

	return testSpecs, nil
}
