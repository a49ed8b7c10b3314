package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// Output formats a case can be checked against
const (
	FormatResult     = "result"
	FormatFoundryV10 = "foundry-v10"
	FormatFoundryV12 = "foundry-v12"
)

// Suite is a named set of fixture cases loaded from yaml
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`

	dir string
}

// Case is one stat block and the document it should produce. Expected may
// be a subset; keys it does not name are reported as info only.
type Case struct {
	Name         string         `yaml:"name"`
	Input        string         `yaml:"input"`
	InputFile    string         `yaml:"input_file"`
	Format       string         `yaml:"format"`
	Expected     map[string]any `yaml:"expected"`
	ExpectedFile string         `yaml:"expected_file"`
	MinAccuracy  int            `yaml:"min_accuracy"`
}

// LoadSuite reads a suite file. Relative input and expected paths resolve
// against the suite's directory.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read suite %s", path)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, errors.Wrapf(err, "suite %s", path)
	}
	suite.dir = filepath.Dir(path)
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return suite, nil
}

// ParseSuite decodes and validates suite yaml
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode suite yaml")
	}
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// Validate checks every case names an input and an expectation
func (s *Suite) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(s.Cases) == 0 {
		vb.RequiredField("cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			vb.Fieldf("cases", "case %d has no name", i)
			continue
		}
		if seen[c.Name] {
			vb.Fieldf(c.Name, "duplicate case name")
		}
		seen[c.Name] = true

		if (c.Input == "") == (c.InputFile == "") {
			vb.InvalidField(c.Name, "exactly one of input and input_file is required")
		}
		if c.Expected == nil && c.ExpectedFile == "" {
			vb.InvalidField(c.Name, "expected or expected_file is required")
		}
		switch c.Format {
		case "", FormatResult, FormatFoundryV10, FormatFoundryV12:
		default:
			vb.Fieldf(c.Name, "unsupported format %q", c.Format)
		}
		if c.MinAccuracy < 0 || c.MinAccuracy > 100 {
			vb.InvalidField(c.Name, "min_accuracy must be between 0 and 100")
		}
	}
	return vb.Build()
}

func (s *Suite) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

// text returns the stat block text of a case
func (s *Suite) text(c Case) (string, error) {
	if c.InputFile == "" {
		return c.Input, nil
	}
	data, err := os.ReadFile(s.resolve(c.InputFile))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read input %s", c.InputFile)
	}
	return string(data), nil
}

// expected returns the expected document of a case
func (s *Suite) expected(c Case) (any, error) {
	if c.ExpectedFile == "" {
		return c.Expected, nil
	}
	data, err := os.ReadFile(s.resolve(c.ExpectedFile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read expected %s", c.ExpectedFile)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(c.ExpectedFile)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode "+c.ExpectedFile)
	}
	return doc, nil
}
