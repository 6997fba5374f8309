// Package fixtures runs declarative conformance fixtures (spec §8's
// testable properties, expressed as data instead of Go test functions) end
// to end through the lexer, parser, and interp packages. The format is
// grounded on davidkellis-able's driver.Manifest/fixture_runner.go, which
// drive a different interpreter's tests the same way: a YAML document
// pairs minilang source with the stdout or error category it must produce.
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"minilang/diag"
	"minilang/interp"
	"minilang/parser"
)

// Fixture is one YAML document under fixtures/*.yaml.
type Fixture struct {
	Name string `yaml:"-"`

	// Source is the minilang program to run.
	Source string `yaml:"source"`
	// Stdin feeds the program's input() calls, if any.
	Stdin string `yaml:"stdin"`

	// Exactly one of Stdout or Error should be set. Stdout is matched
	// exactly; Error names the diag.Category the run must fail with
	// ("syntax error", "symbol error", "type error", "runtime error").
	Stdout string `yaml:"stdout"`
	Error  string `yaml:"error"`
}

// Load reads every *.yaml file in dir and decodes it as a Fixture, in
// filename order so failures are reproducible.
func Load(dir string) ([]Fixture, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	fixtures := make([]Fixture, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var f Fixture
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		f.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// Run drives f.Source through the full pipeline and returns what it wrote
// to stdout, or the error it failed with.
func Run(f Fixture) (string, error) {
	p, err := parser.New(f.Source)
	if err != nil {
		return "", err
	}
	prog, err := p.Parse()
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	ip := interp.New(prog.Funcs, strings.NewReader(f.Stdin), &out)
	if err := ip.Run(prog.Items); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

// ErrorCategory reports err's diag.Category name, or "" if err is not a
// *diag.Error.
func ErrorCategory(err error) string {
	de, ok := err.(*diag.Error)
	if !ok {
		return ""
	}
	return de.Category.String()
}
