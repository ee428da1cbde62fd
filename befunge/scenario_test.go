package befunge

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// scenario is one entry of testdata/programs.yaml.
type scenario struct {
	Name   string  `yaml:"name"`
	Source string  `yaml:"source"`
	Input  string  `yaml:"input"`
	Values []int64 `yaml:"values"`
	Output string  `yaml:"output"`
	Stack  []int64 `yaml:"stack"`
}

func loadScenarios(t *testing.T, path string) []scenario {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var list []scenario
	if err := yaml.NewDecoder(f).Decode(&list); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return list
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t, "testdata/programs.yaml") {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			g, err := LoadString(sc.Source)
			if err != nil {
				t.Fatal(err)
			}
			var in Input = NewStreamInput(strings.NewReader(sc.Input), nil)
			if sc.Values != nil {
				vals := make([]Cell, len(sc.Values))
				for i, v := range sc.Values {
					vals[i] = Cell(v)
				}
				in = NewValueInput(vals...)
			}
			opt := DefaultOptions()
			opt.MaxSteps = 1000000
			var out bytes.Buffer
			vm := NewVM(g, in, NewStreamOutput(&out, nil), opt)
			if err := vm.Run(context.Background()); err != nil {
				t.Fatal(err)
			}
			if out.String() != sc.Output {
				t.Errorf("output %q, want %q", out.String(), sc.Output)
			}
			want := make([]Cell, len(sc.Stack))
			for i, v := range sc.Stack {
				want[i] = Cell(v)
			}
			if got := vm.Stack(); !equalCells(got, want) {
				t.Errorf("stack %v, want %v", got, want)
			}
		})
	}
}
