package asm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bundle describes a full batch-grading run in one YAML document: which
// puzzle to grade, the native "@N"-block solution text, and which seed
// range expressions to run, mirroring core/program.go's
// YAMLCoreProgram/YAMLEntry schema (a YAML document per compute unit)
// adapted to this module's single-puzzle grading unit. The native "@N"
// text format remains the default and primary input; a Bundle is an
// additional, batch-oriented way to describe the same run. Seeds holds
// raw "a..b,c..d" expressions rather than a parsed type, so this
// package doesn't need to depend on grader.
type Bundle struct {
	Puzzle string   `yaml:"puzzle"`
	Source string   `yaml:"source"`
	Seeds  []string `yaml:"seeds,omitempty"`
}

// LoadBundleYAML parses one YAML bundle document.
func LoadBundleYAML(doc []byte) (Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(doc, &b); err != nil {
		return Bundle{}, fmt.Errorf("asm: invalid bundle YAML: %w", err)
	}
	if b.Puzzle == "" {
		return Bundle{}, fmt.Errorf("asm: bundle YAML missing required \"puzzle\" field")
	}
	return b, nil
}
