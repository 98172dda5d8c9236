package asm

import "testing"

func TestLoadBundleYAML(t *testing.T) {
	doc := []byte(`
puzzle: "00150"
source: |
  @0
  MOV UP, DOWN
seeds:
  - "1..10"
  - "20"
`)
	b, err := LoadBundleYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Puzzle != "00150" {
		t.Fatalf("puzzle = %q, want 00150", b.Puzzle)
	}
	if len(b.Seeds) != 2 {
		t.Fatalf("seeds = %v, want 2 entries", b.Seeds)
	}
}

func TestLoadBundleYAMLMissingPuzzle(t *testing.T) {
	_, err := LoadBundleYAML([]byte(`source: "@0\nNOP\n"`))
	if err == nil {
		t.Fatal("expected an error for a bundle missing \"puzzle\"")
	}
}

func TestLoadBundleYAMLMalformed(t *testing.T) {
	_, err := LoadBundleYAML([]byte("not: [valid: yaml"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
