// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
	}{
		{"missing label", []Rule{{Expr: `\bAI\b`}}},
		{"missing expr", []Rule{{Label: "AI"}}},
		{"invalid expr", []Rule{{Label: "bad", Expr: `(`}}},
		{"invalid near", []Rule{{Label: "bad", Expr: `\bAI\b`, Near: `(`}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile(tt.rules); err == nil {
				t.Error("Compile() error = nil, want error")
			}
		})
	}
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		text string
		want bool
	}{
		{
			name: "phrase case-insensitive",
			rule: Rule{Label: "ML", Expr: `\bmachine learning\b`},
			text: "Applications of Machine Learning in sociology",
			want: true,
		},
		{
			name: "acronym case-sensitive hit",
			rule: Rule{Label: "LLM", Expr: `\bLLMs?\b`, CaseSensitive: true},
			text: "We evaluate several LLMs on survey coding.",
			want: true,
		},
		{
			name: "acronym case-sensitive rejects lowercase",
			rule: Rule{Label: "LLM", Expr: `\bLLMs?\b`, CaseSensitive: true},
			text: "the llm meeting minutes",
			want: false,
		},
		{
			name: "word boundary rejects substring",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, CaseSensitive: true},
			text: "AIDS research funding",
			want: false,
		},
		{
			name: "context clause within window",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, Near: `\bmodels?\b`, Window: 10, CaseSensitive: true},
			text: "an AI model was used",
			want: true,
		},
		{
			name: "context clause secondary missing",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, Near: `\bmodels?\b`, Window: 10, CaseSensitive: true},
			text: "AI is discussed generally",
			want: false,
		},
		{
			name: "context clause beyond window",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, Near: `\bmodels?\b`, Window: 3, CaseSensitive: true},
			text: "AI one two three four five six model",
			want: false,
		},
		{
			name: "context clause secondary before primary",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, Near: `\bmodels?\b`, Window: 5, CaseSensitive: true},
			text: "our model relies on AI techniques",
			want: true,
		},
		{
			name: "context clause no primary",
			rule: Rule{Label: "AI", Expr: `\bAI\b`, Near: `\bmodels?\b`, CaseSensitive: true},
			text: "a model of social behaviour",
			want: false,
		},
		{
			name: "empty text",
			rule: Rule{Label: "ML", Expr: `\bmachine learning\b`},
			text: "",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := Compile([]Rule{tt.rule})
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := patterns[0].Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchLabelsDedupsVariants(t *testing.T) {
	rules := []Rule{
		{Label: "Large Language Model (LLM)", Expr: `\bLLMs?\b`, CaseSensitive: true},
		{Label: "Large Language Model (LLM)", Expr: `\blarge language models?\b`},
		{Label: "Transformer", Expr: `\btransformers?\b`},
	}
	patterns, err := Compile(rules)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	text := "Large language models (LLMs) are transformer architectures."
	got := MatchLabels(patterns, text)
	want := []string{"Large Language Model (LLM)", "Transformer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchLabels() = %v, want %v", got, want)
	}
}

func TestDefaultPatternsCompile(t *testing.T) {
	patterns := DefaultPatterns()
	if len(patterns) != len(DefaultRules) {
		t.Fatalf("DefaultPatterns() returned %d patterns, want %d", len(patterns), len(DefaultRules))
	}

	labels := Labels(patterns)
	for i := 1; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			t.Errorf("Labels() not strictly sorted: %q then %q", labels[i-1], labels[i])
		}
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	doc := `rules:
  - label: "Machine learning"
    expr: '\bmachine learning\b'
  - label: "Artificial intelligence"
    expr: '\bAI\b'
    near: '\bmodels?\b'
    window: 8
    case_sensitive: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	patterns, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("LoadRules() returned %d patterns, want 2", len(patterns))
	}
	if !patterns[0].Matches("new Machine Learning methods") {
		t.Error("loaded phrase rule did not match")
	}
	if !patterns[1].Matches("an AI model was used") {
		t.Error("loaded context rule did not match")
	}
}

func TestLoadRulesErrors(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRules() on missing file: error = nil, want error")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(empty); err == nil {
		t.Error("LoadRules() on empty rules: error = nil, want error")
	}
}
