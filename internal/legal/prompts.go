package legal

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const (
	defaultAdviceMaxTokens   = 700
	defaultDocumentMaxTokens = 900
)

//go:embed prompts/legal.yaml
var defaultPromptsYAML []byte

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a provider-agnostic chat message.
type Message struct {
	Role    Role
	Content string
}

type PromptSpec struct {
	System   string     `yaml:"system"`
	Advice   ModePrompt `yaml:"advice"`
	Document ModePrompt `yaml:"document"`
}

type ModePrompt struct {
	Template  string `yaml:"template"`
	MaxTokens int    `yaml:"max_tokens"`
}

type modePrompt struct {
	tmpl      *template.Template
	maxTokens int
}

// Prompts renders the two-message conversation sent for each mode.
type Prompts struct {
	system   string
	advice   modePrompt
	document modePrompt
}

// LoadPrompts reads a YAML prompt spec from path. An empty path selects the
// prompts embedded in the binary.
func LoadPrompts(path string) (*Prompts, error) {
	if strings.TrimSpace(path) == "" {
		return ParsePrompts(defaultPromptsYAML)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("legal: read prompts %q: %w", path, err)
	}
	return ParsePrompts(b)
}

func ParsePrompts(b []byte) (*Prompts, error) {
	var spec PromptSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("legal: parse prompts: %w", err)
	}
	if strings.TrimSpace(spec.System) == "" {
		return nil, fmt.Errorf("legal: prompts: system prompt is empty")
	}
	advice, err := compileModePrompt("advice", spec.Advice, defaultAdviceMaxTokens)
	if err != nil {
		return nil, err
	}
	document, err := compileModePrompt("document", spec.Document, defaultDocumentMaxTokens)
	if err != nil {
		return nil, err
	}
	return &Prompts{system: spec.System, advice: advice, document: document}, nil
}

func compileModePrompt(name string, mp ModePrompt, defMaxTokens int) (modePrompt, error) {
	if strings.TrimSpace(mp.Template) == "" {
		return modePrompt{}, fmt.Errorf("legal: prompts: %s template is empty", name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(mp.Template)
	if err != nil {
		return modePrompt{}, fmt.Errorf("legal: prompts: parse %s template: %w", name, err)
	}
	maxTokens := mp.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defMaxTokens
	}
	return modePrompt{tmpl: tmpl, maxTokens: maxTokens}, nil
}

// Build returns the system and user messages for req together with the
// output token cap for its mode. req is assumed to be validated.
func (p *Prompts) Build(req Request) ([]Message, int, error) {
	mp := p.advice
	if req.Mode == ModeDocument {
		mp = p.document
	}
	var b strings.Builder
	if err := mp.tmpl.Execute(&b, req); err != nil {
		return nil, 0, fmt.Errorf("legal: render %s prompt: %w", req.Mode, err)
	}
	return []Message{
		{Role: RoleSystem, Content: p.system},
		{Role: RoleUser, Content: b.String()},
	}, mp.maxTokens, nil
}
