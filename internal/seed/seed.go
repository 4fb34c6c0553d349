// Package seed holds the bundled knowledge-base entries loaded at startup
// and through the chatbot seed endpoint.
package seed

import (
	"embed"

	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"gopkg.in/yaml.v2"
)

//go:embed knowledge.yaml
var seedFS embed.FS

type entryYAML struct {
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
}

// KnowledgeEntries parses the embedded seed file.
func KnowledgeEntries() ([]knowledge.Entry, error) {
	raw, err := seedFS.ReadFile("knowledge.yaml")
	if err != nil {
		return nil, err
	}

	var parsed []entryYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	entries := make([]knowledge.Entry, 0, len(parsed))
	for _, e := range parsed {
		entries = append(entries, knowledge.Entry{
			Keywords: e.Keywords,
			Answer:   e.Answer,
			Category: e.Category,
		})
	}
	return entries, nil
}
