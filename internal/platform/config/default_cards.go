package config

import (
	"fmt"
	"os"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type defaultCardsFile struct {
	Cards []domain.CardTemplate `yaml:"cards"`
}

// LoadDefaultCards reads the starter cards from path. An empty path yields
// the built-in templates.
func LoadDefaultCards(path string) ([]domain.CardTemplate, error) {
	if path == "" {
		return domain.DefaultCardTemplates(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read default cards file: %w", err)
	}
	return ParseDefaultCards(data)
}

// ParseDefaultCards decodes a YAML document of the form
//
//	cards:
//	  - name: Visa
//	    closing_day: 25
func ParseDefaultCards(data []byte) ([]domain.CardTemplate, error) {
	var file defaultCardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse default cards: %w", err)
	}
	if len(file.Cards) == 0 {
		return nil, fmt.Errorf("default cards file lists no cards")
	}

	seen := make(map[string]bool, len(file.Cards))
	for i, card := range file.Cards {
		name, err := domain.NormalizeCardName(card.Name)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		if err := domain.ValidateClosingDay(card.ClosingDay); err != nil {
			return nil, fmt.Errorf("card %q: %w", name, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("card %q listed twice", name)
		}
		seen[name] = true
		file.Cards[i].Name = name
	}
	return file.Cards, nil
}
