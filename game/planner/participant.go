package planner

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// legacyIDKey is accepted as the identifier when a roster record has no id
const legacyIDKey = "github_login"

// Participant is one entry of the roster handed over by the host.
// ID must be unique across the roster; everything else is carried along untouched.
type Participant struct {
	ID         string         `yaml:"id" json:"id"`
	Attributes map[string]any `yaml:",inline" json:"attributes,omitempty"`
}

// LoadRoster decodes a YAML or JSON list of participants
func LoadRoster(r io.Reader) ([]Participant, error) {
	var participants []Participant
	if err := yaml.NewDecoder(r).Decode(&participants); err != nil {
		if err == io.EOF {
			return []Participant{}, nil
		}
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}

	for i := range participants {
		p := &participants[i]
		if p.ID != "" {
			continue
		}
		if login, ok := p.Attributes[legacyIDKey].(string); ok {
			p.ID = login
		}
	}

	return participants, nil
}

// LoadRosterFile reads a roster from disk
func LoadRosterFile(path string) ([]Participant, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer file.Close()

	return LoadRoster(file)
}
