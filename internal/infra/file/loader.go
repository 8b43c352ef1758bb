// Package file reads question sets from YAML (or JSON) documents of the form
//
//	sets:
//	  - id: arithmetic
//	    title: Warm-up
//	    questions:
//	      - prompt: "2+2?"
//	        options: ["3", "4", "5"]
//	        correct: "4"
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"quiz-widget/internal/domain"
)

type document struct {
	Sets []domain.QuestionSet `yaml:"sets"`
}

// Parse decodes and validates every set in r. Unknown fields are rejected,
// set IDs must be unique and questions without an ID get a positional one.
func Parse(r io.Reader) ([]domain.QuestionSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode question sets: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Sets))
	for i := range doc.Sets {
		set := &doc.Sets[i]
		if set.ID == "" {
			return nil, fmt.Errorf("set %d: %w: missing id", i+1, domain.ErrInvalidQuestion)
		}
		if _, dup := seen[set.ID]; dup {
			return nil, fmt.Errorf("set %s: duplicate id", set.ID)
		}
		seen[set.ID] = struct{}{}

		for j := range set.Questions {
			if set.Questions[j].ID == "" {
				set.Questions[j].ID = fmt.Sprintf("q%d", j+1)
			}
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("set %s: %w", set.ID, err)
		}
	}
	return doc.Sets, nil
}

// LoadFile parses the question sets stored at path.
func LoadFile(path string) ([]domain.QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// Loader serves question sets from a file, re-reading it on every load so
// edits are picked up once a cache in front of it expires.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) LoadQuestionSet(_ context.Context, setID string) (domain.QuestionSet, error) {
	sets, err := LoadFile(l.path)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	for _, set := range sets {
		if set.ID == setID {
			return set, nil
		}
	}
	return domain.QuestionSet{}, fmt.Errorf("%w: %s", domain.ErrQuestionSetNotFound, setID)
}
