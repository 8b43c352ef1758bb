package postgres

import (
	"context"
	"errors"
	"testing"

	"quiz-widget/internal/domain"
)

func TestSeederValidatesBeforeWriting(t *testing.T) {
	seeder := NewSeeder(nil)

	err := seeder.Upsert(context.Background(), domain.QuestionSet{
		ID:        "bad",
		Questions: []domain.Question{{Prompt: "p", Options: []string{"a"}, Correct: "b"}},
	})
	if !errors.Is(err, domain.ErrInvalidQuestion) {
		t.Fatalf("expected invalid question, got %v", err)
	}

	if err := seeder.Upsert(context.Background(), domain.QuestionSet{}); !errors.Is(err, domain.ErrInvalidQuestion) {
		t.Fatalf("expected missing id error, got %v", err)
	}
}
