package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quiz-widget/internal/app"
	"quiz-widget/internal/domain"
	"quiz-widget/internal/infra/memory"
)

func TestPlayScenario(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("2\n\n2\ns\n")

	if err := play(context.Background(), newPlayService(), nil, "set-1", in, &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	for _, want := range []string{"2+2?", "* 2) 4", "[Next Question]", "Capital of France?", "[Submit]", "Quiz Completed", "Final Score: 1 out of 2"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestPlaySubmitWithoutSelecting(t *testing.T) {
	var out bytes.Buffer
	if err := play(context.Background(), newPlayService(), nil, "set-1", strings.NewReader("\n\n"), &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "Final Score: 0 out of 2") {
		t.Fatalf("expected zero score:\n%s", out.String())
	}
}

func TestPlayEmptySet(t *testing.T) {
	var out bytes.Buffer
	if err := play(context.Background(), newPlayService(), nil, "empty", strings.NewReader(""), &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "No questions available.") {
		t.Fatalf("expected empty message:\n%s", out.String())
	}
}

func TestPlayRejectsBadInputAndQuits(t *testing.T) {
	var out bytes.Buffer
	if err := play(context.Background(), newPlayService(), nil, "set-1", strings.NewReader("9\nabc\nq\n"), &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if strings.Count(out.String(), "choose 1-3") != 2 {
		t.Fatalf("expected two hints:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Quiz Completed") {
		t.Fatalf("quit should not complete the quiz")
	}
}

func newPlayService() *app.QuizService {
	sets := memory.NewQuestionSetRepository(memory.NewStaticLoader(map[string]domain.QuestionSet{
		"set-1": {
			ID: "set-1",
			Questions: []domain.Question{
				{ID: "q1", Prompt: "2+2?", Options: []string{"3", "4", "5"}, Correct: "4"},
				{ID: "q2", Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, Correct: "Paris"},
			},
		},
		"empty": {ID: "empty"},
	}), time.Minute)
	return app.NewQuizService(memory.NewSessionStore(), sets, nil)
}

func TestRunPlayFromSetsFile(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("REDIS_ADDR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "sets.yaml")
	doc := `
sets:
  - id: colours
    title: Colours
    questions:
      - prompt: "Colour of the sky?"
        options: ["Green", "Blue"]
        correct: "Blue"
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write sets: %v", err)
	}

	var out bytes.Buffer
	err := runPlay(context.Background(), filepath.Join(dir, "missing-config.yaml"), path, "colours", strings.NewReader("2\n\n"), &out)
	if err != nil {
		t.Fatalf("run play: %v", err)
	}
	for _, want := range []string{"Colours - Quiz Question:", "Colour of the sky?", "Colours - Quiz Completed", "Final Score: 1 out of 1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunPlayUnknownSetInFile(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("REDIS_ADDR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "sets.yaml")
	if err := os.WriteFile(path, []byte("sets: []\n"), 0o600); err != nil {
		t.Fatalf("write sets: %v", err)
	}

	err := runPlay(context.Background(), filepath.Join(dir, "missing-config.yaml"), path, "nope", strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, domain.ErrQuestionSetNotFound) {
		t.Fatalf("expected set not found, got %v", err)
	}
}
