package widget

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quiz-widget/internal/domain"
)

func sampleSet() domain.QuestionSet {
	return domain.QuestionSet{
		ID: "set-1",
		Questions: []domain.Question{
			{ID: "q1", Prompt: "2+2?", Options: []string{"3", "4", "5"}, Correct: "4"},
			{ID: "q2", Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, Correct: "Paris"},
		},
	}
}

func TestWidgetFlow(t *testing.T) {
	w := New(sampleSet())

	v := w.View()
	if v.Mode != ModeQuestion || v.Number != 1 || v.Action != ActionNext {
		t.Fatalf("unexpected initial view %+v", v)
	}

	if err := w.Select("4"); err != nil {
		t.Fatalf("select: %v", err)
	}
	v = w.Submit()
	if v.Mode != ModeQuestion || v.Number != 2 || v.Score != 1 || v.Action != ActionSubmit {
		t.Fatalf("unexpected view after first submit %+v", v)
	}
	if v.Selected != "" || w.Selected() != "" {
		t.Fatalf("selection should reset after submit")
	}

	if err := w.Select("Rome"); err != nil {
		t.Fatalf("select: %v", err)
	}
	v = w.Submit()
	if v.Mode != ModeCompleted || v.Score != 1 || v.Total != 2 {
		t.Fatalf("unexpected completed view %+v", v)
	}
}

func TestWidgetSubmitWithoutSelectionScoresZero(t *testing.T) {
	w := New(sampleSet())
	w.Submit()
	v := w.Submit()
	if v.Mode != ModeCompleted || v.Score != 0 {
		t.Fatalf("expected completed with 0, got %+v", v)
	}
}

func TestWidgetSelectErrors(t *testing.T) {
	w := New(sampleSet())
	if err := w.Select("6"); !errors.Is(err, domain.ErrOptionNotFound) {
		t.Fatalf("expected ErrOptionNotFound, got %v", err)
	}
	w.Submit()
	w.Submit()
	if err := w.Select("Paris"); !errors.Is(err, domain.ErrQuizFinished) {
		t.Fatalf("expected ErrQuizFinished, got %v", err)
	}
	before := w.View()
	after := w.Submit()
	if before.Score != after.Score || after.Mode != ModeCompleted {
		t.Fatalf("submit after finish changed the view: %+v -> %+v", before, after)
	}
}

func TestWidgetEmptySet(t *testing.T) {
	w := New(domain.QuestionSet{})
	if v := w.View(); v.Mode != ModeNoQuestions {
		t.Fatalf("expected no questions view, got %+v", v)
	}
	if v := w.Submit(); v.Mode != ModeNoQuestions {
		t.Fatalf("submit on empty set changed view to %s", v.Mode)
	}
}

func TestWidgetOnChange(t *testing.T) {
	w := New(sampleSet())
	var views []View
	w.OnChange(func(v View) { views = append(views, v) })

	_ = w.Select("3")
	w.Submit()
	if len(views) != 2 {
		t.Fatalf("expected 2 change notifications, got %d", len(views))
	}
	if !views[0].Options[0].Selected {
		t.Fatalf("expected first option marked selected, got %+v", views[0].Options)
	}
	if views[1].Number != 2 {
		t.Fatalf("expected second view at question 2, got %+v", views[1])
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		view View
		want []string
	}{
		{
			name: "no questions",
			view: View{Mode: ModeNoQuestions},
			want: []string{"Quiz\n", "No questions available."},
		},
		{
			name: "completed",
			view: View{Mode: ModeCompleted, Score: 1, Total: 2},
			want: []string{"Quiz Completed", "Final Score: 1 out of 2"},
		},
		{
			name: "question without selection",
			view: New(sampleSet()).View(),
			want: []string{"Quiz Question:\n", "(1 of 2) 2+2?", "Answer Options:", "  2) 4", "No answer selected", "[Next Question]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.view); err != nil {
				t.Fatalf("render: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("expected %q in output:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRenderMarksSelection(t *testing.T) {
	w := New(sampleSet())
	_ = w.Select("4")
	var buf bytes.Buffer
	if err := Render(&buf, w.View()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "* 2) 4") {
		t.Fatalf("expected selected marker, got:\n%s", buf.String())
	}
}
