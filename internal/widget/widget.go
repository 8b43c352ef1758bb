// Package widget drives a quiz.State the way an interactive view does: the
// user picks an option, then submits, and the view is derived again from the
// state after every change.
package widget

import (
	"quiz-widget/internal/domain"
	"quiz-widget/internal/quiz"
)

// Mode selects which of the three views is shown.
type Mode string

const (
	ModeNoQuestions Mode = "no_questions"
	ModeQuestion    Mode = "question"
	ModeCompleted   Mode = "completed"
)

// Button labels.
const (
	ActionNext   = "Next Question"
	ActionSubmit = "Submit"
)

// Option is one rendered answer option.
type Option struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// View is everything a renderer needs for one frame.
type View struct {
	Mode     Mode     `json:"mode"`
	Title    string   `json:"title,omitempty"`
	Prompt   string   `json:"prompt,omitempty"`
	Options  []Option `json:"options,omitempty"`
	Selected string   `json:"selected,omitempty"`
	Number   int      `json:"number,omitempty"` // 1-based question number
	Total    int      `json:"total"`
	Score    int      `json:"score"`
	Action   string   `json:"action,omitempty"`
}

// Widget pairs the quiz state with the current, not yet submitted, selection.
type Widget struct {
	title    string
	state    *quiz.State
	selected string
	onChange func(View)
}

// New creates a widget over a fresh session of set.
func New(set domain.QuestionSet) *Widget {
	return &Widget{title: set.Title, state: quiz.New(set)}
}

// OnChange registers fn to be called with the new view after each mutation.
func (w *Widget) OnChange(fn func(View)) {
	w.onChange = fn
}

// State exposes the underlying quiz state for read-only queries.
func (w *Widget) State() *quiz.State {
	return w.state
}

// Selected returns the current selection, empty when nothing is chosen.
func (w *Widget) Selected() string {
	return w.selected
}

// Select marks option as the user's choice for the current question.
func (w *Widget) Select(option string) error {
	q, ok := w.state.CurrentQuestion()
	if !ok {
		return domain.ErrQuizFinished
	}
	if !q.HasOption(option) {
		return domain.ErrOptionNotFound
	}
	w.selected = option
	w.changed()
	return nil
}

// Submit records the selection for the current question and moves on. After
// the last question the state becomes finished. Submitting with nothing
// selected records an empty, incorrect answer. Submitting a finished quiz
// leaves it unchanged.
func (w *Widget) Submit() View {
	if w.state.Finished() {
		return w.View()
	}
	w.state.AnswerQuestion(w.selected)
	w.state.NextQuestion()
	w.selected = ""
	return w.changed()
}

// View derives the current frame from the state.
func (w *Widget) View() View {
	v := View{
		Title: w.title,
		Total: w.state.TotalQuestions(),
		Score: w.state.Score(),
	}
	q, ok := w.state.CurrentQuestion()
	switch {
	case !ok && v.Total == 0:
		v.Mode = ModeNoQuestions
	case !ok:
		v.Mode = ModeCompleted
	default:
		v.Mode = ModeQuestion
		v.Prompt = q.Prompt
		v.Selected = w.selected
		v.Number = w.state.Position() + 1
		v.Options = make([]Option, len(q.Options))
		for i, opt := range q.Options {
			v.Options[i] = Option{Text: opt, Selected: opt == w.selected}
		}
		v.Action = ActionSubmit
		if w.state.HasNextQuestion() {
			v.Action = ActionNext
		}
	}
	return v
}

func (w *Widget) changed() View {
	v := w.View()
	if w.onChange != nil {
		w.onChange(v)
	}
	return v
}
