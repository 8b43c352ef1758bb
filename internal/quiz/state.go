// Package quiz holds the quiz progression state: the fixed question set, the
// current position, the recorded answers and the derived score.
//
// A State is owned by a single session and is not safe for concurrent use.
package quiz

import (
	"slices"

	"quiz-widget/internal/domain"
)

// State tracks one attempt over a question set. Position runs from 0 to
// len(questions); position == len(questions) means the quiz is finished.
type State struct {
	questions []domain.Question
	position  int
	score     int
	answered  []bool
	answers   []domain.Answer
}

// New starts a fresh session over set. The questions are copied once and
// never mutated afterwards.
func New(set domain.QuestionSet) *State {
	questions := make([]domain.Question, len(set.Questions))
	for i, q := range set.Questions {
		questions[i] = q.Clone()
	}
	return &State{
		questions: questions,
		answered:  make([]bool, len(questions)),
	}
}

// CurrentQuestion returns the question at the current position. It reports
// false once the quiz is finished or when the set is empty.
func (s *State) CurrentQuestion() (domain.Question, bool) {
	if s.position >= len(s.questions) {
		return domain.Question{}, false
	}
	return s.questions[s.position].Clone(), true
}

// HasNextQuestion reports whether advancing keeps the quiz running.
func (s *State) HasNextQuestion() bool {
	return s.position+1 < len(s.questions)
}

// AnswerQuestion records selected for the current question and scores it on
// exact match. An empty selection never scores. It is a no-op when the quiz
// is finished or the current question has already been answered.
func (s *State) AnswerQuestion(selected string) {
	if s.position >= len(s.questions) || s.answered[s.position] {
		return
	}
	q := s.questions[s.position]
	correct := selected != "" && selected == q.Correct
	if correct {
		s.score++
	}
	s.answered[s.position] = true
	s.answers = append(s.answers, domain.Answer{
		Index:      s.position,
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    correct,
	})
}

// NextQuestion advances the position by one, stopping at the finished sentinel.
func (s *State) NextQuestion() {
	if s.position < len(s.questions) {
		s.position++
	}
}

// Score returns the number of correct answers so far.
func (s *State) Score() int {
	return s.score
}

// TotalQuestions returns the size of the question set.
func (s *State) TotalQuestions() int {
	return len(s.questions)
}

// Position returns the zero-based index of the current question.
func (s *State) Position() int {
	return s.position
}

// Finished reports whether the position has reached the end of the set.
// An empty set is finished from the start.
func (s *State) Finished() bool {
	return s.position >= len(s.questions)
}

// Answered reports whether the current question already has a recorded answer.
func (s *State) Answered() bool {
	return s.position < len(s.questions) && s.answered[s.position]
}

// Answers returns the answer log in the order answers were recorded.
func (s *State) Answers() []domain.Answer {
	return slices.Clone(s.answers)
}

// Summary returns the completion figures for the session.
func (s *State) Summary() domain.Summary {
	return domain.Summary{
		Score:    s.score,
		Total:    len(s.questions),
		Answered: len(s.answers),
		Answers:  s.Answers(),
	}
}
