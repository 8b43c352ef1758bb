package domain

import "slices"

// Question models a multiple-choice question. The correct answer is one of Options.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options" yaml:"options"`
	Correct string   `json:"correct" yaml:"correct"`
}

// Clone returns a copy that shares no memory with q.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

// QuestionSet is the ordered, fixed list of questions for a session.
type QuestionSet struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Answer is one entry of the per-session answer log.
type Answer struct {
	Index      int    `json:"index"`
	QuestionID string `json:"questionId,omitempty"`
	Selected   string `json:"selected"`
	Correct    bool   `json:"correct"`
}

// Summary is the completion view of a session.
type Summary struct {
	Score    int      `json:"score"`
	Total    int      `json:"total"`
	Answered int      `json:"answered"`
	Answers  []Answer `json:"answers"`
}
