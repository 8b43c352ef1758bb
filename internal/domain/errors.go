package domain

import "errors"

var (
	// ErrQuestionSetNotFound indicates the question set could not be loaded.
	ErrQuestionSetNotFound = errors.New("question set not found")
	// ErrInvalidQuestion is returned when a question breaks the set invariants.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrSessionNotFound is returned when a quiz session has not been started or was ended.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrOptionNotFound indicates a selection that is not an option of the current question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrQuizFinished is returned when the presentation layer tries to select after completion.
	ErrQuizFinished = errors.New("quiz already finished")
)
