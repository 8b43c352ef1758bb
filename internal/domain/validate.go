package domain

import "fmt"

// Validate checks a single question: non-empty prompt and options, unique
// options, and a correct answer taken from the options.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("%w: no options", ErrInvalidQuestion)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("%w: empty option", ErrInvalidQuestion)
		}
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("%w: duplicate option %q", ErrInvalidQuestion, opt)
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[q.Correct]; !ok {
		return fmt.Errorf("%w: correct answer %q is not an option", ErrInvalidQuestion, q.Correct)
	}
	return nil
}

// Validate checks every question of the set. An empty set is valid.
func (s QuestionSet) Validate() error {
	for i, q := range s.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
