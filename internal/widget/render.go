package widget

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes v as plain text.
func Render(out io.Writer, v View) error {
	w := bufio.NewWriter(out)
	switch v.Mode {
	case ModeNoQuestions:
		fmt.Fprintln(w, heading(v, "Quiz"))
		fmt.Fprintln(w, "No questions available.")
	case ModeCompleted:
		fmt.Fprintln(w, heading(v, "Quiz Completed"))
		fmt.Fprintf(w, "Final Score: %d out of %d\n", v.Score, v.Total)
	default:
		fmt.Fprintln(w, heading(v, "Quiz Question:"))
		fmt.Fprintf(w, "(%d of %d) %s\n", v.Number, v.Total, v.Prompt)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Answer Options:")
		for i, opt := range v.Options {
			marker := " "
			if opt.Selected {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %d) %s\n", marker, i+1, opt.Text)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Selected Answer:")
		if v.Selected == "" {
			fmt.Fprintln(w, "No answer selected")
		} else {
			fmt.Fprintln(w, v.Selected)
		}
		fmt.Fprintf(w, "[%s]\n", v.Action)
	}
	return w.Flush()
}

func heading(v View, text string) string {
	if v.Title == "" {
		return text
	}
	return v.Title + " - " + text
}
