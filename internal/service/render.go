package service

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/capitals-quiz-generator/internal/domain/entities"
)

// FormatQuestion renders one question as a numbered prompt followed by
// the labeled option lines and a trailing blank line.
func FormatQuestion(q entities.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. What is the capital of %s?\n", q.Number, q.State)
	for _, option := range q.Options {
		fmt.Fprintf(&b, "    %s. %s\n", option.Label, option.Text)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatAnswerKey renders one answer-key line.
func FormatAnswerKey(e entities.AnswerKeyEntry) string {
	return fmt.Sprintf("%d. %s\n", e.Number, e.Label)
}
