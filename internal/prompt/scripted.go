package prompt

import (
	"fmt"
	"io"
)

// Scripted is a Prompter that replays canned answers in order, for tests and
// non-interactive runs. Each prompt consumes the next answer of its kind; a
// prompt with no answer left fails instead of blocking.
type Scripted struct {
	Confirms   []bool  // Answers for Confirm, in order
	Choices    []int   // Answers for Choice, in order
	Selections [][]int // Answers for MultiSelect, in order

	// Output receives Print messages. Nil discards them.
	Output io.Writer
}

// Print writes the message to Output, if set.
func (s *Scripted) Print(message string) {
	if s.Output == nil {
		return
	}
	fmt.Fprintln(s.Output, message)
}

// Confirm replays the next canned confirmation answer.
func (s *Scripted) Confirm(title, description string) (bool, error) {
	if len(s.Confirms) == 0 {
		return false, fmt.Errorf("no scripted answer for confirm %q", title)
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}

// Choice replays the next canned selection index.
func (s *Scripted) Choice(prompt string, options []string) (int, error) {
	if len(s.Choices) == 0 {
		return 0, fmt.Errorf("no scripted answer for choice %q", prompt)
	}
	answer := s.Choices[0]
	s.Choices = s.Choices[1:]
	if answer < 0 || answer >= len(options) {
		return 0, fmt.Errorf("scripted choice %d out of range for %d options", answer, len(options))
	}
	return answer, nil
}

// MultiSelect replays the next canned index selection.
func (s *Scripted) MultiSelect(prompt string, options []string) ([]int, error) {
	if len(s.Selections) == 0 {
		return nil, fmt.Errorf("no scripted answer for multiselect %q", prompt)
	}
	answer := s.Selections[0]
	s.Selections = s.Selections[1:]
	for _, i := range answer {
		if i < 0 || i >= len(options) {
			return nil, fmt.Errorf("scripted selection %d out of range for %d options", i, len(options))
		}
	}
	return answer, nil
}
