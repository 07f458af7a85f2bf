package types

import "fmt"

// TerminalLabel is the text pointed to by the final step of every
// sequence.
const TerminalLabel = "The End"

// ClueStep is one emitted step of a group's hunt: the clue text read at
// the previous location, the instruction telling the organizer where to
// hide it, and the numbered label of the clue it leads to.
type ClueStep struct {
	StepIndex         int    `json:"step_index"`
	Question          string `json:"question"`
	HidingInstruction string `json:"hiding_instruction"`
	NextClueLabel     string `json:"next_clue_label"`
}

// GroupSequence is one group's complete ordered hunt.
type GroupSequence []ClueStep

// NewClueStep builds the emitted step for clue c at 1-based position
// index. The next clue's label is numbered one past this step, so the
// organizer can match hidden slips to locations by number alone.
func NewClueStep(index int, c Clue, nextQuestion string) ClueStep {
	return ClueStep{
		StepIndex:         index,
		Question:          c.Question,
		HidingInstruction: fmt.Sprintf("Hide this at/with: %s", c.Answer),
		NextClueLabel:     fmt.Sprintf("%d. %s", index+1, nextQuestion),
	}
}
