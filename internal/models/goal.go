package models

import (
	"fmt"
	"strings"
)

// Goal pairs a study goal with the user's answer to it
type Goal struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// AnswerGoalRequest represents a request to answer one goal by index
type AnswerGoalRequest struct {
	Answer string `json:"answer"`
}

// Completed reports whether the goal has a non-blank answer
func (g Goal) Completed() bool {
	return strings.TrimSpace(g.Answer) != ""
}

// PairGoals zips parallel prompt/answer arrays into Goal pairs.
// Missing answers become empty strings; answers past the last prompt are dropped.
func PairGoals(prompts, answers []string) []Goal {
	if len(prompts) == 0 {
		return nil
	}
	goals := make([]Goal, len(prompts))
	for i, prompt := range prompts {
		goals[i].Prompt = prompt
		if i < len(answers) {
			goals[i].Answer = answers[i]
		}
	}
	return goals
}

// SplitGoals converts Goal pairs back into the parallel arrays the storage
// schema uses. Both returned slices have the same length.
func SplitGoals(goals []Goal) (prompts, answers []string) {
	prompts = make([]string, len(goals))
	answers = make([]string, len(goals))
	for i, g := range goals {
		prompts[i] = g.Prompt
		answers[i] = g.Answer
	}
	return prompts, answers
}

// SetGoalAnswer returns a copy of goals with the answer at index replaced
func SetGoalAnswer(goals []Goal, index int, answer string) ([]Goal, error) {
	if index < 0 || index >= len(goals) {
		return nil, fmt.Errorf("goal index %d out of range", index)
	}
	updated := make([]Goal, len(goals))
	copy(updated, goals)
	updated[index].Answer = answer
	return updated, nil
}

// CountCompletedGoals counts goals with non-blank answers
func CountCompletedGoals(goals []Goal) int {
	count := 0
	for _, g := range goals {
		if g.Completed() {
			count++
		}
	}
	return count
}
