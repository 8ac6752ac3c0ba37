package model

import (
	"fmt"
	"strings"
)

// Response represents the learner's self-assessment of a revealed answer
type Response string

const (
	// ResponseIncorrect means the learner got the card wrong
	ResponseIncorrect Response = "incorrect"

	// ResponseNeedsReview means the learner was unsure and wants to see it again
	ResponseNeedsReview Response = "needs-review"

	// ResponseCorrect means the learner recalled the answer
	ResponseCorrect Response = "correct"
)

// ResponseNone is the zero value and means no response is marked
const ResponseNone Response = ""

// Responses returns the valid responses in button order
func Responses() []Response {
	return []Response{ResponseIncorrect, ResponseNeedsReview, ResponseCorrect}
}

// String returns the string representation of Response
func (r Response) String() string {
	return string(r)
}

// IsValid returns true if r is one of the three enumerated responses
func (r Response) IsValid() bool {
	return r == ResponseIncorrect || r == ResponseNeedsReview || r == ResponseCorrect
}

// IsMarked returns true if a response has been recorded
func (r Response) IsMarked() bool {
	return r != ResponseNone
}

// Difficulty represents how hard a card is rated
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a case-insensitive name into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// String returns the string representation of Difficulty
func (d Difficulty) String() string {
	return string(d)
}

// IsValid returns true if d is easy, medium or hard
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Label returns the badge text shown on the card
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}
