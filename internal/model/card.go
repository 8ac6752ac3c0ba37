package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for cards and seed values
var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrEmptyPrompt       = errors.New("card prompt cannot be empty")
	ErrInvalidTotal      = errors.New("card total must be at least 1")
	ErrInvalidPosition   = errors.New("card position must be within 1..total")
)

// Card represents one question/answer unit and where it sits in the deck.
// Content is immutable; only Position changes as the learner moves around.
type Card struct {
	Prompt     string
	Answer     string
	Difficulty Difficulty
	Position   int // 1-based
	Total      int
}

// Validate checks the card content and position bounds
func (c Card) Validate() error {
	if strings.TrimSpace(c.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if !c.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, c.Difficulty)
	}
	if c.Total < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotal, c.Total)
	}
	if c.Position < 1 || c.Position > c.Total {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPosition, c.Position, c.Total)
	}
	return nil
}

// WithPosition returns a copy of the card at the given position
func (c Card) WithPosition(position int) Card {
	c.Position = position
	return c
}

// CounterText returns the position counter, e.g. "15 / 45"
func (c Card) CounterText() string {
	return fmt.Sprintf("%d / %d", c.Position, c.Total)
}

// Stats are the headline numbers shown in the progress section
type Stats struct {
	CardsMastered int
	Accuracy      int // percent
	Sessions      int
	Level         int
}

// Profile describes the learner shown in the profile section
type Profile struct {
	Name         string
	Title        string
	QuestGoal    string
	SessionTitle string
	SessionTopic string
}

// Initials returns up to two upper-case initials for the avatar
func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Progress holds streak and daily-goal values
type Progress struct {
	StreakDays    int
	XP            int
	DailyProgress float64 // 0.0 to 1.0
}

// DailyPercent returns daily progress as a whole percentage clamped to 0..100
func (p Progress) DailyPercent() int {
	switch {
	case p.DailyProgress <= 0:
		return 0
	case p.DailyProgress >= 1:
		return 100
	}
	return int(p.DailyProgress * 100)
}

// Seed is the static bootstrap data the view-model is created from
type Seed struct {
	Profile  Profile
	Progress Progress
	Stats    Stats
	Card     Card
}
