package model

import (
	"errors"
	"testing"
)

func validCard() Card {
	return Card{
		Prompt:     "What is a goroutine?",
		Answer:     "A lightweight thread managed by the Go runtime.",
		Difficulty: DifficultyMedium,
		Position:   15,
		Total:      45,
	}
}

func TestCard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Card)
		wantErr error
	}{
		{"valid", func(*Card) {}, nil},
		{"first position", func(c *Card) { c.Position = 1 }, nil},
		{"last position", func(c *Card) { c.Position = c.Total }, nil},
		{"single card deck", func(c *Card) { c.Position, c.Total = 1, 1 }, nil},
		{"empty prompt", func(c *Card) { c.Prompt = "  " }, ErrEmptyPrompt},
		{"bad difficulty", func(c *Card) { c.Difficulty = "expert" }, ErrInvalidDifficulty},
		{"zero total", func(c *Card) { c.Total, c.Position = 0, 0 }, ErrInvalidTotal},
		{"zero position", func(c *Card) { c.Position = 0 }, ErrInvalidPosition},
		{"position past total", func(c *Card) { c.Position = 46 }, ErrInvalidPosition},
	}

	for _, test := range tests {
		card := validCard()
		test.mutate(&card)
		err := card.Validate()
		if test.wantErr == nil && err != nil {
			t.Errorf("%s: Validate() unexpected error: %v", test.name, err)
		}
		if test.wantErr != nil && !errors.Is(err, test.wantErr) {
			t.Errorf("%s: Validate() = %v, expected %v", test.name, err, test.wantErr)
		}
	}
}

func TestCard_WithPosition(t *testing.T) {
	card := validCard()
	moved := card.WithPosition(3)

	if moved.Position != 3 {
		t.Errorf("WithPosition(3).Position = %d, expected 3", moved.Position)
	}
	if card.Position != 15 {
		t.Errorf("original card mutated: Position = %d, expected 15", card.Position)
	}
	if moved.Prompt != card.Prompt || moved.Total != card.Total {
		t.Error("WithPosition should keep card content")
	}
}

func TestCard_CounterText(t *testing.T) {
	if got := validCard().CounterText(); got != "15 / 45" {
		t.Errorf("CounterText() = %q, expected %q", got, "15 / 45")
	}
}

func TestProfile_Initials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Tristan Smith", "TS"},
		{"ada", "A"},
		{"Grace Brewster Murray Hopper", "GB"},
		{"", "?"},
	}

	for _, test := range tests {
		result := Profile{Name: test.name}.Initials()
		if result != test.expected {
			t.Errorf("Initials() for %q = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestProgress_DailyPercent(t *testing.T) {
	tests := []struct {
		progress float64
		expected int
	}{
		{-0.5, 0},
		{0, 0},
		{0.68, 68},
		{1, 100},
		{1.7, 100},
	}

	for _, test := range tests {
		result := Progress{DailyProgress: test.progress}.DailyPercent()
		if result != test.expected {
			t.Errorf("DailyPercent() with %.2f = %d, expected %d", test.progress, result, test.expected)
		}
	}
}
