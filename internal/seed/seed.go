// Package seed loads the static data the study screen starts from: the
// learner profile, progress numbers and the current card.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ytget/flashforge/internal/model"
)

//go:embed default.yaml
var defaultSeed []byte

var ErrInvalidSeed = errors.New("invalid seed")

var validate = validator.New()

type file struct {
	Profile  profile  `yaml:"profile" validate:"required"`
	Progress progress `yaml:"progress"`
	Stats    stats    `yaml:"stats"`
	Card     card     `yaml:"card" validate:"required"`
}

type profile struct {
	Name         string `yaml:"name" validate:"required"`
	Title        string `yaml:"title"`
	QuestGoal    string `yaml:"quest_goal"`
	SessionTitle string `yaml:"session_title"`
	SessionTopic string `yaml:"session_topic"`
}

type progress struct {
	StreakDays    int     `yaml:"streak_days" validate:"gte=0"`
	XP            int     `yaml:"xp" validate:"gte=0"`
	DailyProgress float64 `yaml:"daily_progress" validate:"gte=0,lte=1"`
}

type stats struct {
	CardsMastered int `yaml:"cards_mastered" validate:"gte=0"`
	Accuracy      int `yaml:"accuracy" validate:"gte=0,lte=100"`
	Sessions      int `yaml:"sessions" validate:"gte=0"`
	Level         int `yaml:"level" validate:"gte=0"`
}

type card struct {
	Prompt     string `yaml:"prompt" validate:"required"`
	Answer     string `yaml:"answer"`
	Difficulty string `yaml:"difficulty" validate:"required"`
	Position   int    `yaml:"position" validate:"required,gte=1,ltefield=Total"`
	Total      int    `yaml:"total" validate:"required,gte=1"`
}

// Default returns the embedded seed
func Default() model.Seed {
	s, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return s
}

// Load reads a seed from path. An empty path returns the embedded default.
func Load(path string) (model.Seed, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Seed{}, fmt.Errorf("failed to read seed: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return model.Seed{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("loaded seed from %s: %s (%s)", path, s.Profile.Name, s.Card.CounterText())
	return s, nil
}

// Parse decodes and validates a YAML seed document
func Parse(data []byte) (model.Seed, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if err := validate.Struct(f); err != nil {
		return model.Seed{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	difficulty, err := model.ParseDifficulty(f.Card.Difficulty)
	if err != nil {
		return model.Seed{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	s := model.Seed{
		Profile: model.Profile{
			Name:         f.Profile.Name,
			Title:        f.Profile.Title,
			QuestGoal:    f.Profile.QuestGoal,
			SessionTitle: f.Profile.SessionTitle,
			SessionTopic: f.Profile.SessionTopic,
		},
		Progress: model.Progress{
			StreakDays:    f.Progress.StreakDays,
			XP:            f.Progress.XP,
			DailyProgress: f.Progress.DailyProgress,
		},
		Stats: model.Stats{
			CardsMastered: f.Stats.CardsMastered,
			Accuracy:      f.Stats.Accuracy,
			Sessions:      f.Stats.Sessions,
			Level:         f.Stats.Level,
		},
		Card: model.Card{
			Prompt:     f.Card.Prompt,
			Answer:     f.Card.Answer,
			Difficulty: difficulty,
			Position:   f.Card.Position,
			Total:      f.Card.Total,
		},
	}
	if err := s.Card.Validate(); err != nil {
		return model.Seed{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return s, nil
}
