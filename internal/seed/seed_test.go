package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flashforge/internal/model"
)

const validDoc = `
profile:
  name: Ada Lovelace
card:
  prompt: What does defer do?
  answer: Runs a call when the surrounding function returns.
  difficulty: easy
  position: 2
  total: 3
`

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "Tristan Smith", s.Profile.Name)
	assert.Equal(t, "The Imposter Arisen", s.Profile.Title)
	assert.Equal(t, "Kotlin Savage", s.Profile.QuestGoal)
	assert.Equal(t, 7, s.Progress.StreakDays)
	assert.Equal(t, 2450, s.Progress.XP)
	assert.InDelta(t, 0.68, s.Progress.DailyProgress, 1e-9)
	assert.Equal(t, model.Stats{CardsMastered: 156, Accuracy: 89, Sessions: 23, Level: 12}, s.Stats)
	assert.Equal(t, model.DifficultyMedium, s.Card.Difficulty)
	assert.Equal(t, 15, s.Card.Position)
	assert.Equal(t, 45, s.Card.Total)
	assert.True(t, strings.HasPrefix(s.Card.Answer, "Kotlin coroutines provide lightweight concurrency"))
}

func TestParse_Valid(t *testing.T) {
	s, err := Parse([]byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", s.Profile.Name)
	assert.Equal(t, model.DifficultyEasy, s.Card.Difficulty)
	assert.Equal(t, "2 / 3", s.Card.CounterText())
	assert.Zero(t, s.Stats)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "card: [unterminated"},
		{"missing name", strings.Replace(validDoc, "name: Ada Lovelace", "name: \"\"", 1)},
		{"missing prompt", strings.Replace(validDoc, "prompt: What does defer do?", "prompt: \"\"", 1)},
		{"position past total", strings.Replace(validDoc, "position: 2", "position: 4", 1)},
		{"zero position", strings.Replace(validDoc, "position: 2", "position: 0", 1)},
		{"unknown difficulty", strings.Replace(validDoc, "difficulty: easy", "difficulty: brutal", 1)},
		{"progress over one", validDoc + "progress:\n  daily_progress: 1.5\n"},
		{"accuracy over hundred", validDoc + "stats:\n  accuracy: 101\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.doc))
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestParse_DifficultyCaseInsensitive(t *testing.T) {
	s, err := Parse([]byte(strings.Replace(validDoc, "difficulty: easy", "difficulty: HARD", 1)))
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyHard, s.Card.Difficulty)
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", s.Profile.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
