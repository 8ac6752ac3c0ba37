package model

// Package model defines domain data structures used across the app: flashcards,
// self-assessment responses, learner profile and progress. Structures are plain
// values so the session and view-model can hand out copies freely.
