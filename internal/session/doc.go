package session

// Package session implements the study session state machine: which card is
// current, whether its answer is revealed, and the transient self-assessment
// that advances to the next card after a short delay. Navigation wraps around
// so a finite deck is studied as a cycle.
