package letterdash

import (
	"time"

	"github.com/vovakirdan/letter-dash/internal/core"
)

// Event is emitted by a Session when something visible happens.
// Events are queued and collected with Session.DrainEvents.
type Event interface {
	sessionEvent()
}

// MissReason tells why a round was lost.
type MissReason int

const (
	MissTimeout MissReason = iota
	MissWrongLetter
)

func (r MissReason) String() string {
	switch r {
	case MissTimeout:
		return "timeout"
	case MissWrongLetter:
		return "wrong-letter"
	default:
		return "unknown"
	}
}

// RoundStartedEvent is emitted when a new target is shown.
type RoundStartedEvent struct {
	Round     int
	Target    rune
	Pad       []rune
	AllowedMs int
}

func (RoundStartedEvent) sessionEvent() {}

// HitEvent is emitted for a correct answer within the budget.
type HitEvent struct {
	Target   rune
	Gain     int
	Reaction time.Duration
	Streak   int // Streak after this hit
}

func (HitEvent) sessionEvent() {}

// MissEvent is emitted for a wrong letter or an expired round.
type MissEvent struct {
	Reason       MissReason
	Target       rune
	Got          rune // Zero for timeouts
	AttemptsLeft int
}

func (MissEvent) sessionEvent() {}

// LevelUpEvent is emitted after a level is cleared and the next one begins.
type LevelUpEvent struct {
	Level     int
	AllowedMs int
}

func (LevelUpEvent) sessionEvent() {}

// FinishedEvent is emitted once when the final level is cleared.
type FinishedEvent struct {
	Summary Summary
}

func (FinishedEvent) sessionEvent() {}

// GameOverEvent is emitted once when the last attempt is spent.
type GameOverEvent struct {
	Summary Summary
}

func (GameOverEvent) sessionEvent() {}

// StepResult contains the result of a single game step.
type StepResult struct {
	State  core.GameState
	Events []Event
}
