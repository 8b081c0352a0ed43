package letterdash

import "fmt"

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle            Phase = iota // Not started yet
	PhaseRoundActive                  // Target shown, waiting for an answer
	PhaseResolving                    // Round resolved, next round pending
	PhaseLevelTransition              // Level cleared, next level pending
	PhaseFinished                     // Final level cleared
	PhaseGameOver                     // Attempts exhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRoundActive:
		return "round-active"
	case PhaseResolving:
		return "resolving"
	case PhaseLevelTransition:
		return "level-transition"
	case PhaseFinished:
		return "finished"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseFinished || p == PhaseGameOver
}

// Mood is the runner's animation state.
type Mood int

const (
	MoodIdle Mood = iota
	MoodRun
	MoodCollect
	MoodStumble
	MoodFall
)

func (m Mood) String() string {
	switch m {
	case MoodRun:
		return "Running..."
	case MoodCollect:
		return "Got it!"
	case MoodStumble:
		return "Oops..."
	case MoodFall:
		return "Fell down..."
	default:
		return "Ready"
	}
}

// Summary is the final result of a session.
type Summary struct {
	Player   string
	Score    int
	Level    int
	Finished bool // Cleared the final level rather than running out of attempts
	Best     int
	NewBest  bool
}

// Outcome returns "FINISHED" or "Game Over".
func (s Summary) Outcome() string {
	if s.Finished {
		return "FINISHED"
	}
	return "Game Over"
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase           Phase
	Running         bool
	InputLocked     bool // Set from resolution until the next round starts
	Level           int
	MaxLevel        int
	Score           int
	Streak          int
	AttemptsLeft    int
	AttemptsMax     int
	CorrectInLevel  int
	CorrectPerLevel int
	AllowedMs       int
	NextAllowedMs   int // Budget of the following level; 0 on the last level
	Target          rune // Zero when no round is active
	Pad             []rune
	TimeLeft        float64 // Fraction of the round budget left, in [0, 1]
	Mood            Mood
	Message         string
	Best            int
	NewBest         bool
	Player          string
	MusicOn         bool
}

// TargetText returns the target letter or a dash.
func (s Snapshot) TargetText() string {
	if s.Target == 0 {
		return "—"
	}
	return string(s.Target)
}

// Progress returns how far the runner is through the current level, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.CorrectPerLevel <= 0 {
		return 0
	}
	done := float64(s.CorrectInLevel) / float64(s.CorrectPerLevel)
	if done > 1 {
		return 1
	}
	if done < 0 {
		return 0
	}
	return done
}

// LevelText returns the progress line shown under the track.
func (s Snapshot) LevelText() string {
	return fmt.Sprintf("Level %d · %d/%d to go", s.Level, s.CorrectInLevel, s.CorrectPerLevel)
}

// BudgetText returns the time per letter and what the next level brings.
func (s Snapshot) BudgetText() string {
	if s.NextAllowedMs <= 0 {
		return fmt.Sprintf("Time per letter: %dms · final level", s.AllowedMs)
	}
	return fmt.Sprintf("Time per letter: %dms · next level: %dms", s.AllowedMs, s.NextAllowedMs)
}
