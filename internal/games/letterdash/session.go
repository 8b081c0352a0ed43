package letterdash

import (
	"fmt"
	"math/rand"
	"time"
	"unicode"

	"github.com/vovakirdan/letter-dash/internal/config"
)

// Music is the background loop the session starts and stops.
type Music interface {
	Start() error
	Stop()
}

// BestScoreKeeper persists session results and tracks the best score.
type BestScoreKeeper interface {
	Best() int
	Record(s Summary) (best int, newBest bool)
}

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(s *Session) { s.now = c }
}

// WithSeed seeds the letter picker for deterministic sessions.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithMusic attaches a background music loop.
func WithMusic(m Music) Option {
	return func(s *Session) { s.music = m }
}

// WithBestScoreKeeper attaches result persistence.
func WithBestScoreKeeper(k BestScoreKeeper) Option {
	return func(s *Session) { s.keeper = k }
}

// Session is the Letter Dash state machine.
//
// Every round is resolved at most once: the first of submit or timeout locks
// input and cancels the round timer before touching any other state, and a
// locked round ignores everything that arrives later. Presentation pauses
// (Delays in the config) only postpone the next BeginRound or, after the
// final hit, the move to Finished; counters change immediately.
//
// Session is not safe for concurrent use; it is driven from one frame loop.
type Session struct {
	cfg        config.LetterDashConfig
	difficulty config.DifficultyPolicy
	scoring    ScoringPolicy
	now        Clock
	rng        *rand.Rand
	picker     *letterPicker
	music      Music
	keeper     BestScoreKeeper

	phase          Phase
	running        bool
	inputLocked    bool
	level          int
	score          int
	streak         int
	attemptsLeft   int
	correctInLevel int
	allowedMs      int
	target         rune
	prevTarget     rune
	pad            []rune
	round          int
	timer          RoundTimer
	next           Delay
	finishing      bool // next fires end(PhaseFinished) instead of BeginRound
	mood           Mood
	message        string
	best           int
	newBest        bool
	player         string
	events         []Event
}

// NewSession creates an idle session. The configuration is validated.
func NewSession(cfg config.LetterDashConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyPolicy(cfg.Game),
		scoring:    NewScoringPolicy(cfg.Scoring),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.picker = newLetterPicker(cfg.Game.Alphabet, s.rng)
	if s.keeper != nil {
		s.best = s.keeper.Best()
	}
	s.resetCounters()
	s.message = "Press Enter to start. Type letters or click the pad."
	return s, nil
}

func (s *Session) resetCounters() {
	s.level = 1
	s.score = 0
	s.streak = 0
	s.attemptsLeft = s.cfg.Game.AttemptsMax
	s.correctInLevel = 0
	s.allowedMs = s.cfg.Game.StartTimeMs
	s.round = 0
	s.target = 0
	s.pad = nil
	s.newBest = false
	s.finishing = false
}

// Start begins a session from Idle or a terminal phase.
// It does nothing while a session is running.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.timer.Cancel()
	s.next.Cancel()
	s.resetCounters()
	s.running = true
	s.inputLocked = false
	s.mood = MoodRun
	if s.music != nil {
		s.music.Start() //nolint:errcheck // Best-effort: the game runs without sound
	}
	s.BeginRound()
}

// Restart stops the current session from any phase and starts a fresh one.
func (s *Session) Restart() {
	s.timer.Cancel()
	s.next.Cancel()
	if s.music != nil {
		s.music.Stop()
	}
	s.running = false
	s.phase = PhaseIdle
	s.Start()
}

// BeginRound shows a new target. It does nothing unless a session is running,
// no round is active and the final level is not already cleared.
func (s *Session) BeginRound() {
	if !s.running || s.phase == PhaseRoundActive || s.finishing {
		return
	}
	s.next.Cancel()

	s.target = s.picker.Next(s.prevTarget)
	s.prevTarget = s.target
	s.pad = s.picker.Pad(s.target, s.cfg.Game.PadSize)
	s.round++
	s.phase = PhaseRoundActive
	s.inputLocked = false
	s.mood = MoodRun
	s.timer.Start(s.now(), time.Duration(s.allowedMs)*time.Millisecond)

	s.emit(RoundStartedEvent{
		Round:     s.round,
		Target:    s.target,
		Pad:       append([]rune(nil), s.pad...),
		AllowedMs: s.allowedMs,
	})
}

// Submit answers the active round. Letters are case-insensitive.
// An answer arriving at or after the deadline resolves the round as a timeout.
func (s *Session) Submit(letter rune) {
	if !s.running || s.inputLocked || s.phase != PhaseRoundActive {
		return
	}
	now := s.now()
	s.inputLocked = true
	s.timer.Cancel()

	elapsed := s.timer.Elapsed(now)
	letter = unicode.ToUpper(letter)

	switch {
	case elapsed >= time.Duration(s.allowedMs)*time.Millisecond:
		s.miss(MissTimeout, 0)
	case letter != s.target:
		s.miss(MissWrongLetter, letter)
	default:
		s.hit(elapsed)
	}
}

// Tick advances the round timer and pending pauses. Call it once per frame.
func (s *Session) Tick() {
	if !s.running {
		return
	}
	now := s.now()
	if s.timer.Poll(now) {
		s.timeout()
	}
	if s.next.Poll(now) {
		if s.finishing {
			s.end(PhaseFinished)
		} else {
			s.BeginRound()
		}
	}
}

func (s *Session) timeout() {
	if !s.running || s.inputLocked || s.phase != PhaseRoundActive {
		return
	}
	s.inputLocked = true
	s.miss(MissTimeout, 0)
}

func (s *Session) hit(reaction time.Duration) {
	gain := s.scoring.Gain(Milliseconds(reaction), s.allowedMs, s.streak)
	target := s.target

	s.score += gain
	s.streak++
	s.correctInLevel++
	s.phase = PhaseResolving
	s.mood = MoodCollect
	s.message = fmt.Sprintf("Nice! +%d (reaction %dms)", gain, reaction.Milliseconds())

	s.emit(HitEvent{Target: target, Gain: gain, Reaction: reaction, Streak: s.streak})

	if s.correctInLevel < s.cfg.Game.CorrectPerLevel {
		s.scheduleNext(s.cfg.Delays.HitMs)
		return
	}

	if s.level >= s.cfg.Game.MaxLevel {
		s.scheduleFinish(s.cfg.Delays.FinishMs)
		return
	}

	s.level++
	s.correctInLevel = 0
	s.allowedMs = s.difficulty.NextAllowedMs(s.allowedMs)
	s.phase = PhaseLevelTransition
	s.message = fmt.Sprintf("Level up! Welcome to Level %d. Time per letter: %dms", s.level, s.allowedMs)
	s.emit(LevelUpEvent{Level: s.level, AllowedMs: s.allowedMs})
	s.scheduleNext(s.cfg.Delays.LevelUpMs)
}

func (s *Session) miss(reason MissReason, got rune) {
	target := s.target

	s.attemptsLeft--
	if s.attemptsLeft < 0 {
		s.attemptsLeft = 0
	}
	s.streak = 0
	s.phase = PhaseResolving
	s.mood = MoodStumble

	what := "Too slow!"
	if reason == MissWrongLetter {
		what = fmt.Sprintf("Wrong (need \"%c\")", target)
	}
	s.message = fmt.Sprintf("%s — attempts left: %d", what, s.attemptsLeft)

	s.emit(MissEvent{Reason: reason, Target: target, Got: got, AttemptsLeft: s.attemptsLeft})

	if s.attemptsLeft == 0 {
		s.end(PhaseGameOver)
		return
	}
	s.scheduleNext(s.cfg.Delays.MissMs)
}

// scheduleNext begins the next round after ms, or right away when ms is 0.
func (s *Session) scheduleNext(ms int) {
	if ms <= 0 {
		s.BeginRound()
		return
	}
	s.next.Schedule(s.now().Add(time.Duration(ms) * time.Millisecond))
}

// scheduleFinish ends the session as Finished after ms, or right away when
// ms is 0.
func (s *Session) scheduleFinish(ms int) {
	if ms <= 0 {
		s.end(PhaseFinished)
		return
	}
	s.finishing = true
	s.next.Schedule(s.now().Add(time.Duration(ms) * time.Millisecond))
}

// end moves the session into a terminal phase. It runs at most once per session.
func (s *Session) end(phase Phase) {
	if !s.running {
		return
	}
	s.running = false
	s.inputLocked = true
	s.finishing = false
	s.timer.Cancel()
	s.next.Cancel()
	if s.music != nil {
		s.music.Stop()
	}

	s.phase = phase
	s.target = 0
	s.pad = nil
	if phase == PhaseFinished {
		s.correctInLevel = s.cfg.Game.CorrectPerLevel
		s.mood = MoodCollect
		s.message = "Finished! Try again to beat your score."
	} else {
		s.mood = MoodFall
		s.message = "Game over. Try again."
	}

	if s.keeper != nil {
		s.best, s.newBest = s.keeper.Record(s.summary())
	} else if s.score > s.best {
		s.best, s.newBest = s.score, true
	}

	sum := s.summary()
	if phase == PhaseFinished {
		s.emit(FinishedEvent{Summary: sum})
	} else {
		s.emit(GameOverEvent{Summary: sum})
	}
}

func (s *Session) summary() Summary {
	return Summary{
		Player:   s.Player(),
		Score:    s.score,
		Level:    s.level,
		Finished: s.phase == PhaseFinished,
		Best:     s.best,
		NewBest:  s.newBest,
	}
}

// Summary returns the result of the last session, or the running totals.
func (s *Session) Summary() Summary {
	return s.summary()
}

// SetPlayer sets the name used in results and share text.
func (s *Session) SetPlayer(name string) {
	s.player = name
}

// Player returns the player name, "Someone" when unset.
func (s *Session) Player() string {
	if s.player == "" {
		return DefaultPlayer
	}
	return s.player
}

// DefaultPlayer is used when no name was entered.
const DefaultPlayer = "Someone"

// Notify replaces the log line.
func (s *Session) Notify(msg string) {
	s.message = msg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Running reports whether a session is in progress.
func (s *Session) Running() bool {
	return s.running
}

// DrainEvents returns and clears the queued events.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:           s.phase,
		Running:         s.running,
		InputLocked:     s.inputLocked,
		Level:           s.level,
		MaxLevel:        s.cfg.Game.MaxLevel,
		Score:           s.score,
		Streak:          s.streak,
		AttemptsLeft:    s.attemptsLeft,
		AttemptsMax:     s.cfg.Game.AttemptsMax,
		CorrectInLevel:  s.correctInLevel,
		CorrectPerLevel: s.cfg.Game.CorrectPerLevel,
		AllowedMs:       s.allowedMs,
		NextAllowedMs:   s.nextAllowedMs(),
		Target:          s.target,
		Pad:             append([]rune(nil), s.pad...),
		TimeLeft:        s.timer.Remaining(s.now()),
		Mood:            s.mood,
		Message:         s.message,
		Best:            s.best,
		NewBest:         s.newBest,
		Player:          s.Player(),
	}
}

// nextAllowedMs returns the budget of the following level, or 0 on the last one.
func (s *Session) nextAllowedMs() int {
	if s.level >= s.cfg.Game.MaxLevel {
		return 0
	}
	return s.difficulty.AllowedMsAt(s.cfg.Game.StartTimeMs, s.level+1)
}
