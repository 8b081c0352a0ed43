package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-dash/internal/audio"
	"github.com/vovakirdan/letter-dash/internal/config"
	"github.com/vovakirdan/letter-dash/internal/core"
	"github.com/vovakirdan/letter-dash/internal/games/letterdash"
	"github.com/vovakirdan/letter-dash/internal/share"
)

// footerRows is the space below the game screen: timer bar, name line, help.
const footerRows = 3

// Options configures a game Model.
type Options struct {
	Game    config.LetterDashConfig
	Runtime core.RuntimeConfig

	Music  *audio.MusicLoop           // nil disables music
	Keeper letterdash.BestScoreKeeper // nil keeps the best score in memory
	Logger *log.Logger                // nil discards log output

	Player        string             // Prefilled player name
	Renderer      *lipgloss.Renderer // nil uses the local terminal
	ScreenshotDir string             // Empty means ~/.letterdash/screenshots
	Clipboard     func(string) error // nil uses the system clipboard
	Clock         letterdash.Clock   // nil uses time.Now
}

// Model is the Bubble Tea model for playing Letter Dash.
type Model struct {
	game          *letterdash.Game
	screen        *core.Screen
	palette       Palette
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          *KeyMapper
	help          help.Model
	name          textinput.Model
	timerBar      progress.Model
	music         *audio.MusicLoop
	logger        *log.Logger
	copyFn        func(string) error
	theme         string
	screenshotDir string
	summary       *letterdash.Summary // Result of the last finished session
	quitting      bool
}

// NewModel creates a Bubble Tea model for one player.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var gameOpts []letterdash.Option
	if opts.Keeper != nil {
		gameOpts = append(gameOpts, letterdash.WithBestScoreKeeper(opts.Keeper))
	}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, letterdash.WithClock(opts.Clock))
	}
	var music letterdash.MusicController
	if opts.Music != nil {
		music = opts.Music
	}
	game, err := letterdash.New(opts.Game, music, gameOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	name := textinput.New()
	name.Placeholder = letterdash.DefaultPlayer
	name.Prompt = "Name: "
	name.CharLimit = 24
	name.SetValue(opts.Player)
	name.Focus()

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = share.Copy
	}

	screenshotDir := opts.ScreenshotDir
	if screenshotDir == "" {
		screenshotDir = config.UserConfigPath("screenshots")
	}
	if screenshotDir == "" {
		screenshotDir = "screenshots"
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerRows)),
		palette:       NewPalette(renderer),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          NewKeyMapper(),
		help:          help.New(),
		name:          name,
		timerBar:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		music:         opts.Music,
		logger:        logger,
		copyFn:        copyFn,
		theme:         share.Theme(renderer.HasDarkBackground()),
		screenshotDir: screenshotDir,
	}
	m.timerBar.Width = core.Max(10, cfg.ScreenW-4)
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.config)
	m.game.SetPlayer(strings.TrimSpace(opts.Player))
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.music != nil {
			m.music.Stop()
		}
		return m, tea.Quit
	}

	switch action {
	case core.ActionConfirm:
		if !m.gameState.Running {
			m.game.SetPlayer(strings.TrimSpace(m.name.Value()))
			m.inputFrame.Set(core.ActionConfirm)
			m.name.Blur()
		}
		return m, nil
	case core.ActionRestart:
		m.game.SetPlayer(strings.TrimSpace(m.name.Value()))
		m.inputFrame.Set(core.ActionRestart)
		m.name.Blur()
		return m, nil
	case core.ActionCopyShare:
		m.copyShare()
		return m, nil
	case core.ActionToggleMusic:
		m.inputFrame.Set(action)
		return m, nil
	}

	// Answers go in at once so the reaction time is read at the key press
	if m.gameState.Running {
		if r, ok := m.keys.MapLetter(msg); ok {
			m.game.Submit(r)
		}
		return m, nil
	}

	// Between sessions typing edits the player name
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleMouse turns clicks on pad buttons into letters.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if r, ok := m.game.LetterAt(msg.X, msg.Y); ok {
		m.game.Submit(r)
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerRows))
	m.timerBar.Width = core.Max(10, msg.Width-4)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasRunning := m.gameState.Running

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logEvent(e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if wasRunning && m.gameState.Ended() {
		cmds = append(cmds, m.name.Focus())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) logEvent(e letterdash.Event) {
	switch ev := e.(type) {
	case letterdash.RoundStartedEvent:
		m.logger.Debug("round started", "round", ev.Round, "target", string(ev.Target), "allowed_ms", ev.AllowedMs)
	case letterdash.HitEvent:
		m.logger.Debug("hit", "target", string(ev.Target), "gain", ev.Gain, "reaction", ev.Reaction, "streak", ev.Streak)
	case letterdash.MissEvent:
		m.logger.Debug("miss", "reason", ev.Reason, "target", string(ev.Target), "attempts_left", ev.AttemptsLeft)
	case letterdash.LevelUpEvent:
		m.logger.Info("level up", "level", ev.Level, "allowed_ms", ev.AllowedMs)
	case letterdash.FinishedEvent:
		m.summary = &ev.Summary
		m.logger.Info("session finished", "player", ev.Summary.Player, "score", ev.Summary.Score, "new_best", ev.Summary.NewBest)
	case letterdash.GameOverEvent:
		m.summary = &ev.Summary
		m.logger.Info("game over", "player", ev.Summary.Player, "score", ev.Summary.Score, "level", ev.Summary.Level)
	}
}

// copyShare puts the last result on the clipboard.
func (m *Model) copyShare() {
	if m.summary == nil || m.gameState.Running {
		m.game.Session().Notify("Finish a run to share your result.")
		return
	}

	payload := share.Build(*m.summary, m.theme)
	if err := m.copyFn(payload.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.game.Session().Notify("Clipboard unavailable. Use ctrl+s to save the screen.")
		return
	}
	m.logger.Info("result copied", "x", payload.XIntent())
	m.game.Session().Notify("Copied ✅")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.game.Session().Notify("Screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(m.palette.Render(m.screen))
	b.WriteByte('\n')
	if snap.Phase == letterdash.PhaseRoundActive {
		b.WriteString(m.timerBar.ViewAs(snap.TimeLeft))
	}
	b.WriteByte('\n')
	if snap.Running {
		b.WriteString("Player: " + snap.Player)
	} else {
		b.WriteString(m.name.View())
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys.Keys()))
	return b.String()
}

// Game returns the game driven by the model.
func (m Model) Game() *letterdash.Game {
	return m.game
}

// Run starts the Bubble Tea program for the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pad buttons are clickable
	)

	_, err = p.Run()
	return err
}
