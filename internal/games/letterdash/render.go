package letterdash

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/letter-dash/internal/core"
)

// Visual characters for rendering
const (
	TrackChar  = '─'
	FinishFlag = "🏁"
	DoneDot    = '●'
	PendingDot = '○'
)

// Layout sizes
const (
	targetBoxW = 7
	targetBoxH = 3
	padButtonW = 5
	padButtonH = 3
	padGap     = 1
	maxTrackW  = 60
)

// Render draws the game onto the screen and records pad button positions
// for LetterAt.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	g.renderHeader(dst, 0, snap)
	dst.DrawTextCentered(1, fmt.Sprintf("Level %d   Score %d   Streak %d   Attempts %d / %d",
		snap.Level, snap.Score, snap.Streak, snap.AttemptsLeft, snap.AttemptsMax))

	g.renderDots(dst, 3, snap)
	g.renderTrack(dst, 4, snap)
	dst.DrawTextCenteredColor(6, snap.LevelText(), core.ColorMuted)
	dst.DrawTextCenteredColor(7, snap.BudgetText(), core.ColorMuted)

	g.renderTarget(dst, 8, snap)
	g.renderPad(dst, 12, snap)

	dst.DrawTextCentered(16, snap.Message)
	if note, c := noteLine(snap); note != "" {
		dst.DrawTextCenteredColor(17, note, c)
	}
}

func (g *Game) renderHeader(dst *core.Screen, y int, snap Snapshot) {
	dst.DrawTextColor(1, y, "LETTER DASH · Buddy Runner", core.ColorHeading)

	music := "♪ off"
	if snap.MusicOn {
		music = "♪ on"
	}
	right := fmt.Sprintf("Best: %d   %s", snap.Best, music)
	dst.DrawTextColor(dst.Width()-core.TextWidth(right)-1, y, right, core.ColorMuted)
}

// renderDots draws one marker per level followed by the finish flag.
func (g *Game) renderDots(dst *core.Screen, y int, snap Snapshot) {
	width := 0
	for i := 1; i <= snap.MaxLevel; i++ {
		width += len(strconv.Itoa(i)) + 1
	}
	width += core.TextWidth(FinishFlag)

	x := (dst.Width() - width) / 2
	for i := 1; i <= snap.MaxLevel; i++ {
		c := core.ColorMuted
		switch {
		case i < snap.Level || (i == snap.Level && snap.Phase == PhaseFinished):
			c = core.ColorHit
		case i == snap.Level:
			c = core.ColorTarget
		}
		x = dst.DrawTextColor(x, y, strconv.Itoa(i), c) + 1
	}
	dst.DrawTextColor(x, y, FinishFlag, core.ColorDefault)
}

// renderTrack draws the runner on its track with the mood line below.
func (g *Game) renderTrack(dst *core.Screen, y int, snap Snapshot) {
	trackW := core.Min(dst.Width()-6, maxTrackW)
	if trackW < 2 {
		return
	}
	x0 := (dst.Width() - trackW) / 2

	dst.DrawHLineColor(x0, y, trackW, TrackChar, core.ColorMuted)
	dst.DrawTextColor(x0+trackW, y, FinishFlag, core.ColorDefault)

	rx := x0 + int(snap.Progress()*float64(trackW-1))
	dst.SetColor(rx, y, runnerGlyph(snap.Mood), core.ColorRunner)

	mood := snap.Mood.String()
	mx := core.Clamp(rx-core.TextWidth(mood)/2, 0, core.Max(0, dst.Width()-core.TextWidth(mood)))
	dst.DrawTextColor(mx, y+1, mood, core.ColorRunner)
}

func runnerGlyph(m Mood) rune {
	switch m {
	case MoodCollect:
		return '★'
	case MoodStumble:
		return '✗'
	case MoodFall:
		return '_'
	case MoodRun:
		return '▶'
	default:
		return '●'
	}
}

func (g *Game) renderTarget(dst *core.Screen, y int, snap Snapshot) {
	x := (dst.Width() - targetBoxW) / 2
	box := core.NewRect(x, y, targetBoxW, targetBoxH)

	c := core.ColorMuted
	switch {
	case snap.Phase == PhaseRoundActive:
		c = core.ColorTarget
	case snap.Mood == MoodCollect:
		c = core.ColorHit
	case snap.Mood == MoodStumble || snap.Mood == MoodFall:
		c = core.ColorMiss
	}
	dst.DrawBoxColor(box, c)

	text := snap.TargetText()
	tx := x + (targetBoxW-core.TextWidth(text))/2
	dst.DrawTextColor(tx, y+1, text, c)
}

// renderPad draws the tap pad and remembers each button's area.
func (g *Game) renderPad(dst *core.Screen, y int, snap Snapshot) {
	g.padRects = g.padRects[:0]
	n := len(snap.Pad)
	if n == 0 {
		return
	}

	total := n*padButtonW + (n-1)*padGap
	x := (dst.Width() - total) / 2
	active := snap.Phase == PhaseRoundActive

	for _, letter := range snap.Pad {
		r := core.NewRect(x, y, padButtonW, padButtonH)
		c := core.ColorCyan
		if !active {
			c = core.ColorMuted
		}
		dst.DrawBoxColor(r, c)
		dst.SetColor(x+padButtonW/2, y+1, letter, core.ColorWhite)
		if active {
			g.padRects = append(g.padRects, padButton{rect: r, letter: letter})
		}
		x += padButtonW + padGap
	}
}

// noteLine returns the status line under the log.
func noteLine(snap Snapshot) (string, core.Color) {
	switch {
	case snap.Phase.Terminal() && snap.NewBest:
		return "New local best! Ctrl+Y copies your result.", core.ColorHit
	case snap.Phase.Terminal():
		return "Press Enter to play again. Ctrl+Y copies your result.", core.ColorMuted
	case snap.Phase == PhaseIdle:
		return "Type your name below, then press Enter.", core.ColorMuted
	}
	return "", core.ColorDefault
}
