// Package share builds the post-game share text and intent links, and
// copies results to the system clipboard.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/letter-dash/internal/games/letterdash"
)

// Title is the share title.
const Title = "Letter Dash — Buddy Runner"

// HomeURL is linked from every share.
const HomeURL = "https://github.com/vovakirdan/letter-dash"

// Payload is the content offered to share targets.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// Build creates the share payload for a finished session.
func Build(s letterdash.Summary, theme string) Payload {
	player := strings.TrimSpace(s.Player)
	if player == "" {
		player = letterdash.DefaultPlayer
	}

	text := fmt.Sprintf("🏃 %s (%s)\n%s: %d pts — reached Level %d\nTheme: %s\nCan you beat this?",
		Title, s.Outcome(), player, s.Score, s.Level, theme)

	return Payload{Title: Title, Text: text, URL: HomeURL}
}

// String returns the text followed by the link, as copied to the clipboard.
func (p Payload) String() string {
	if p.URL == "" {
		return p.Text
	}
	return p.Text + "\n" + p.URL
}

// XIntent returns the X (Twitter) compose link.
func (p Payload) XIntent() string {
	return "https://twitter.com/intent/tweet?" + url.Values{"text": {p.String()}}.Encode()
}

// FacebookIntent returns the Facebook sharer link.
func (p Payload) FacebookIntent() string {
	return "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {p.URL}}.Encode()
}

// LinkedInIntent returns the LinkedIn share link.
func (p Payload) LinkedInIntent() string {
	return "https://www.linkedin.com/sharing/share-offsite/?" + url.Values{"url": {p.URL}}.Encode()
}

// Theme names the terminal theme for the share text.
func Theme(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// DetectTheme queries the terminal background.
func DetectTheme() string {
	return Theme(lipgloss.HasDarkBackground())
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("share: clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("share: cannot copy: %w", err)
	}
	return nil
}
