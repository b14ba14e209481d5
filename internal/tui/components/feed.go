package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
)

// Feed renders what a screen reader would have been told, newest last.
type Feed struct {
	entries []announce.Announcement
	limit   int
}

// NewFeed creates a feed showing at most limit entries; 0 shows all.
func NewFeed(entries []announce.Announcement, limit int) Feed {
	return Feed{entries: entries, limit: limit}
}

// View renders the feed.
func (f Feed) View() string {
	entries := f.entries
	if f.limit > 0 && len(entries) > f.limit {
		entries = entries[len(entries)-f.limit:]
	}
	if len(entries) == 0 {
		return mutedStyle.Render("nothing announced yet")
	}

	lines := make([]string, 0, len(entries))
	for _, a := range entries {
		msg := a.Message
		if a.Cleared() {
			msg = mutedStyle.Render("(cleared)")
		}
		lines = append(lines, fmt.Sprintf("%-9s %s", a.Politeness.String(), msg))
	}
	return strings.Join(lines, "\n")
}

// LiveRegions renders the current text of each live region.
func LiveRegions(a *announce.Announcer) string {
	if a == nil {
		return ""
	}
	var lines []string
	for _, p := range []announce.Politeness{announce.Polite, announce.Assertive} {
		text := ""
		if r := a.Region(p); r != nil {
			text = r.Message()
		}
		if text == "" {
			text = mutedStyle.Render("-")
		}
		lines = append(lines, fmt.Sprintf("%-9s %s", p.String(), text))
	}
	return strings.Join(lines, "\n")
}
