package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dmitrijs2005/memoryvault/internal/models"
)

// colorEnabled gates all styling; plain text is used when stdout is not
// a terminal or NO_COLOR is set.
var colorEnabled bool

var (
	lockedStyle   lipgloss.Style
	readyStyle    lipgloss.Style
	unlockedStyle lipgloss.Style
	titleStyle    lipgloss.Style
	dimStyle      lipgloss.Style
)

func initStyles() {
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

	lockedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	readyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	unlockedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle = lipgloss.NewStyle().Faint(true)
}

func styled(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// statusBadge renders a fixed-width status marker for gallery rows.
func statusBadge(status models.Status) string {
	switch status {
	case models.StatusReady:
		return styled(readyStyle, "[ready   ]")
	case models.StatusUnlocked:
		return styled(unlockedStyle, "[unlocked]")
	default:
		return styled(lockedStyle, "[locked  ]")
	}
}

// renderCapsuleRow is the one-line gallery representation.
func renderCapsuleRow(c *models.Capsule, status models.Status) string {
	var extra string
	switch {
	case status == models.StatusLocked && c.UnlockDate != nil:
		extra = styled(dimStyle, "unlocks "+c.UnlockDate.Format("2006-01-02"))
	case status == models.StatusLocked && c.UnlockLocation != nil:
		extra = styled(dimStyle, "unlocks at "+c.UnlockLocation.Name)
	case status == models.StatusUnlocked && c.UnlockedAt != nil:
		extra = styled(dimStyle, "opened "+c.UnlockedAt.Format("2006-01-02"))
	}

	row := fmt.Sprintf("%s %s  %s", statusBadge(status), c.ID, styled(titleStyle, c.Title))
	if len(c.Media) > 0 {
		row += fmt.Sprintf("  (%d media)", len(c.Media))
	}
	if extra != "" {
		row += "  " + extra
	}
	return row
}

// renderCapsule is the full detail view shown by the show command. The
// message stays hidden until the capsule is unlocked.
func renderCapsule(c *models.Capsule, status models.Status) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", statusBadge(status), styled(titleStyle, c.Title))
	fmt.Fprintf(&b, "id:      %s\n", c.ID)
	fmt.Fprintf(&b, "theme:   %s\n", c.Theme)
	fmt.Fprintf(&b, "trigger: %s\n", c.Trigger())
	fmt.Fprintf(&b, "created: %s\n", c.CreatedAt.Format("2006-01-02 15:04"))

	if c.UnlockDate != nil {
		fmt.Fprintf(&b, "unlocks: %s\n", c.UnlockDate.Format("2006-01-02 15:04"))
	}
	if c.UnlockLocation != nil {
		fmt.Fprintf(&b, "place:   %s (%.4f, %.4f)\n",
			c.UnlockLocation.Name, c.UnlockLocation.Latitude, c.UnlockLocation.Longitude)
	}
	if c.UnlockedAt != nil {
		fmt.Fprintf(&b, "opened:  %s\n", c.UnlockedAt.Format("2006-01-02 15:04"))
	}

	if status == models.StatusUnlocked {
		fmt.Fprintf(&b, "\n%s\n", c.Message)
	} else {
		fmt.Fprintf(&b, "\n%s\n", styled(dimStyle, "(message hidden until unlocked)"))
	}

	for _, m := range c.Media {
		fmt.Fprintf(&b, "media:   %s %s (%d bytes)\n", m.Kind, m.Name, m.Size)
	}
	return b.String()
}
