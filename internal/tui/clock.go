package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// clockColors is the palette cycled with the arrow keys: the 16 standard
// terminal colors, so the clock follows the user's terminal theme.
var clockColors = [16]lipgloss.Color{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
}

// segment describes which thirds of a 6-column digit row are lit.
type segment uint8

const (
	segEmpty segment = iota
	segFull
	segLeft
	segCenter
	segRight
	segSides
)

// digitSegments is the 5-row segment font for the digits 0-9.
var digitSegments = [10][5]segment{
	{segFull, segSides, segSides, segSides, segFull},   // 0
	{segRight, segRight, segRight, segRight, segRight}, // 1
	{segFull, segRight, segFull, segLeft, segFull},     // 2
	{segFull, segRight, segFull, segRight, segFull},    // 3
	{segSides, segSides, segFull, segRight, segRight},  // 4
	{segFull, segLeft, segFull, segRight, segFull},     // 5
	{segFull, segLeft, segFull, segSides, segFull},     // 6
	{segFull, segRight, segRight, segRight, segRight},  // 7
	{segFull, segSides, segFull, segSides, segFull},    // 8
	{segFull, segSides, segFull, segRight, segFull},    // 9
}

// colonSegments is the segment column for the time separators.
var colonSegments = [5]segment{segEmpty, segCenter, segEmpty, segCenter, segEmpty}

// renderSegment renders one 6-column digit row as background-colored cells.
func renderSegment(seg segment, on lipgloss.Style) string {
	cell := on.Render("  ")
	blank := "  "
	switch seg {
	case segFull:
		return cell + cell + cell
	case segLeft:
		return cell + blank + blank
	case segCenter:
		return blank + cell + blank
	case segRight:
		return blank + blank + cell
	case segSides:
		return cell + blank + cell
	default:
		return blank + blank + blank
	}
}

// renderClockFace renders HH:MM:SS in the 5-row segment font.
func renderClockFace(now time.Time, color lipgloss.Color) string {
	on := lipgloss.NewStyle().Background(color)
	timeStr := now.Format("15:04:05")

	lines := make([]string, 5)
	for row := 0; row < 5; row++ {
		var b strings.Builder
		for i, ch := range timeStr {
			var seg segment
			switch {
			case ch == ':':
				seg = colonSegments[row]
			case ch >= '0' && ch <= '9':
				seg = digitSegments[ch-'0'][row]
			}
			b.WriteString(renderSegment(seg, on))
			if i < len(timeStr)-1 {
				b.WriteString(" ")
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderClock renders the clock view centered in a width x height area:
// the segment clock face with the date underneath.
func renderClock(now time.Time, color lipgloss.Color, width, height int) string {
	face := renderClockFace(now, color)
	date := lipgloss.NewStyle().Foreground(color).
		Render(now.Format("Monday, January 02, 2006"))

	content := lipgloss.JoinVertical(lipgloss.Center, face, "", date)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
