package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/layoutstat/internal/layout"
)

const (
	rowSlots   = 10
	handSlots  = 5
	cellWidth  = 7
	handGap    = "   "
	heatLevels = 5
)

var heatPalette = [heatLevels]lipgloss.Color{"#2B2B2B", "#3B4F2B", "#6B6B1F", "#8C5A1F", "#A3332B"}

var heatCellStyle = lipgloss.NewStyle().
	Width(cellWidth).
	Align(lipgloss.Center).
	Foreground(lipgloss.Color("#F0F0F0"))

// RenderHeatmap draws the layout as a keyboard grid with each key's share
// of keystrokes. A character placed on two slots shows its full share on
// both. With color enabled cells are shaded by share.
func RenderHeatmap(w io.Writer, letters string, freq map[byte]int64, useColor bool) error {
	if len(letters) != layout.Size {
		return layout.ErrLayoutLength
	}
	var total, peak int64
	var seen [256]bool
	for i := 0; i < layout.Size; i++ {
		c := letters[i]
		f := freq[c]
		if !seen[c] {
			seen[c] = true
			total += f
		}
		if f > peak {
			peak = f
		}
	}

	cell := func(i int) string {
		c := letters[i]
		f := freq[c]
		label := fmt.Sprintf("%s %4.1f", keyLabel(c), Percent(f, total))
		if !useColor {
			return padCell(label, cellWidth, false)
		}
		level := 0
		if peak > 0 {
			level = int(f * (heatLevels - 1) / peak)
		}
		return heatCellStyle.Background(heatPalette[level]).Render(label)
	}

	if _, err := fmt.Fprintln(w, "Heatmap (% of keystrokes)"); err != nil {
		return err
	}
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < rowSlots; col++ {
			if col == handSlots {
				b.WriteString(handGap)
			} else if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell(row*rowSlots + col))
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	indent := strings.Repeat(" ", (cellWidth+1)*3)
	thumbs := indent + cell(30) + " " + handGap + cell(31)
	if _, err := fmt.Fprintln(w, thumbs); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func keyLabel(c byte) string {
	if c == ' ' {
		return "␣"
	}
	return string(c)
}

// ShouldUseColor reports whether w is a terminal that accepts color.
// NO_COLOR always wins; force overrides terminal detection.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
