package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/pace/pkg/calendar"
	"github.com/stefanpenner/pace/pkg/timeline"
)

const (
	minWidth  = 60
	minHeight = 12

	// header + strip + two separators + footer
	chromeLines = 5
)

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")

	if m.isDateInput {
		b.WriteString(InputPromptStyle.Render("Target date: ") + m.dateInput.View())
	} else {
		b.WriteString(m.renderStrip(w))
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	contentHeight := h - chromeLines
	leftWidth := stagesWidth(w)
	rightWidth := detailsWidth(w)

	leftPanel := m.renderStagePanel(leftWidth, contentHeight)
	rightPanel := m.renderDetailsPanel(rightWidth, contentHeight)

	sepColor := timeline.ColorGrayDim
	if m.focusedPane == 1 || m.isEditing {
		sepColor = timeline.ColorPurple
	}
	sep := lipgloss.NewStyle().Foreground(sepColor).Render("│")
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(leftPanel, i, leftWidth))
		b.WriteString(sep)
		b.WriteString(getLine(rightPanel, i, rightWidth))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("Onboarding timeline")

	target := TargetStyle.Render("Target " + m.target.Format("Mon Jan 2, 2006"))
	start, end := m.windows.Span()
	stats := HeaderCountStyle.Render(fmt.Sprintf(" · %s – %s · %d business days · %s",
		timeline.FormatShort(start), timeline.FormatShort(end),
		m.catalog.TotalDuration(), untilLabel(calendar.BusinessDaysBetween(time.Now(), m.target))))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + lipgloss.NewStyle().Foreground(timeline.ColorCyan).Render(m.statusMsg)
	}

	right := target + stats
	gap := width - lipgloss.Width(title) - lipgloss.Width(status) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return title + status + strings.Repeat(" ", gap) + right
}

func untilLabel(days int) string {
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "1 business day away"
	case days > 1:
		return fmt.Sprintf("%d business days away", days)
	case days == -1:
		return "1 business day ago"
	default:
		return fmt.Sprintf("%d business days ago", -days)
	}
}

// renderStrip draws the proportional timeline as a single row, one colored
// run per stage that takes business days.
func (m Model) renderStrip(width int) string {
	segments := timeline.Segments(m.catalog)
	if len(segments) == 0 {
		return FooterStyle.Render("No working stages")
	}

	selectedLabel := ""
	if stage, ok := m.selectedStage(); ok {
		selectedLabel = strings.Replace(stage.Title, "Stage ", "", 1)
	}

	var b strings.Builder
	used := 0
	for i, s := range segments {
		n := width * s.Percent / 100
		if i == len(segments)-1 {
			n = width - used
		}
		if n < 1 {
			n = 1
		}
		if used+n > width {
			n = width - used
		}
		if n <= 0 {
			break
		}
		glyph := timeline.BarTrack
		if s.Label == selectedLabel {
			glyph = timeline.BarFill
		}
		b.WriteString(StripStyles[i%len(StripStyles)].Render(strings.Repeat(glyph, n)))
		used += n
	}
	return b.String()
}

func (m Model) renderStagePanel(width, height int) string {
	var lines []string

	if len(m.items) == 0 {
		lines = append(lines, FooterStyle.Render("No stages in catalog"))
	}

	// Scrolling window
	startIdx := 0
	endIdx := len(m.items)
	if len(m.items) > height {
		startIdx = m.cursor - height/2
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx = startIdx + height
		if endIdx > len(m.items) {
			endIdx = len(m.items)
			startIdx = endIdx - height
		}
	}

	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, m.renderStageRow(m.items[i], i == m.cursor, width))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStageRow(item StageItem, isSelected bool, width int) string {
	icon := StageRowStyle.Render(IconStage)
	if item.IsMilestone() {
		icon = MilestoneRowStyle.Render(IconMilestone)
	}

	prefix := "  "
	if isSelected {
		prefix = IconSelected + " "
	}

	when := RowWindowStyle.Render(item.Short)
	name := item.Card.Stage.Title

	// Truncate the title so the window always fits
	room := width - lipgloss.Width(prefix) - 2 - lipgloss.Width(when) - 1
	if room < 4 {
		room = 4
	}
	if r := []rune(name); len(r) > room {
		name = string(r[:room-1]) + "…"
	}

	line := prefix + icon + " " + name
	gap := width - lipgloss.Width(line) - lipgloss.Width(when)
	if gap < 1 {
		gap = 1
	}
	line += strings.Repeat(" ", gap) + when

	if isSelected {
		return SelectedStyle.Render(line)
	}
	return line
}

func (m Model) renderDetailsPanel(width, height int) string {
	stage, ok := m.selectedStage()
	if !ok {
		return FooterStyle.Render(" Select a stage to view details")
	}
	item := m.items[m.cursor]

	if m.isEditing {
		header := m.renderMarkdown(fmt.Sprintf("# %s\n\n**Note**\n", stage.Title))
		lines := strings.Split(header, "\n")
		lines = append(lines, strings.Split(m.noteEditor.View(), "\n")...)
		if len(lines) > height {
			lines = lines[:height]
		}
		return strings.Join(lines, "\n")
	}

	lines := strings.Split(m.renderMarkdown(stageMarkdown(item)), "\n")

	scroll := m.detailScroll
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	lines = lines[scroll:]

	// Pin the file path to the bottom
	bodyHeight := height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	for len(lines) < bodyHeight {
		lines = append(lines, "")
	}

	path := stage.FilePath
	if path == "" {
		path = "(built-in catalog)"
	} else {
		path = fileHyperlink(path)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(timeline.ColorGrayDim).Render(path))

	return strings.Join(lines, "\n")
}

func (m Model) renderMarkdown(md string) string {
	rendered := md
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(md); err == nil {
			rendered = out
		}
	}
	return strings.TrimRight(rendered, "\n ")
}

// stageMarkdown builds the details pane content for a stage.
func stageMarkdown(item StageItem) string {
	stage := item.Card.Stage

	var md strings.Builder
	md.WriteString("# " + stage.Title + "\n\n")
	md.WriteString("**" + timeline.WindowLabel(stage, item.Card.Window) + "**")
	if !stage.IsInstant() {
		md.WriteString(fmt.Sprintf(" · %d business days", stage.Duration))
	}
	md.WriteString("\n\n")

	if stage.Summary != "" {
		md.WriteString(stage.Summary + "\n\n")
	}
	for _, bullet := range stage.Bullets {
		md.WriteString("- " + bullet + "\n")
	}
	if len(stage.Bullets) > 0 {
		md.WriteString("\n")
	}
	if stage.Note != "" {
		md.WriteString("> " + stage.Note + "\n\n")
	}
	if item.Card.Handoff != "" {
		md.WriteString("*" + item.Card.Handoff + "*\n")
	}
	return md.String()
}

func (m Model) renderFooter() string {
	help := m.keys.ShortHelp()
	if m.isDateInput {
		help = "enter confirm  esc cancel"
	} else if m.isEditing {
		help = "esc save & exit  ctrl+s save  ctrl+c cancel"
	} else if m.focusedPane == 1 {
		help = "↑↓ scroll details  tab stages  e note  ? help"
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(timeline.ColorBlue).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(timeline.ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

// fileHyperlink wraps a file path in an OSC 8 terminal hyperlink so it's clickable.
func fileHyperlink(path string) string {
	return fmt.Sprintf("\x1b]8;;file://%s\x1b\\%s\x1b]8;;\x1b\\", path, path)
}

func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		line := lines[idx]
		if lineWidth := lipgloss.Width(line); lineWidth < width {
			return line + strings.Repeat(" ", width-lineWidth)
		}
		return line
	}
	return strings.Repeat(" ", width)
}

func placeOverlay(modal string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
