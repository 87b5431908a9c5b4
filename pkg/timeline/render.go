package timeline

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
)

const minCardWidth = 30

// Card is everything needed to draw one stage.
type Card struct {
	Stage   catalog.Stage
	Window  schedule.Window
	Handoff string // empty when the stage has no handoff hint
}

// Cards pairs every stage with its window and handoff hint, in catalog order.
func Cards(c *catalog.Catalog, windows schedule.WindowMap) []Card {
	cards := make([]Card, 0, len(c.Stages))
	for i, s := range c.Stages {
		card := Card{Stage: s, Window: windows[s.ID]}
		if by, ok := Handoff(c.Stages, windows, i); ok {
			card.Handoff = HandoffLabel(by)
		}
		cards = append(cards, card)
	}
	return cards
}

// RenderCard draws a bordered stage card at the given outer width.
func RenderCard(card Card, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - CardStyle.GetHorizontalFrameSize()
	text := lipgloss.NewStyle().Width(inner)

	var lines []string

	index := CardIndexStyle.Render(strconv.Itoa(card.Stage.ID))
	title := card.Stage.Title
	if card.Stage.IsMilestone {
		title = IconMilestone + " " + title
	}
	lines = append(lines, index+" "+CardTitleStyle.Render(title))
	lines = append(lines, WindowStyle.Render(WindowLabel(card.Stage, card.Window)))

	if card.Stage.Summary != "" {
		lines = append(lines, "", text.Inherit(SummaryStyle).Render(card.Stage.Summary))
	}

	if len(card.Stage.Bullets) > 0 {
		lines = append(lines, "")
		bullet := lipgloss.NewStyle().Width(inner - 2).Inherit(BulletStyle)
		for _, item := range card.Stage.Bullets {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, IconBullet+" ", bullet.Render(item)))
		}
	}

	if card.Stage.Note != "" {
		lines = append(lines, "", text.Inherit(NoteStyle).Render(card.Stage.Note))
	}

	if card.Handoff != "" {
		lines = append(lines, "", HandoffStyle.Render(card.Handoff))
	}

	style := CardStyle
	if card.Stage.IsMilestone {
		style = MilestoneCardStyle
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// RenderBar draws the proportional timeline, one row per segment.
func RenderBar(segments []Segment, width int) string {
	labelWidth := 0
	for _, s := range segments {
		if w := lipgloss.Width(s.Label); w > labelWidth {
			labelWidth = w
		}
	}

	trackWidth := width - labelWidth - 22
	if trackWidth < 10 {
		trackWidth = 10
	}

	label := BarLabelStyle.Width(labelWidth + 2)
	days := BarDaysStyle.Width(18)

	var rows []string
	for _, s := range segments {
		filled := trackWidth * s.Percent / 100
		if filled > trackWidth {
			filled = trackWidth
		}
		track := BarFillStyle.Render(strings.Repeat(BarFill, filled)) +
			BarTrackStyle.Render(strings.Repeat(BarTrack, trackWidth-filled))
		rows = append(rows, label.Render(s.Label)+days.Render(s.DurationLabel())+track)
	}
	return strings.Join(rows, "\n")
}
