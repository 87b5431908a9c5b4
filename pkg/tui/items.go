package tui

import (
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
	"github.com/stefanpenner/pace/pkg/timeline"
)

// StageItem is one row of the stage list.
type StageItem struct {
	Card  timeline.Card
	Short string // compact window, e.g. "May 22 – May 27"
}

// BuildStageItems pairs every stage with its window for display.
func BuildStageItems(c *catalog.Catalog, windows schedule.WindowMap) []StageItem {
	cards := timeline.Cards(c, windows)
	items := make([]StageItem, 0, len(cards))
	for _, card := range cards {
		items = append(items, StageItem{Card: card, Short: shortWindow(card)})
	}
	return items
}

func shortWindow(card timeline.Card) string {
	if card.Stage.IsInstant() {
		return timeline.FormatShort(card.Window.Start)
	}
	return timeline.FormatShort(card.Window.Start) + " – " + timeline.FormatShort(card.Window.End)
}

// IsMilestone reports whether the row should be drawn as a milestone.
func (it StageItem) IsMilestone() bool {
	return it.Card.Stage.IsMilestone || it.Card.Stage.IsInstant()
}
