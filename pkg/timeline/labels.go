// Package timeline turns scheduled windows into the text shown to a
// customer: window labels, the "stay on pace" handoff hint, the proportional
// timeline bar, and rendered stage cards.
package timeline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
)

const (
	longDate  = "Jan 2, 2006"
	shortDate = "Jan 2"
)

// FormatLong renders a date as "Jun 14, 2024".
func FormatLong(t time.Time) string {
	return t.Format(longDate)
}

// FormatShort renders a date as "Jun 14".
func FormatShort(t time.Time) string {
	return t.Format(shortDate)
}

// WindowLabel describes when a stage happens.
func WindowLabel(stage catalog.Stage, w schedule.Window) string {
	if stage.IsInstant() {
		return "Milestone • " + FormatLong(w.Start)
	}
	return fmt.Sprintf("Estimated window: %s – %s", FormatLong(w.Start), FormatLong(w.End))
}

// Handoff returns the end of the nearest earlier stage that takes business
// days, for the stage at index i. Milestones and zero-duration stages get no
// handoff.
func Handoff(stages []catalog.Stage, windows schedule.WindowMap, i int) (time.Time, bool) {
	if i < 0 || i >= len(stages) {
		return time.Time{}, false
	}
	if s := stages[i]; s.IsMilestone || s.IsInstant() {
		return time.Time{}, false
	}
	for j := i - 1; j >= 0; j-- {
		if stages[j].IsInstant() {
			continue
		}
		w, ok := windows[stages[j].ID]
		if !ok {
			return time.Time{}, false
		}
		return w.End, true
	}
	return time.Time{}, false
}

// HandoffLabel renders the handoff hint for a date.
func HandoffLabel(by time.Time) string {
	return fmt.Sprintf("Stay on pace: complete previous tasks by %s.", FormatShort(by))
}

// Segment is one bar of the proportional timeline.
type Segment struct {
	Label    string `json:"label"`
	Duration int    `json:"duration"`
	Percent  int    `json:"percent"`
}

// DurationLabel renders "3 business days".
func (s Segment) DurationLabel() string {
	return fmt.Sprintf("%d business days", s.Duration)
}

// Segments builds one segment per stage that takes business days, sized by
// its share of the catalog's total duration.
func Segments(c *catalog.Catalog) []Segment {
	total := c.TotalDuration()
	var segments []Segment
	for _, s := range c.Stages {
		if s.Duration <= 0 {
			continue
		}
		segments = append(segments, Segment{
			Label:    strings.Replace(s.Title, "Stage ", "", 1),
			Duration: s.Duration,
			Percent:  int(math.Round(float64(s.Duration) / float64(total) * 100)),
		})
	}
	return segments
}
