// Package schedule places every stage of a catalog into a calendar window by
// chaining business days backward from a target completion date.
package schedule

import (
	"time"

	"github.com/stefanpenner/pace/pkg/calendar"
	"github.com/stefanpenner/pace/pkg/catalog"
)

const (
	leadInStageID    = 0
	firstWorkStageID = 1
)

// Window is the span of calendar dates a stage is expected to occupy.
// Both ends are inclusive and normalized to midnight.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsInstant reports whether the window covers a single moment.
func (w Window) IsInstant() bool {
	return w.Start.Equal(w.End)
}

// WindowMap maps stage id to its window.
type WindowMap map[int]Window

// Span returns the earliest start and latest end across all windows.
func (wm WindowMap) Span() (start, end time.Time) {
	first := true
	for _, w := range wm {
		if first || w.Start.Before(start) {
			start = w.Start
		}
		if first || w.End.After(end) {
			end = w.End
		}
		first = false
	}
	return start, end
}

// Compute chains stages backward from target, last stage first. A stage of
// duration d ends at the cursor and spans d business days; the next earlier
// stage ends one business day before that. Zero-duration stages sit at the
// cursor without moving it. The lead-in stage (id 0) is then pinned to the
// start of stage 1 when stage 1 exists.
//
// Stages must satisfy catalog.Catalog.Validate. Compute never fails and
// always returns a new map with one entry per stage.
func Compute(stages []catalog.Stage, target time.Time) WindowMap {
	windows := make(WindowMap, len(stages))

	cursor := calendar.Date(target)
	for i := len(stages) - 1; i >= 0; i-- {
		var w Window
		w, cursor = place(stages[i], cursor)
		windows[stages[i].ID] = w
	}

	if first, ok := windows[firstWorkStageID]; ok {
		if _, ok := windows[leadInStageID]; ok {
			windows[leadInStageID] = Window{Start: first.Start, End: first.Start}
		}
	}

	return windows
}

// place is one step of the backward fold: it returns the stage's window and
// the cursor for the stage before it.
func place(stage catalog.Stage, cursor time.Time) (Window, time.Time) {
	if stage.IsInstant() {
		return Window{Start: cursor, End: cursor}, cursor
	}
	start := calendar.SubtractBusinessDays(cursor, stage.Duration-1)
	return Window{Start: start, End: cursor}, calendar.SubtractBusinessDays(start, 1)
}
