package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/pace/pkg/timeline"
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(timeline.ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(timeline.ColorGray)

	TargetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(timeline.ColorCyan)

	FooterStyle = lipgloss.NewStyle().
			Foreground(timeline.ColorGray)
)

// Stage list styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(timeline.ColorWhite).
			Background(timeline.ColorSelectionBg)

	MilestoneRowStyle = lipgloss.NewStyle().
				Foreground(timeline.ColorPurple)

	StageRowStyle = lipgloss.NewStyle().
			Foreground(timeline.ColorOffWhite)

	RowWindowStyle = lipgloss.NewStyle().
			Foreground(timeline.ColorGray)
)

// Strip styles, cycled across bar segments
var StripStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(timeline.ColorPurple),
	lipgloss.NewStyle().Foreground(timeline.ColorBlue),
	lipgloss.NewStyle().Foreground(timeline.ColorGreen),
	lipgloss.NewStyle().Foreground(timeline.ColorOrange),
	lipgloss.NewStyle().Foreground(timeline.ColorYellow),
}

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(timeline.ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(timeline.ColorPurple)
)

// Input styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(timeline.ColorPurple).
				Bold(true)
)

// Row icons
const (
	IconMilestone = "◆"
	IconStage     = "●"
	IconSelected  = "▶"
)
