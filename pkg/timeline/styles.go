package timeline

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the CLI and the TUI.
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorOrange      = lipgloss.Color("#D19A66")
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGrayDim).
			Padding(0, 1)

	MilestoneCardStyle = CardStyle.
				BorderForeground(ColorPurple)

	CardIndexStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorPurple).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	WindowStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	BulletStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	NoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorYellow)

	HandoffStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)
)

// Bar styles
var (
	BarLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	BarDaysStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	BarFillStyle = lipgloss.NewStyle().
			Foreground(ColorPurple)

	BarTrackStyle = lipgloss.NewStyle().
			Foreground(ColorGrayDim)
)

// Glyphs
const (
	IconMilestone = "◆"
	IconBullet    = "•"
	BarFill       = "█"
	BarTrack      = "░"
)
