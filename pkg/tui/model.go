package tui

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/stefanpenner/pace/pkg/calendar"
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
	gsync "github.com/stefanpenner/pace/pkg/sync"
)

const businessWeek = 5

// CatalogChangedMsg is sent when the file watcher sees stage or config edits.
type CatalogChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// EditorFinishedMsg is sent when $EDITOR returns.
type EditorFinishedMsg struct {
	Err error
}

// Model is the Bubble Tea model for the timeline TUI.
type Model struct {
	store   *catalog.Store
	keys    KeyMap
	width   int
	height  int
	catalog *catalog.Catalog
	windows schedule.WindowMap
	items   []StageItem

	target        time.Time
	defaultTarget time.Time

	cursor       int
	focusedPane  int // 0 = stages, 1 = details
	detailScroll int

	showHelpModal bool

	// Target date input
	isDateInput bool
	dateInput   textinput.Model

	// Inline note editing
	isEditing   bool
	noteEditor  textarea.Model
	editStageID int

	// Status message
	statusMsg     string
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates a TUI model showing windows for target. The catalog is
// loaded from s immediately.
func NewModel(s *catalog.Store, target time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(calendar.DateLayout)

	m := Model{
		store:         s,
		keys:          DefaultKeyMap(),
		catalog:       catalog.Default(),
		target:        calendar.Date(target),
		defaultTarget: calendar.Date(target),
		dateInput:     ti,
	}
	m.reload()
	return m
}

// Target returns the date the timeline is currently anchored to.
func (m Model) Target() time.Time {
	return m.target
}

// Windows returns the windows currently on screen.
func (m Model) Windows() schedule.WindowMap {
	return m.windows
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.getGlamourRenderer(detailsWidth(msg.Width) - 2)
		if m.isEditing {
			m.noteEditor.SetWidth(detailsWidth(msg.Width))
			m.noteEditor.SetHeight(editorHeight(msg.Height))
		}
		return m, tea.ClearScreen

	case CatalogChangedMsg:
		m.reload()
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("Sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("Synced successfully")
			m.reload()
		}
		return m, nil

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.setStatus("Editor error: " + msg.Err.Error())
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.isDateInput {
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}

	if m.isEditing {
		var cmd tea.Cmd
		m.noteEditor, cmd = m.noteEditor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isDateInput {
		return m.handleDateInput(msg)
	}

	if m.isEditing {
		return m.handleEditMode(msg)
	}

	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focusedPane == 1 {
			if m.detailScroll > 0 {
				m.detailScroll--
			}
		} else if m.cursor > 0 {
			m.cursor--
			m.detailScroll = 0
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusedPane == 1 {
			m.detailScroll++
		} else if m.cursor < len(m.items)-1 {
			m.cursor++
			m.detailScroll = 0
		}

	case key.Matches(msg, m.keys.Tab):
		m.focusedPane = (m.focusedPane + 1) % 2

	case key.Matches(msg, m.keys.PrevDay):
		m.setTarget(calendar.SubtractBusinessDays(m.target, 1))

	case key.Matches(msg, m.keys.NextDay):
		m.setTarget(calendar.AddBusinessDays(m.target, 1))

	case key.Matches(msg, m.keys.PrevWeek):
		m.setTarget(calendar.SubtractBusinessDays(m.target, businessWeek))

	case key.Matches(msg, m.keys.NextWeek):
		m.setTarget(calendar.AddBusinessDays(m.target, businessWeek))

	case key.Matches(msg, m.keys.SetTarget):
		m.isDateInput = true
		m.dateInput.SetValue(calendar.Format(m.target))
		m.dateInput.CursorEnd()
		cmd := m.dateInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ResetTarget):
		m.setTarget(m.defaultTarget)

	case key.Matches(msg, m.keys.InlineEdit):
		if stage, ok := m.selectedStage(); ok {
			cmd := m.enterEditMode(stage)
			return m, cmd
		}

	case key.Matches(msg, m.keys.ExternalEdit):
		if stage, ok := m.selectedStage(); ok {
			cmd := m.openEditor(stage)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.setStatus("Reloaded")

	case key.Matches(msg, m.keys.Sync):
		m.setStatus("Syncing...")
		return m, m.doSync()

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = true
	}

	return m, nil
}

// handleDateInput handles key messages while the target date is being typed.
// An empty or malformed date never reaches the scheduler.
func (m Model) handleDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.isDateInput = false
		m.dateInput.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.dateInput.Value())
		if value == "" {
			m.isDateInput = false
			m.dateInput.Blur()
			m.setStatus("No target date selected")
			return m, nil
		}
		target, err := calendar.Parse(value)
		if err != nil {
			m.setStatus("Invalid date: use YYYY-MM-DD")
			return m, nil
		}
		m.isDateInput = false
		m.dateInput.Blur()
		m.setTarget(target)
		return m, nil

	default:
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}
}

func (m Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Save and exit
		m.saveInlineEdit()
		m.isEditing = false
		m.noteEditor.Blur()
		return m, nil

	case tea.KeyCtrlS:
		// Save but stay in edit mode
		m.saveInlineEdit()
		return m, nil

	case tea.KeyCtrlC:
		m.isEditing = false
		m.noteEditor.Blur()
		m.setStatus("Edit cancelled")
		return m, nil

	default:
		var cmd tea.Cmd
		m.noteEditor, cmd = m.noteEditor.Update(msg)
		return m, cmd
	}
}

// enterEditMode sets up the textarea for editing a stage's note.
func (m *Model) enterEditMode(stage catalog.Stage) tea.Cmd {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "Add a note for this stage"
	ta.SetValue(stage.Note)
	ta.SetWidth(detailsWidth(m.width))
	ta.SetHeight(editorHeight(m.height))

	m.isEditing = true
	m.noteEditor = ta
	m.editStageID = stage.ID
	m.focusedPane = 1
	return m.noteEditor.Focus()
}

// saveInlineEdit writes the textarea content back to the stage file.
func (m *Model) saveInlineEdit() {
	if _, err := m.store.SetNote(m.editStageID, m.noteEditor.Value()); err != nil {
		m.setStatus("Save error: " + err.Error())
		return
	}
	m.reload()
	m.setStatus("Saved")
}

// setTarget moves the anchor date and recomputes every window.
func (m *Model) setTarget(target time.Time) {
	m.target = calendar.Date(target)
	m.recompute()
	m.setStatus("Target: " + m.target.Format("Mon Jan 2, 2006"))
}

func (m *Model) recompute() {
	m.windows = schedule.Compute(m.catalog.Stages, m.target)
	m.items = BuildStageItems(m.catalog, m.windows)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// reload re-reads the catalog from disk. On failure the last good catalog
// stays on screen.
func (m *Model) reload() {
	c, err := m.store.LoadCatalog()
	if err != nil {
		m.setStatus("Load error: " + err.Error())
	} else {
		m.catalog = c
	}
	m.recompute()
}

func (m Model) selectedStage() (catalog.Stage, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return catalog.Stage{}, false
	}
	return m.items[m.cursor].Card.Stage, true
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}

// openEditor opens the stage file in $EDITOR, writing the built-in catalog
// to disk first if needed.
func (m *Model) openEditor(stage catalog.Stage) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	filePath := stage.FilePath
	if filePath == "" {
		if err := m.store.Seed(catalog.Default()); err != nil {
			m.setStatus("Error saving: " + err.Error())
			return nil
		}
		m.reload()
		if stage, ok := m.selectedStage(); ok {
			filePath = stage.FilePath
		}
	}
	if filePath == "" {
		m.setStatus("No file for this stage")
		return nil
	}

	c := exec.Command(editor, filePath)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}

func (m Model) doSync() tea.Cmd {
	dir := m.store.Root
	return func() tea.Msg {
		return SyncDoneMsg{Err: gsync.SyncRepo(dir, io.Discard)}
	}
}

// detailsWidth is the width of the right-hand pane for a terminal width.
func detailsWidth(total int) int {
	w := total - stagesWidth(total) - 1
	if w < 20 {
		w = 20
	}
	return w
}

func stagesWidth(total int) int {
	w := total * 2 / 5
	if w < 28 {
		w = 28
	}
	return w
}

func editorHeight(total int) int {
	h := total - chromeLines - 4
	if h < 3 {
		h = 3
	}
	return h
}
