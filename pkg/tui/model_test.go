package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday
var testTarget = time.Date(2024, 6, 14, 0, 0, 0, 0, time.Local)

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.Local)
}

func setupTestModel(t *testing.T) (Model, *catalog.Store) {
	t.Helper()
	s, err := catalog.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewModel(s, testTarget), s
}

func send(m Model, msg tea.Msg) Model {
	out, _ := m.Update(msg)
	return out.(Model)
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelComputesWindows(t *testing.T) {
	m, _ := setupTestModel(t)

	assert.Equal(t, testTarget, m.Target())
	assert.Equal(t, schedule.Compute(catalog.Default().Stages, testTarget), m.Windows())
	assert.Len(t, m.items, 7)
}

func TestShiftTargetByBusinessDays(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(m, keys("]"))
	assert.Equal(t, date(6, 17), m.Target())
	assert.Equal(t, date(6, 17), m.Windows()[6].End)

	m = send(m, keys("["))
	assert.Equal(t, date(6, 14), m.Target())

	m = send(m, keys("}"))
	assert.Equal(t, date(6, 21), m.Target())

	m = send(m, keys("{"))
	m = send(m, keys("{"))
	assert.Equal(t, date(6, 7), m.Target())

	m = send(m, keys("T"))
	assert.Equal(t, testTarget, m.Target())
	assert.Equal(t, schedule.Compute(catalog.Default().Stages, testTarget), m.Windows())
}

func TestTypedTargetDate(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(m, keys("t"))
	require.True(t, m.isDateInput)
	assert.Equal(t, "2024-06-14", m.dateInput.Value())

	m.dateInput.SetValue("2024-07-01")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.isDateInput)
	assert.Equal(t, date(7, 1), m.Target())
	assert.Equal(t, date(7, 1), m.Windows()[5].End)
}

func TestEmptyTargetDateSkipsRecompute(t *testing.T) {
	m, _ := setupTestModel(t)
	before := m.Windows()

	m = send(m, keys("t"))
	m.dateInput.SetValue("")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.isDateInput)
	assert.Equal(t, testTarget, m.Target())
	assert.Equal(t, before, m.Windows())
	assert.Equal(t, "No target date selected", m.statusMsg)
}

func TestInvalidTargetDateKeepsInputOpen(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(m, keys("t"))
	m.dateInput.SetValue("next week")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.isDateInput)
	assert.Equal(t, testTarget, m.Target())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.isDateInput)
	assert.Equal(t, testTarget, m.Target())
}

func TestCursorNavigation(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(m, keys("k"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m = send(m, keys("j"))
	}
	assert.Equal(t, 6, m.cursor)

	stage, ok := m.selectedStage()
	require.True(t, ok)
	assert.Equal(t, 6, stage.ID)

	// Details pane scrolls instead of moving the cursor
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(m, keys("j"))
	assert.Equal(t, 6, m.cursor)
	assert.Equal(t, 1, m.detailScroll)
}

func TestCatalogChangedReloads(t *testing.T) {
	m, s := setupTestModel(t)

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(s.StagesDir(), name), []byte(content), 0644))
	}
	write("00-start.md", "---\nid: 0\ntitle: Start\nduration: 0\nmilestone: true\n---\n")
	write("01-work.md", "---\nid: 1\ntitle: Work\nduration: 2\n---\n")

	m = send(m, CatalogChangedMsg{})

	require.Len(t, m.items, 2)
	assert.Equal(t, schedule.WindowMap{
		0: {Start: date(6, 13), End: date(6, 13)},
		1: {Start: date(6, 13), End: date(6, 14)},
	}, m.Windows())
}

func TestBrokenCatalogKeepsLastGood(t *testing.T) {
	m, s := setupTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.StagesDir(), "bad.md"), []byte("---\nid: 3\ntitle: Gap\nduration: 1\n---\n"), 0644))

	m = send(m, CatalogChangedMsg{})

	assert.Len(t, m.items, 7)
	assert.Contains(t, m.statusMsg, "Load error")
}

func TestInlineNoteEdit(t *testing.T) {
	m, s := setupTestModel(t)

	for i := 0; i < 4; i++ {
		m = send(m, keys("j"))
	}
	m = send(m, keys("e"))
	require.True(t, m.isEditing)
	assert.Equal(t, 4, m.editStageID)

	m.noteEditor.SetValue("Training booked for Tuesday.")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.isEditing)

	c, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "Training booked for Tuesday.", c.Stages[4].Note)
	assert.Equal(t, "Training booked for Tuesday.", m.items[4].Card.Stage.Note)
}

func TestInlineNoteEditCancel(t *testing.T) {
	m, s := setupTestModel(t)

	m = send(m, keys("e"))
	m.noteEditor.SetValue("discard me")
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, m.isEditing)

	exists, err := s.HasStageFiles()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHelpModal(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(m, keys("?"))
	assert.True(t, m.showHelpModal)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Keys don't leak through the modal
	m = send(m, keys("]"))
	assert.Equal(t, testTarget, m.Target())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelpModal)
}

func TestView(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	out := m.View()
	assert.Contains(t, out, "Onboarding timeline")
	assert.Contains(t, out, "Target Fri Jun 14, 2024")
	assert.Contains(t, out, "May 17 – Jun 14 · 21 business days")
	assert.Contains(t, out, "Stage 3: Planning Your Setup")
	assert.Contains(t, out, "May 28 – Jun 4")
}

func TestUntilLabel(t *testing.T) {
	assert.Equal(t, "due today", untilLabel(0))
	assert.Equal(t, "1 business day away", untilLabel(1))
	assert.Equal(t, "12 business days away", untilLabel(12))
	assert.Equal(t, "1 business day ago", untilLabel(-1))
	assert.Equal(t, "3 business days ago", untilLabel(-3))
}

func TestStageMarkdown(t *testing.T) {
	c := catalog.Default()
	items := BuildStageItems(c, schedule.Compute(c.Stages, testTarget))

	md := stageMarkdown(items[5])
	assert.Contains(t, md, "# Stage 5: Number Porting")
	assert.Contains(t, md, "**Estimated window: Jun 10, 2024 – Jun 14, 2024** · 5 business days")
	assert.Contains(t, md, "- Port Request")
	assert.Contains(t, md, "> Please allow up to 10 business days")
	assert.Contains(t, md, "*Stay on pace: complete previous tasks by Jun 7.*")

	md = stageMarkdown(items[0])
	assert.Contains(t, md, "**Milestone • May 17, 2024**")
	assert.NotContains(t, md, "Stay on pace")
}
