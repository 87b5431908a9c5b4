package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) {
	c <- msg
}

func startTestWatcher(t *testing.T) (*catalog.Store, chanSender) {
	t.Helper()
	s, err := catalog.NewStore(t.TempDir())
	require.NoError(t, err)

	msgs := make(chanSender, 16)
	cleanup, err := startWatcher(s, msgs, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return s, msgs
}

func expectMsg(t *testing.T, msgs chanSender) {
	t.Helper()
	select {
	case msg := <-msgs:
		assert.IsType(t, CatalogChangedMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no CatalogChangedMsg after file change")
	}
}

func TestWatcherStageFile(t *testing.T) {
	s, msgs := startTestWatcher(t)

	path := filepath.Join(s.StagesDir(), "01-getting-started.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nid: 1\ntitle: Getting Started\nduration: 3\n---\n"), 0644))

	expectMsg(t, msgs)
}

func TestWatcherConfigFile(t *testing.T) {
	s, msgs := startTestWatcher(t)

	require.NoError(t, os.WriteFile(s.ConfigPath(), []byte(`{"lead_business_days": 10}`), 0644))

	expectMsg(t, msgs)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	s, msgs := startTestWatcher(t)

	path := filepath.Join(s.StagesDir(), "02-kickoff.md")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("---\nid: 2\ntitle: Kickoff\nduration: 4\n---\n"), 0644))
	}

	expectMsg(t, msgs)
	select {
	case <-msgs:
		t.Fatal("burst of writes produced more than one message")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	s, msgs := startTestWatcher(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.StagesDir(), ".01-stage.md.swp"), []byte("x"), 0644))

	select {
	case <-msgs:
		t.Fatal("unexpected message for swap file")
	case <-time.After(200 * time.Millisecond):
	}
}
