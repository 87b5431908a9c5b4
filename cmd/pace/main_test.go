package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestWindowsJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "windows", "--dir", dir, "--target", "2024-06-14", "--json")
	require.NoError(t, err)

	var result struct {
		Target string       `json:"target"`
		Stages []windowJSON `json:"stages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "2024-06-14", result.Target)
	require.Len(t, result.Stages, 7)

	want := map[int][2]string{
		0: {"2024-05-17", "2024-05-17"},
		1: {"2024-05-17", "2024-05-21"},
		2: {"2024-05-22", "2024-05-27"},
		3: {"2024-05-28", "2024-06-04"},
		4: {"2024-06-05", "2024-06-07"},
		5: {"2024-06-10", "2024-06-14"},
		6: {"2024-06-14", "2024-06-14"},
	}
	for _, s := range result.Stages {
		assert.Equal(t, want[s.ID], [2]string{s.Start, s.End}, "stage %d", s.ID)
	}
	assert.Equal(t, "2024-06-07", result.Stages[5].Handoff)
	assert.Empty(t, result.Stages[6].Handoff)
}

func TestWindowsText(t *testing.T) {
	out, err := runCLI(t, "windows", "--dir", t.TempDir(), "--target", "2024-06-14")
	require.NoError(t, err)

	assert.Contains(t, out, "Target completion: Jun 14, 2024")
	assert.Contains(t, out, "Estimated window: Jun 10, 2024 – Jun 14, 2024")
	assert.Contains(t, out, "Milestone • May 17, 2024")
	assert.Contains(t, out, "Stay on pace: complete previous tasks by Jun 7.")
}

func TestWindowsUsesConfigTarget(t *testing.T) {
	dir := t.TempDir()
	config := "{\n  // pinned for the demo\n  \"target\": \"2024-07-01\",\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.jsonc"), []byte(config), 0644))

	out, err := runCLI(t, "windows", "--dir", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"target": "2024-07-01"`)
}

func TestWindowsInvalidTarget(t *testing.T) {
	_, err := runCLI(t, "windows", "--dir", t.TempDir(), "--target", "June 14")
	assert.ErrorContains(t, err, "--target")
}

func TestStages(t *testing.T) {
	out, err := runCLI(t, "stages", "--dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "0. Stage 0: Welcome to Clarity (milestone)")
	assert.Contains(t, out, "3. Stage 3: Planning Your Setup (6 business days)")
}

func TestBar(t *testing.T) {
	out, err := runCLI(t, "bar", "--dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "3: Planning Your Setup")
	assert.Contains(t, out, "Total: 21 business days")
}

func TestDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACE_DIR", dir)

	_, err := runCLI(t, "stages")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "stages"))
}

func TestInitSeedsCatalog(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()

	out, err := runCLI(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote stage files")
	assert.FileExists(t, filepath.Join(dir, "stages", "03-planning-your-setup.md"))
	assert.DirExists(t, filepath.Join(dir, ".git"))

	out, err = runCLI(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "already present")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCLI(t, "frobnicate", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "unknown command: frobnicate")
}
