// Package sync shares a data directory's stage files through git.
package sync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ErrNotRepo is returned when the data directory has no git repository.
var ErrNotRepo = errors.New("not a git repository")

// repo runs git commands against one working tree, streaming their output.
type repo struct {
	dir string
	out io.Writer
}

func (r repo) cmd(args ...string) *exec.Cmd {
	return exec.Command("git", append([]string{"-C", r.dir}, args...)...)
}

// run executes git with output streamed to r.out.
func (r repo) run(args ...string) error {
	c := r.cmd(args...)
	c.Stdout = r.out
	c.Stderr = r.out
	return c.Run()
}

// quiet executes git and discards its output.
func (r repo) quiet(args ...string) error {
	return r.cmd(args...).Run()
}

// IsRepo reports whether dir is the top of a git working tree.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// InitRepo turns dir into a git repository if it isn't one and points origin
// at remote. An empty remote leaves any existing origin alone.
func InitRepo(dir, remote string, out io.Writer) error {
	r := repo{dir: dir, out: out}

	if !IsRepo(dir) {
		if err := r.run("init", "--quiet"); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		fmt.Fprintf(out, "Initialized git repository in %s\n", dir)
	}

	if remote == "" {
		fmt.Fprintln(out, "No remote specified. Use --remote <url> to set one.")
		return nil
	}

	// Missing origin is fine
	_ = r.quiet("remote", "remove", "origin")

	if err := r.run("remote", "add", "origin", remote); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	fmt.Fprintf(out, "Remote set to: %s\n", remote)
	return nil
}

// SyncRepo commits local stage edits, pulls, and pushes. A pull first tries
// to rebase and falls back to a merge; if both conflict the tree is restored
// and an error is returned.
func SyncRepo(dir string, out io.Writer) error {
	if !IsRepo(dir) {
		return fmt.Errorf("%s: %w (run 'pace init' first)", dir, ErrNotRepo)
	}
	r := repo{dir: dir, out: out}

	fmt.Fprintln(out, "Staging changes...")
	if err := r.quiet("add", "-A"); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	// diff --quiet exits non-zero when something is staged
	if err := r.quiet("diff", "--cached", "--quiet"); err != nil {
		msg := "pace: update timeline " + time.Now().Format("2006-01-02 15:04:05")
		if err := r.run("commit", "--quiet", "-m", msg); err != nil {
			return fmt.Errorf("git commit: %w", err)
		}
	}

	fmt.Fprintln(out, "Pulling...")
	if err := r.run("pull", "--rebase"); err != nil {
		fmt.Fprintln(out, "Rebase failed, trying merge...")
		_ = r.quiet("rebase", "--abort")

		if err := r.run("pull", "--no-rebase"); err != nil {
			_ = r.quiet("merge", "--abort")
			return errors.New("sync failed: could not rebase or merge, resolve conflicts manually")
		}
	}

	fmt.Fprintln(out, "Pushing...")
	if err := r.run("push"); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	fmt.Fprintln(out, "Sync complete.")
	return nil
}
