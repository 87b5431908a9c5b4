package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/stefanpenner/pace/pkg/calendar"
	"github.com/stefanpenner/pace/pkg/catalog"
	"github.com/stefanpenner/pace/pkg/schedule"
	gsync "github.com/stefanpenner/pace/pkg/sync"
	"github.com/stefanpenner/pace/pkg/timeline"
	"github.com/stefanpenner/pace/pkg/tui"
)

const usage = `Usage: pace [command] [flags]

Commands:
  (none)     open the timeline TUI
  windows    print every stage with its estimated window
  stages     print the stage catalog
  bar        print the proportional timeline
  init       write the stage files and configure a git remote
  sync       commit, pull, and push the data directory

Flags:
`

type options struct {
	dir    string
	target string
	remote string
	json   bool
	width  int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet("pace", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.dir, "dir", "", "data directory (default $"+catalog.DirEnv+" or the OS data dir)")
	fs.StringVar(&opts.target, "target", "", "target completion date, YYYY-MM-DD")
	fs.StringVar(&opts.remote, "remote", "", "git remote URL for init")
	fs.BoolVar(&opts.json, "json", false, "print JSON")
	fs.IntVar(&opts.width, "width", 72, "card width for text output")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	s, err := catalog.NewStore(catalog.ResolveDataDir(opts.dir))
	if err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return runTUI(s, opts)
	}

	switch rest[0] {
	case "windows":
		return cmdWindows(s, opts, out)
	case "stages":
		return cmdStages(s, opts, out)
	case "bar":
		return cmdBar(s, opts, out)
	case "init":
		return cmdInit(s, opts, out)
	case "sync":
		return gsync.SyncRepo(s.Root, out)
	default:
		return fmt.Errorf("unknown command: %s\nUsage: pace [windows|stages|bar|init|sync]", rest[0])
	}
}

// resolveTarget returns the --target date, or the configured default.
func resolveTarget(s *catalog.Store, opts options) (time.Time, error) {
	if opts.target != "" {
		t, err := calendar.Parse(opts.target)
		if err != nil {
			return time.Time{}, fmt.Errorf("--target: %w", err)
		}
		return t, nil
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return time.Time{}, err
	}
	return cfg.DefaultTarget(time.Now())
}

func runTUI(s *catalog.Store, opts options) error {
	target, err := resolveTarget(s, opts)
	if err != nil {
		return err
	}

	m := tui.NewModel(s, target)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(s, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

// CLI Commands

type windowJSON struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Duration  int    `json:"duration"`
	Milestone bool   `json:"milestone"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Handoff   string `json:"handoff,omitempty"`
}

func cmdWindows(s *catalog.Store, opts options, out io.Writer) error {
	c, err := s.LoadCatalog()
	if err != nil {
		return err
	}
	target, err := resolveTarget(s, opts)
	if err != nil {
		return err
	}

	windows := schedule.Compute(c.Stages, target)

	if opts.json {
		result := struct {
			Target string       `json:"target"`
			Stages []windowJSON `json:"stages"`
		}{Target: calendar.Format(target)}

		for i, stage := range c.Stages {
			w := windows[stage.ID]
			entry := windowJSON{
				ID:        stage.ID,
				Title:     stage.Title,
				Duration:  stage.Duration,
				Milestone: stage.IsMilestone,
				Start:     calendar.Format(w.Start),
				End:       calendar.Format(w.End),
			}
			if by, ok := timeline.Handoff(c.Stages, windows, i); ok {
				entry.Handoff = calendar.Format(by)
			}
			result.Stages = append(result.Stages, entry)
		}
		return outputJSON(out, result)
	}

	fmt.Fprintf(out, "Target completion: %s\n\n", timeline.FormatLong(target))
	for _, card := range timeline.Cards(c, windows) {
		fmt.Fprintln(out, timeline.RenderCard(card, opts.width))
	}
	return nil
}

func cmdStages(s *catalog.Store, opts options, out io.Writer) error {
	c, err := s.LoadCatalog()
	if err != nil {
		return err
	}

	if opts.json {
		return outputJSON(out, c.Stages)
	}

	for _, stage := range c.Stages {
		kind := fmt.Sprintf("%d business days", stage.Duration)
		if stage.IsMilestone {
			kind = "milestone"
		}
		fmt.Fprintf(out, "%d. %s (%s)\n", stage.ID, stage.Title, kind)
	}
	return nil
}

func cmdBar(s *catalog.Store, opts options, out io.Writer) error {
	c, err := s.LoadCatalog()
	if err != nil {
		return err
	}

	segments := timeline.Segments(c)
	if opts.json {
		return outputJSON(out, segments)
	}

	fmt.Fprintln(out, timeline.RenderBar(segments, opts.width))
	fmt.Fprintf(out, "\nTotal: %d business days\n", c.TotalDuration())
	return nil
}

func cmdInit(s *catalog.Store, opts options, out io.Writer) error {
	err := s.Seed(catalog.Default())
	switch {
	case errors.Is(err, catalog.ErrAlreadySeeded):
		fmt.Fprintf(out, "Stage files already present in %s\n", s.StagesDir())
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Wrote stage files to %s\n", s.StagesDir())
	}
	return gsync.InitRepo(s.Root, opts.remote, out)
}

// JSON helpers

func outputJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
