package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/natefinch/atomic"
)

const (
	dirPerms  = 0755
	filePerms = 0644
)

// ErrAlreadySeeded is returned by Seed when stage files are already on disk.
var ErrAlreadySeeded = errors.New("stage files already exist")

// Store manages the filesystem-backed stage catalog.
type Store struct {
	Root string // e.g., ~/.local/share/pace
}

// NewStore creates a Store rooted at the given directory.
// It creates the stages directory if it doesn't exist.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "stages"), dirPerms); err != nil {
		return nil, fmt.Errorf("creating stages directory: %w", err)
	}
	return &Store{Root: root}, nil
}

// StagesDir returns the path to the stages directory.
func (s *Store) StagesDir() string {
	return filepath.Join(s.Root, "stages")
}

// ConfigPath returns the path to config.jsonc.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.Root, "config.jsonc")
}

// LoadConfig reads config.jsonc from the data directory.
func (s *Store) LoadConfig() (Config, error) {
	return LoadConfig(s.ConfigPath())
}

// stageFiles lists the markdown files in the stages directory.
func (s *Store) stageFiles() ([]string, error) {
	entries, err := os.ReadDir(s.StagesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading stages directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		files = append(files, filepath.Join(s.StagesDir(), entry.Name()))
	}
	return files, nil
}

// HasStageFiles reports whether the catalog lives on disk rather than being
// the built-in default.
func (s *Store) HasStageFiles() (bool, error) {
	files, err := s.stageFiles()
	return len(files) > 0, err
}

// LoadCatalog reads every stage file, orders them by id, and validates the
// result. With no stage files on disk the built-in catalog is returned.
func (s *Store) LoadCatalog() (*Catalog, error) {
	files, err := s.stageFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return Default(), nil
	}

	c := &Catalog{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading stage %s: %w", filepath.Base(path), err)
		}
		stage, err := ParseStage(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing stage %s: %w", filepath.Base(path), err)
		}
		stage.FilePath = path
		c.Stages = append(c.Stages, *stage)
	}

	sort.SliceStable(c.Stages, func(i, j int) bool {
		return c.Stages[i].ID < c.Stages[j].ID
	})

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", s.StagesDir(), err)
	}
	return c, nil
}

// SaveStage writes a stage to disk. Stages loaded from disk keep their file;
// new ones get a name derived from id and title.
func (s *Store) SaveStage(stage *Stage) error {
	if err := os.MkdirAll(s.StagesDir(), dirPerms); err != nil {
		return fmt.Errorf("creating stages directory: %w", err)
	}

	content, err := SerializeStage(stage)
	if err != nil {
		return fmt.Errorf("serializing stage %d: %w", stage.ID, err)
	}

	path := stage.FilePath
	if path == "" {
		path = filepath.Join(s.StagesDir(), StageFileName(stage))
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing stage %d: %w", stage.ID, err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("setting permissions on stage %d: %w", stage.ID, err)
	}

	stage.FilePath = path
	return nil
}

// Seed writes every stage of c as its own file. It refuses to overwrite an
// existing catalog.
func (s *Store) Seed(c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	exists, err := s.HasStageFiles()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w in %s", ErrAlreadySeeded, s.StagesDir())
	}

	for i := range c.Stages {
		if err := s.SaveStage(&c.Stages[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetNote replaces the note on a stage. Editing the built-in catalog seeds
// it to disk first.
func (s *Store) SetNote(id int, note string) (*Stage, error) {
	exists, err := s.HasStageFiles()
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.Seed(Default()); err != nil {
			return nil, err
		}
	}

	c, err := s.LoadCatalog()
	if err != nil {
		return nil, err
	}
	stage, err := c.Stage(id)
	if err != nil {
		return nil, err
	}

	stage.Note = strings.TrimSpace(note)
	if err := s.SaveStage(&stage); err != nil {
		return nil, err
	}
	return &stage, nil
}

// StageFileName builds the file name for a stage, e.g. "03-planning-your-setup.md".
func StageFileName(stage *Stage) string {
	title := stage.Title
	// Drop the "Stage N:" prefix, the id already leads the name
	if idx := strings.Index(title, ":"); idx != -1 && strings.HasPrefix(title, "Stage ") {
		title = title[idx+1:]
	}
	return fmt.Sprintf("%02d-%s.md", stage.ID, slugify(title))
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "stage"
	}
	return b.String()
}
