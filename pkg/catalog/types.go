package catalog

import (
	"errors"
	"fmt"
)

// Catalog validation and lookup errors.
var (
	ErrNonDenseID        = errors.New("stage ids must run 0..N-1 in order")
	ErrNegativeDuration  = errors.New("stage duration must not be negative")
	ErrMilestoneDuration = errors.New("milestone stages must have zero duration")
	ErrEmptyCatalog      = errors.New("catalog has no stages")
	ErrStageNotFound     = errors.New("stage not found")
)

// Stage is one step of the onboarding timeline.
type Stage struct {
	// Frontmatter fields
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Duration    int    `yaml:"duration" json:"duration"`
	IsMilestone bool   `yaml:"milestone,omitempty" json:"milestone"`
	Note        string `yaml:"note,omitempty" json:"note,omitempty"`

	// Parsed from markdown body
	Summary string   `yaml:"-" json:"summary"`
	Bullets []string `yaml:"-" json:"bullets"`

	// Filesystem metadata (not serialized)
	FilePath string `yaml:"-" json:"-"`
}

// IsInstant reports whether the stage consumes no business days.
func (s Stage) IsInstant() bool {
	return s.Duration == 0
}

// Catalog is the ordered list of stages a timeline is built from.
type Catalog struct {
	Stages []Stage
}

// TotalDuration sums the business days of every stage.
func (c *Catalog) TotalDuration() int {
	total := 0
	for _, s := range c.Stages {
		total += s.Duration
	}
	return total
}

// Stage returns the stage with the given id.
func (c *Catalog) Stage(id int) (Stage, error) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, nil
		}
	}
	return Stage{}, fmt.Errorf("%w: %d", ErrStageNotFound, id)
}

// Validate checks that ids are dense and ordered and that durations are sane.
func (c *Catalog) Validate() error {
	if len(c.Stages) == 0 {
		return ErrEmptyCatalog
	}
	for i, s := range c.Stages {
		if s.ID != i {
			return fmt.Errorf("%w: position %d has id %d", ErrNonDenseID, i, s.ID)
		}
		if s.Duration < 0 {
			return fmt.Errorf("%w: stage %d has duration %d", ErrNegativeDuration, s.ID, s.Duration)
		}
		if s.IsMilestone && s.Duration != 0 {
			return fmt.Errorf("%w: stage %d has duration %d", ErrMilestoneDuration, s.ID, s.Duration)
		}
	}
	return nil
}
