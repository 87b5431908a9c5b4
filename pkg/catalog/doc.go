// Package catalog defines the ordered stages of an onboarding timeline and
// loads them from markdown stage files with YAML frontmatter.
//
// A catalog is configuration: ids run 0..N-1 in slice order, durations are
// whole business days, and zero-duration stages are instantaneous
// milestones that may appear anywhere in the sequence.
package catalog
