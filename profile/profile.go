// Package profile defines the output profiles that select between the
// author-list document variants.
package profile

import (
	"fmt"

	"github.com/lehigh-university-libraries/authorlist/roster"
)

// PaperName selects how cal:authorNamePaper is produced.
type PaperName string

const (
	PaperNameNone                  PaperName = "none"
	PaperNameAbbreviatedPlusFamily PaperName = "abbreviated-plus-family"
)

// Granularity selects the precision of cal:creationDate.
type Granularity string

const (
	GranularityDay    Granularity = "day"
	GranularityMinute Granularity = "minute"
)

// Placement selects where the author identifier block goes relative to the
// affiliation references.
type Placement string

const (
	PlaceBeforeAffiliations Placement = "before-affiliations"
	PlaceAfterAffiliations  Placement = "after-affiliations"
)

// DefaultCollaboration is used for the collaboration name and experiment
// number when a profile leaves them empty.
const DefaultCollaboration = "E143"

// Profile is one output variant.
type Profile struct {
	// Name is the profile identifier (e.g., "minimal")
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Ordering assigns affiliation identifiers ("first-seen" or "lexicographic")
	Ordering roster.Ordering `yaml:"ordering" json:"ordering"`

	// Collation is the text comparison for lexicographic ordering
	Collation roster.Collation `yaml:"collation,omitempty" json:"collation,omitempty"`

	// IncludeCollaboration emits cal:collaborations and org status back-references
	IncludeCollaboration bool `yaml:"include_collaboration" json:"include_collaboration"`

	// Collaboration names the single collaboration record
	Collaboration Collaboration `yaml:"collaboration,omitempty" json:"collaboration,omitempty"`

	// PaperName selects the paper display name format
	PaperName PaperName `yaml:"paper_name" json:"paper_name"`

	// TimestampGranularity is the precision of the creation date
	TimestampGranularity Granularity `yaml:"timestamp_granularity" json:"timestamp_granularity"`

	// IdentifierPlacement orders cal:authorids relative to cal:authorAffiliations
	IdentifierPlacement Placement `yaml:"identifier_placement" json:"identifier_placement"`
}

// Collaboration holds the collaboration record's display values.
type Collaboration struct {
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	Experiment string `yaml:"experiment,omitempty" json:"experiment,omitempty"`
}

// ApplyDefaults fills empty fields with the minimal variant values.
func (p *Profile) ApplyDefaults() {
	if p.Ordering == "" {
		p.Ordering = roster.OrderLexicographic
	}
	if p.Collation == "" {
		p.Collation = roster.CollateCodepoint
	}
	if p.PaperName == "" {
		p.PaperName = PaperNameNone
	}
	if p.TimestampGranularity == "" {
		p.TimestampGranularity = GranularityDay
	}
	if p.IdentifierPlacement == "" {
		p.IdentifierPlacement = PlaceBeforeAffiliations
	}
	if p.Collaboration.Name == "" {
		p.Collaboration.Name = DefaultCollaboration
	}
	if p.Collaboration.Experiment == "" {
		p.Collaboration.Experiment = DefaultCollaboration
	}
}

// Validate rejects unknown enumeration values.
func (p *Profile) Validate() error {
	switch p.Ordering {
	case roster.OrderFirstSeen, roster.OrderLexicographic:
	default:
		return fmt.Errorf("profile %s: unknown ordering %q", p.Name, p.Ordering)
	}
	switch p.Collation {
	case roster.CollateCodepoint, roster.CollateUnicode:
	default:
		return fmt.Errorf("profile %s: unknown collation %q", p.Name, p.Collation)
	}
	switch p.PaperName {
	case PaperNameNone, PaperNameAbbreviatedPlusFamily:
	default:
		return fmt.Errorf("profile %s: unknown paper_name %q", p.Name, p.PaperName)
	}
	switch p.TimestampGranularity {
	case GranularityDay, GranularityMinute:
	default:
		return fmt.Errorf("profile %s: unknown timestamp_granularity %q", p.Name, p.TimestampGranularity)
	}
	switch p.IdentifierPlacement {
	case PlaceBeforeAffiliations, PlaceAfterAffiliations:
	default:
		return fmt.Errorf("profile %s: unknown identifier_placement %q", p.Name, p.IdentifierPlacement)
	}
	return nil
}

// IndexOptions returns the affiliation indexing policy of the profile.
func (p *Profile) IndexOptions() roster.IndexOptions {
	return roster.IndexOptions{
		Ordering:  p.Ordering,
		Collation: p.Collation,
	}
}

// TimestampLayout returns the time layout for cal:creationDate.
func (p *Profile) TimestampLayout() string {
	if p.TimestampGranularity == GranularityMinute {
		return "2006-01-02_15:04"
	}
	return "2006-01-02"
}
