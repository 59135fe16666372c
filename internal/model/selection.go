package model

import (
	"encoding/json"
	"fmt"
)

// SiteSelection is either "all sites" or one named launch site.
// The zero value selects all sites.
type SiteSelection struct {
	site     string
	specific bool
}

// AllSites selects every launch site
func AllSites() SiteSelection {
	return SiteSelection{}
}

// Site selects a single launch site by name
func Site(name string) SiteSelection {
	return SiteSelection{site: name, specific: true}
}

// ParseSiteSelection converts a wire value into a selection.
// An empty value means all sites; anything else is taken as a site name.
func ParseSiteSelection(value string) SiteSelection {
	if value == "" {
		return AllSites()
	}
	return Site(value)
}

// IsAll reports whether no site filter applies
func (s SiteSelection) IsAll() bool {
	return !s.specific
}

// Name returns the selected site, or "" for all sites
func (s SiteSelection) Name() string {
	return s.site
}

// Matches reports whether a record's launch site passes the selection
func (s SiteSelection) Matches(site string) bool {
	return !s.specific || s.site == site
}

// WireValue is the inverse of ParseSiteSelection
func (s SiteSelection) WireValue() string {
	return s.site
}

func (s SiteSelection) String() string {
	if !s.specific {
		return "All Sites"
	}
	return s.site
}

type siteSelectionJSON struct {
	All  bool   `json:"all"`
	Site string `json:"site,omitempty"`
}

func (s SiteSelection) MarshalJSON() ([]byte, error) {
	return json.Marshal(siteSelectionJSON{All: !s.specific, Site: s.site})
}

func (s *SiteSelection) UnmarshalJSON(data []byte) error {
	var raw siteSelectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding site selection: %w", err)
	}
	if raw.All {
		if raw.Site != "" {
			return fmt.Errorf("site selection cannot be both all sites and %q", raw.Site)
		}
		*s = AllSites()
		return nil
	}
	*s = Site(raw.Site)
	return nil
}

// PayloadRange is an inclusive payload mass interval in kilograms
type PayloadRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Valid reports whether the range is non-inverted
func (r PayloadRange) Valid() bool {
	return r.Low <= r.High
}

// Contains reports whether payload lies within [Low, High].
// An inverted range contains nothing.
func (r PayloadRange) Contains(payload float64) bool {
	return r.Low <= payload && payload <= r.High
}

// Selection is the full UI state sent by the dashboard
type Selection struct {
	Site  SiteSelection `json:"site"`
	Range PayloadRange  `json:"range"`
}
