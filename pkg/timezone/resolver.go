// Package timezone resolves free-text phrases ("PST", "new york",
// "Europe/Berlin") to candidate IANA zone identifiers.
package timezone

import (
	"log/slog"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/tzq-dev/tzq/pkg/clock"
	"github.com/tzq-dev/tzq/pkg/tzdata"
)

// Resolver turns one free-text token into zero or more zone identifiers.
// It is safe for concurrent use; the only mutable state is the location
// cache, and otter handles its own locking.
type Resolver struct {
	clock     clock.Clock
	logger    *slog.Logger
	locations *otter.Cache[string, *time.Location]
}

func New(clk clock.Clock, logger *slog.Logger) *Resolver {
	// One entry per zone the host database knows about is well under 4k.
	cache := otter.Must(&otter.Options[string, *time.Location]{
		MaximumSize: 4096,
	})
	return &Resolver{clock: clk, logger: logger, locations: cache}
}

// Resolve maps input to candidate zone identifiers. Precedence, first
// non-empty result wins:
//  1. input is a valid Region/City identifier verbatim
//  2. title-cased reconstruction of input is a valid identifier
//  3. short-form table
//  4. abbreviation table (full candidate list, order preserved)
//  5. city table
//
// An empty result means the phrase is unresolvable. More than one result
// means the phrase is an ambiguous abbreviation.
func (r *Resolver) Resolve(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	if r.validZoneID(trimmed) {
		return []string{trimmed}
	}
	if guess := canonicalGuess(trimmed); guess != trimmed && r.validZoneID(guess) {
		return []string{guess}
	}

	lower := strings.ToLower(trimmed)
	if zone, ok := tzdata.ShortForms[lower]; ok {
		return []string{zone}
	}
	if zones, ok := tzdata.Abbreviations[lower]; ok {
		out := make([]string, len(zones))
		copy(out, zones)
		return out
	}
	if zone, ok := tzdata.Cities[lower]; ok {
		return []string{zone}
	}

	r.logger.Debug("unresolvable timezone phrase", "input", trimmed)
	return nil
}

// DisambiguationLabel returns a display name for zoneID when it was reached
// through an ambiguous abbreviation, and "" when no disambiguation is needed.
func (r *Resolver) DisambiguationLabel(zoneID, originalLabel string) string {
	zones, ok := tzdata.Abbreviations[strings.ToLower(strings.TrimSpace(originalLabel))]
	if !ok || len(zones) < 2 {
		return ""
	}
	if name, ok := tzdata.FullNames[zoneID]; ok {
		return name
	}
	return zoneID
}

// Location loads a zone by its exact identifier, caching the handle.
func (r *Resolver) Location(id string) (*time.Location, error) {
	if loc, ok := r.locations.GetIfPresent(id); ok {
		return loc, nil
	}
	loc, err := r.clock.Location(id)
	if err != nil {
		return nil, err
	}
	r.locations.Set(id, loc)
	return loc, nil
}

// validZoneID reports whether id names a hierarchical Region/City zone in the
// host database. Bare POSIX names like "CET" or "EST" do load, but they are
// abbreviations to this system and must go through the tables so that
// ambiguity and default interpretations apply.
func (r *Resolver) validZoneID(id string) bool {
	if !strings.Contains(id, "/") {
		return false
	}
	_, err := r.Location(id)
	return err == nil
}

// canonicalGuess rebuilds input in canonical identifier casing: each
// underscore-delimited word within each slash-delimited segment is
// title-cased, so "europe/berlin" becomes "Europe/Berlin" and
// "america/new_york" becomes "America/New_York".
func canonicalGuess(s string) string {
	segments := strings.Split(s, "/")
	for i, segment := range segments {
		words := strings.Split(segment, "_")
		for j, word := range words {
			if word == "" {
				continue
			}
			words[j] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
		segments[i] = strings.Join(words, "_")
	}
	return strings.Join(segments, "/")
}
