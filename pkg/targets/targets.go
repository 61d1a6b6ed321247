// Package targets builds the ordered, deduplicated list of zones a query's
// results are rendered for: the local zone, the explicit target if any, and
// the configured favorites.
package targets

import (
	"strings"

	"github.com/tzq-dev/tzq/pkg/clock"
	"github.com/tzq-dev/tzq/pkg/query"
	"github.com/tzq-dev/tzq/pkg/timezone"
)

// Target is one zone to convert into, with an optional disambiguation label
// carried along when the zone came from an ambiguous abbreviation.
type Target struct {
	ZoneID string
	Label  string
}

type Assembler struct {
	clock    clock.Clock
	resolver *timezone.Resolver
}

func New(clk clock.Clock, resolver *timezone.Resolver) *Assembler {
	return &Assembler{clock: clk, resolver: resolver}
}

// Assemble returns the zones to display for one parsed query. The local zone
// is always first; duplicates keep their first position. Unresolvable
// favorites are skipped here, having been surfaced via InvalidFavorites.
func (a *Assembler) Assemble(pq query.ParsedQuery, favorites string) []Target {
	seen := make(map[string]bool)
	var out []Target

	add := func(zoneID, label string) {
		if seen[zoneID] {
			return
		}
		seen[zoneID] = true
		out = append(out, Target{ZoneID: zoneID, Label: label})
	}

	add(a.clock.LocalID(), "")

	if pq.TargetZone != "" {
		zones := a.resolver.Resolve(pq.TargetZone)
		if len(zones) == 0 {
			// Already validated during parsing; keep the raw identifier
			// rather than silently dropping the user's explicit target.
			zones = []string{pq.TargetZone}
		}
		for _, zone := range zones {
			add(zone, "")
		}
	}

	for _, entry := range splitFavorites(favorites) {
		for _, zone := range a.resolver.Resolve(entry) {
			add(zone, a.resolver.DisambiguationLabel(zone, entry))
		}
	}

	return out
}

// InvalidFavorites returns the favorites entries that resolve to no zone at
// all, so the front end can warn once without blocking results.
func (a *Assembler) InvalidFavorites(favorites string) []string {
	var bad []string
	for _, entry := range splitFavorites(favorites) {
		if len(a.resolver.Resolve(entry)) == 0 {
			bad = append(bad, entry)
		}
	}
	return bad
}

func splitFavorites(favorites string) []string {
	var out []string
	for _, entry := range strings.Split(favorites, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}
