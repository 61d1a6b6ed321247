package targets

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tzq-dev/tzq/pkg/clock"
	"github.com/tzq-dev/tzq/pkg/query"
	"github.com/tzq-dev/tzq/pkg/timezone"
)

func testAssembler() *Assembler {
	clk := clock.Fixed{
		Instant: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
		ZoneID:  "Europe/Berlin",
	}
	return New(clk, timezone.New(clk, slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func zoneIDs(list []Target) []string {
	out := make([]string, len(list))
	for i, target := range list {
		out[i] = target.ZoneID
	}
	return out
}

func TestAssembleLocalZoneAlwaysFirst(t *testing.T) {
	a := testAssembler()

	got := a.Assemble(query.ParsedQuery{SourceZone: "America/Los_Angeles"}, "")
	if len(got) != 1 {
		t.Fatalf("Assemble = %v, want just the local zone", got)
	}
	if got[0].ZoneID != "Europe/Berlin" || got[0].Label != "" {
		t.Errorf("local entry = %+v, want Europe/Berlin with no label", got[0])
	}
}

func TestAssembleExplicitTargetAndFavorites(t *testing.T) {
	a := testAssembler()

	pq := query.ParsedQuery{SourceZone: "America/Los_Angeles", TargetZone: "Asia/Tokyo"}
	got := a.Assemble(pq, "CET, Nonexistent, Tokyo, new york")

	want := []string{"Europe/Berlin", "Asia/Tokyo", "America/New_York"}
	ids := zoneIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("Assemble zones = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("zone[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestAssembleNeverDuplicates(t *testing.T) {
	a := testAssembler()

	pq := query.ParsedQuery{SourceZone: "Europe/Berlin", TargetZone: "Europe/Berlin"}
	got := a.Assemble(pq, "CET, berlin, germany, Europe/Berlin")
	if len(got) != 1 {
		t.Fatalf("Assemble = %v, want a single Europe/Berlin entry", zoneIDs(got))
	}
}

func TestAssembleExpandsAmbiguousFavoritesWithLabels(t *testing.T) {
	a := testAssembler()

	got := a.Assemble(query.ParsedQuery{SourceZone: "Europe/London"}, "IST")
	want := map[string]string{
		"Europe/Berlin":  "",
		"Asia/Kolkata":   "India Standard Time",
		"Asia/Jerusalem": "Israel Standard Time",
		"Europe/Dublin":  "Irish Standard Time",
	}
	if len(got) != len(want) {
		t.Fatalf("Assemble = %v, want %d entries", got, len(want))
	}
	for _, target := range got {
		label, ok := want[target.ZoneID]
		if !ok {
			t.Errorf("unexpected zone %q", target.ZoneID)
			continue
		}
		if target.Label != label {
			t.Errorf("label for %q = %q, want %q", target.ZoneID, target.Label, label)
		}
	}
}

func TestAssembleKeepsUnresolvableExplicitTarget(t *testing.T) {
	a := testAssembler()

	// The parser validated the target already, so an unresolvable identifier
	// here is kept verbatim rather than dropped.
	pq := query.ParsedQuery{SourceZone: "Europe/London", TargetZone: "Mars/Olympus_Mons"}
	got := a.Assemble(pq, "")
	ids := zoneIDs(got)
	if len(ids) != 2 || ids[1] != "Mars/Olympus_Mons" {
		t.Errorf("Assemble = %v, want the raw target preserved at index 1", ids)
	}
}

func TestInvalidFavorites(t *testing.T) {
	a := testAssembler()

	tests := []struct {
		name      string
		favorites string
		want      []string
	}{
		{"one bad entry", "CET, Nonexistent, Tokyo", []string{"Nonexistent"}},
		{"all good", "CET, Tokyo, new york", nil},
		{"empty string", "", nil},
		{"only commas and spaces", " , ,, ", nil},
		{"multiple bad entries", "Narnia, Tokyo, Mordor", []string{"Narnia", "Mordor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.InvalidFavorites(tt.favorites)
			if len(got) != len(tt.want) {
				t.Fatalf("InvalidFavorites(%q) = %v, want %v", tt.favorites, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
