// Package tzconvert converts a wall-clock time between timezones.
// The conversion is anchored on today's date so DST rules and day
// boundaries come out right for "what time is it there now-ish" queries.
package tzconvert

import (
	"fmt"
	"time"

	"github.com/tzq-dev/tzq/pkg/clock"
)

// ConvertedTime is the conversion result for a single target zone. Hour and
// Minute carry the target's local clock numerically so a result can be fed
// back in as a new source without re-parsing text.
type ConvertedTime struct {
	ZoneID        string `json:"zone_id"`
	Abbreviation  string `json:"abbreviation"`
	FormattedTime string `json:"formatted_time"`
	UTCOffsetText string `json:"utc_offset"`
	DayOffset     int    `json:"day_offset"`
	IsLocal       bool   `json:"is_local"`
	Label         string `json:"label,omitempty"`
	Hour          int    `json:"hour"`
	Minute        int    `json:"minute"`
}

// Converter computes zone-to-zone wall-clock conversions using the injected
// clock's idea of "today" and the host timezone database.
type Converter struct {
	clock      clock.Clock
	twelveHour bool
}

type Option func(*Converter)

// WithTwelveHour switches formatted output to a 12-hour clock.
func WithTwelveHour() Option {
	return func(c *Converter) { c.twelveHour = true }
}

func New(clk clock.Clock, opts ...Option) *Converter {
	c := &Converter{clock: clk}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert interprets hour:minute as today's wall-clock time in sourceZone
// and returns the equivalent wall-clock time in targetZone. Both zones must
// already be validated identifiers; a load failure here is a programming
// error upstream, not user input.
func (c *Converter) Convert(hour, minute int, sourceZone, targetZone, label string) (ConvertedTime, error) {
	srcLoc, err := c.clock.Location(sourceZone)
	if err != nil {
		return ConvertedTime{}, fmt.Errorf("loading source zone %q: %w", sourceZone, err)
	}
	tgtLoc, err := c.clock.Location(targetZone)
	if err != nil {
		return ConvertedTime{}, fmt.Errorf("loading target zone %q: %w", targetZone, err)
	}

	year, month, day := c.clock.Now().UTC().Date()
	src := time.Date(year, month, day, hour, minute, 0, 0, srcLoc)
	tgt := src.In(tgtLoc)

	abbrev, offsetSeconds := tgt.Zone()

	return ConvertedTime{
		ZoneID:        targetZone,
		Abbreviation:  abbrev,
		FormattedTime: c.formatTime(tgt),
		UTCOffsetText: FormatUTCOffset(offsetSeconds),
		DayOffset:     dayDelta(src, tgt),
		IsLocal:       targetZone == c.clock.LocalID(),
		Label:         label,
		Hour:          tgt.Hour(),
		Minute:        tgt.Minute(),
	}, nil
}

// dayDelta counts whole calendar days between the target's local date and
// the source's local date. Proper date subtraction, so month and year
// boundaries need no special casing.
func dayDelta(src, tgt time.Time) int {
	sy, sm, sd := src.Date()
	ty, tm, td := tgt.Date()
	srcDay := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	tgtDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(tgtDay.Sub(srcDay).Hours() / 24)
}

func (c *Converter) formatTime(t time.Time) string {
	if c.twelveHour {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// FormatUTCOffset renders a zone offset in seconds as +HH:MM or -HH:MM.
func FormatUTCOffset(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}

// FormatClock renders an hour/minute pair as plain 24-hour "H:MM" text, for
// redisplaying a converted result as new query input.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}
