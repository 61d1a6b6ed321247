// Package query parses free-text time/timezone queries such as
// "7:22pm PST to CET" into a structured form. Parsing failures are data, not
// errors: callers check ParsedQuery.Err and show it to the user.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tzq-dev/tzq/pkg/timezone"
)

// ParsedQuery is the structured form of one query. Either Err is set, or
// Hour, Minute and SourceZone are fully populated. SourceLabel keeps the
// user's original source phrase so disambiguation labels can be looked up
// after the fact.
type ParsedQuery struct {
	TimeText    string `json:"time_text"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	SourceZone  string `json:"source_zone"`
	SourceLabel string `json:"source_label"`
	TargetZone  string `json:"target_zone,omitempty"`
	Err         string `json:"error,omitempty"`
}

var (
	// One or two digits, optional :MM or .MM, optional am/pm which may be
	// separated from the digits by whitespace. The trailing \b stops "am"
	// from eating the start of a zone phrase like "amsterdam".
	timePattern = regexp.MustCompile(`(?i)^(\d{1,2})(?:[:.](\d{2}))?(?:\s*([ap]m)\b)?`)

	// The word "to" splits the source phrase from the target phrase.
	targetSeparator = regexp.MustCompile(`(?i)\bto\b`)
)

const usageHint = `expected a time like "7pm", "19:30" or "7.30pm" followed by a timezone`

// Parser extracts a time of day and one or two timezone phrases from a
// single free-text string.
type Parser struct {
	resolver *timezone.Resolver
}

func New(resolver *timezone.Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse evaluates raw and returns either a fully populated query or a query
// whose Err field carries a user-facing message. It never panics and never
// returns a Go error.
func (p *Parser) Parse(raw string) ParsedQuery {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParsedQuery{Err: "empty query"}
	}

	m := timePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return ParsedQuery{Err: "invalid time format: " + usageHint}
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch meridiem := strings.ToLower(m[3]); meridiem {
	case "":
		if hour > 23 {
			return ParsedQuery{Err: "hour must be 0-23"}
		}
	default:
		if hour < 1 || hour > 12 {
			return ParsedQuery{Err: "hour must be 1-12 with am/pm"}
		}
		if meridiem == "pm" && hour != 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
	}
	if minute > 59 {
		return ParsedQuery{Err: "minute must be 0-59"}
	}

	pq := ParsedQuery{TimeText: m[0], Hour: hour, Minute: minute}
	rest := strings.TrimSpace(trimmed[len(m[0]):])

	sourcePhrase := rest
	targetPhrase := ""
	if loc := targetSeparator.FindStringIndex(rest); loc != nil {
		sourcePhrase = strings.TrimSpace(rest[:loc[0]])
		targetPhrase = strings.TrimSpace(rest[loc[1]:])
	}

	if sourcePhrase == "" {
		pq.Err = "missing source timezone"
		return pq
	}

	sources := p.resolver.Resolve(sourcePhrase)
	if len(sources) == 0 {
		pq.Err = "unknown timezone: " + sourcePhrase
		return pq
	}
	// An ambiguous abbreviation resolves to several zones; the first is the
	// working interpretation and the original phrase is kept for labeling.
	pq.SourceZone = sources[0]
	pq.SourceLabel = sourcePhrase

	if targetPhrase != "" {
		targets := p.resolver.Resolve(targetPhrase)
		if len(targets) == 0 {
			pq.SourceZone = ""
			pq.SourceLabel = ""
			pq.Err = "unknown target timezone: " + targetPhrase
			return pq
		}
		pq.TargetZone = targets[0]
	}

	return pq
}
