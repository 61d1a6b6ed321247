// Package clock abstracts the host clock and timezone database behind a small
// capability interface so the resolver and converter can be exercised against
// a pinned instant and local zone in tests.
package clock

import (
	"os"
	"strings"
	"time"
)

// Clock provides the current instant, the identifier of the caller's local
// zone, and access to the host timezone database.
type Clock interface {
	Now() time.Time
	LocalID() string
	Location(name string) (*time.Location, error)
}

// System reads the real clock and the runtime's timezone database.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Location(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

// LocalID names the host's local zone. The Go runtime calls the local
// location "Local", which hides the IANA name, so fall back to the TZ
// variable and the usual /etc locations before giving up.
func (System) LocalID() string {
	if name := time.Local.String(); name != "Local" && name != "" {
		return name
	}
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		if zone := strings.TrimSpace(string(data)); zone != "" {
			return zone
		}
	}
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			return link[i+len("zoneinfo/"):]
		}
	}
	// "Local" still loads through time.LoadLocation, it just displays less
	// nicely than an IANA name.
	return "Local"
}

// Fixed pins the instant and local zone so tests are deterministic.
type Fixed struct {
	Instant time.Time
	ZoneID  string
}

func (f Fixed) Now() time.Time  { return f.Instant }
func (f Fixed) LocalID() string { return f.ZoneID }

func (Fixed) Location(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
