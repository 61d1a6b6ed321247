package tzdata

// FullNames maps a zone to the display name shown when the zone was reached
// through an ambiguous abbreviation. Only zones that can be reached that way
// need an entry; the resolver falls back to the raw identifier otherwise.
var FullNames = map[string]string{
	"America/New_York":    "US Eastern Time",
	"America/Chicago":     "US Central Time",
	"America/Denver":      "US Mountain Time",
	"America/Los_Angeles": "US Pacific Time",
	"America/Halifax":     "Atlantic Time",
	"America/Havana":      "Cuba Standard Time",
	"Asia/Shanghai":       "China Standard Time",
	"Asia/Manila":         "Philippine Time",
	"Asia/Kolkata":        "India Standard Time",
	"Asia/Jerusalem":      "Israel Standard Time",
	"Europe/Dublin":       "Irish Standard Time",
	"Europe/London":       "British Time",
	"Asia/Dhaka":          "Bangladesh Standard Time",
	"Asia/Riyadh":         "Arabia Standard Time",
	"Australia/Sydney":    "Australian Eastern Time",
}
