// Package tzdata holds the immutable lookup tables that map timezone
// abbreviations, short-form names, and cities to IANA zone identifiers.
// All keys are lowercase; callers lowercase their input before lookup.
package tzdata

// Abbreviations maps a timezone abbreviation to its candidate zones, ordered
// by how commonly the abbreviation is meant. The first entry is the default
// interpretation; more than one entry means the abbreviation is ambiguous.
var Abbreviations = map[string][]string{
	// UTC and friends
	"utc": {"Etc/UTC"},
	"ut":  {"Etc/UTC"},
	"gmt": {"Etc/UTC"},
	"z":   {"Etc/UTC"},

	// North America
	"est":  {"America/New_York", "Australia/Sydney"},
	"edt":  {"America/New_York"},
	"cst":  {"America/Chicago", "Asia/Shanghai", "America/Havana"},
	"cdt":  {"America/Chicago", "America/Havana"},
	"mst":  {"America/Denver"},
	"mdt":  {"America/Denver"},
	"pst":  {"America/Los_Angeles", "Asia/Manila"},
	"pdt":  {"America/Los_Angeles"},
	"akst": {"America/Anchorage"},
	"akdt": {"America/Anchorage"},
	"hst":  {"Pacific/Honolulu"},
	"ast":  {"Asia/Riyadh", "America/Halifax"},
	"adt":  {"America/Halifax"},
	"nst":  {"America/St_Johns"},
	"ndt":  {"America/St_Johns"},

	// Europe
	"cet":  {"Europe/Berlin"},
	"cest": {"Europe/Berlin"},
	"wet":  {"Europe/Lisbon"},
	"west": {"Europe/Lisbon"},
	"eet":  {"Europe/Helsinki"},
	"eest": {"Europe/Helsinki"},
	"bst":  {"Europe/London", "Asia/Dhaka"},
	"msk":  {"Europe/Moscow"},
	"trt":  {"Europe/Istanbul"},

	// Asia and Middle East
	"ist": {"Asia/Kolkata", "Asia/Jerusalem", "Europe/Dublin"},
	"idt": {"Asia/Jerusalem"},
	"gst": {"Asia/Dubai"},
	"pkt": {"Asia/Karachi"},
	"npt": {"Asia/Kathmandu"},
	"wib": {"Asia/Jakarta"},
	"ict": {"Asia/Bangkok"},
	"sgt": {"Asia/Singapore"},
	"myt": {"Asia/Kuala_Lumpur"},
	"hkt": {"Asia/Hong_Kong"},
	"jst": {"Asia/Tokyo"},
	"kst": {"Asia/Seoul"},

	// Oceania
	"aest": {"Australia/Sydney"},
	"aedt": {"Australia/Sydney"},
	"acst": {"Australia/Adelaide"},
	"acdt": {"Australia/Adelaide"},
	"awst": {"Australia/Perth"},
	"nzst": {"Pacific/Auckland"},
	"nzdt": {"Pacific/Auckland"},

	// South America
	"art": {"America/Argentina/Buenos_Aires"},
	"brt": {"America/Sao_Paulo"},
	"clt": {"America/Santiago"},
	"cot": {"America/Bogota"},
	"pet": {"America/Lima"},

	// Africa
	"wat":  {"Africa/Lagos"},
	"cat":  {"Africa/Maputo"},
	"eat":  {"Africa/Nairobi"},
	"sast": {"Africa/Johannesburg"},
}

// ShortForms maps a colloquial region or country name to its single most
// sensible zone. Entries here win over abbreviations in resolver precedence.
var ShortForms = map[string]string{
	"pacific":      "America/Los_Angeles",
	"mountain":     "America/Denver",
	"central":      "America/Chicago",
	"eastern":      "America/New_York",
	"atlantic":     "America/Halifax",
	"alaska":       "America/Anchorage",
	"hawaii":       "Pacific/Honolulu",
	"uk":           "Europe/London",
	"england":      "Europe/London",
	"ireland":      "Europe/Dublin",
	"portugal":     "Europe/Lisbon",
	"spain":        "Europe/Madrid",
	"france":       "Europe/Paris",
	"germany":      "Europe/Berlin",
	"italy":        "Europe/Rome",
	"netherlands":  "Europe/Amsterdam",
	"switzerland":  "Europe/Zurich",
	"austria":      "Europe/Vienna",
	"poland":       "Europe/Warsaw",
	"sweden":       "Europe/Stockholm",
	"norway":       "Europe/Oslo",
	"denmark":      "Europe/Copenhagen",
	"finland":      "Europe/Helsinki",
	"greece":       "Europe/Athens",
	"turkey":       "Europe/Istanbul",
	"russia":       "Europe/Moscow",
	"ukraine":      "Europe/Kyiv",
	"israel":       "Asia/Jerusalem",
	"uae":          "Asia/Dubai",
	"india":        "Asia/Kolkata",
	"pakistan":     "Asia/Karachi",
	"bangladesh":   "Asia/Dhaka",
	"nepal":        "Asia/Kathmandu",
	"thailand":     "Asia/Bangkok",
	"vietnam":      "Asia/Ho_Chi_Minh",
	"indonesia":    "Asia/Jakarta",
	"malaysia":     "Asia/Kuala_Lumpur",
	"philippines":  "Asia/Manila",
	"china":        "Asia/Shanghai",
	"taiwan":       "Asia/Taipei",
	"japan":        "Asia/Tokyo",
	"korea":        "Asia/Seoul",
	"australia":    "Australia/Sydney",
	"new zealand":  "Pacific/Auckland",
	"brazil":       "America/Sao_Paulo",
	"argentina":    "America/Argentina/Buenos_Aires",
	"chile":        "America/Santiago",
	"colombia":     "America/Bogota",
	"peru":         "America/Lima",
	"mexico":       "America/Mexico_City",
	"canada":       "America/Toronto",
	"egypt":        "Africa/Cairo",
	"nigeria":      "Africa/Lagos",
	"kenya":        "Africa/Nairobi",
	"south africa": "Africa/Johannesburg",
}
