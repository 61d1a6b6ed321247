package tzdata

// Cities maps a city phrase to its zone. Multi-word keys are allowed; they
// match whatever free text remains after the time and the "to" separator.
var Cities = map[string]string{
	// US cities
	"new york":       "America/New_York",
	"nyc":            "America/New_York",
	"brooklyn":       "America/New_York",
	"boston":         "America/New_York",
	"washington":     "America/New_York",
	"washington dc":  "America/New_York",
	"miami":          "America/New_York",
	"atlanta":        "America/New_York",
	"detroit":        "America/Detroit",
	"chicago":        "America/Chicago",
	"houston":        "America/Chicago",
	"dallas":         "America/Chicago",
	"austin":         "America/Chicago",
	"minneapolis":    "America/Chicago",
	"denver":         "America/Denver",
	"salt lake city": "America/Denver",
	"phoenix":        "America/Phoenix",
	"las vegas":      "America/Los_Angeles",
	"los angeles":    "America/Los_Angeles",
	"la":             "America/Los_Angeles",
	"san francisco":  "America/Los_Angeles",
	"sf":             "America/Los_Angeles",
	"san diego":      "America/Los_Angeles",
	"seattle":        "America/Los_Angeles",
	"portland":       "America/Los_Angeles",
	"anchorage":      "America/Anchorage",
	"honolulu":       "Pacific/Honolulu",

	// Canada and Latin America
	"vancouver":      "America/Vancouver",
	"calgary":        "America/Edmonton",
	"toronto":        "America/Toronto",
	"montreal":       "America/Toronto",
	"halifax":        "America/Halifax",
	"mexico city":    "America/Mexico_City",
	"bogota":         "America/Bogota",
	"lima":           "America/Lima",
	"santiago":       "America/Santiago",
	"buenos aires":   "America/Argentina/Buenos_Aires",
	"sao paulo":      "America/Sao_Paulo",
	"rio":            "America/Sao_Paulo",
	"rio de janeiro": "America/Sao_Paulo",

	// Europe
	"london":     "Europe/London",
	"manchester": "Europe/London",
	"edinburgh":  "Europe/London",
	"dublin":     "Europe/Dublin",
	"lisbon":     "Europe/Lisbon",
	"madrid":     "Europe/Madrid",
	"barcelona":  "Europe/Madrid",
	"paris":      "Europe/Paris",
	"brussels":   "Europe/Brussels",
	"amsterdam":  "Europe/Amsterdam",
	"berlin":     "Europe/Berlin",
	"munich":     "Europe/Berlin",
	"hamburg":    "Europe/Berlin",
	"frankfurt":  "Europe/Berlin",
	"zurich":     "Europe/Zurich",
	"geneva":     "Europe/Zurich",
	"vienna":     "Europe/Vienna",
	"prague":     "Europe/Prague",
	"warsaw":     "Europe/Warsaw",
	"rome":       "Europe/Rome",
	"milan":      "Europe/Rome",
	"copenhagen": "Europe/Copenhagen",
	"oslo":       "Europe/Oslo",
	"stockholm":  "Europe/Stockholm",
	"helsinki":   "Europe/Helsinki",
	"athens":     "Europe/Athens",
	"bucharest":  "Europe/Bucharest",
	"kyiv":       "Europe/Kyiv",
	"kiev":       "Europe/Kyiv",
	"istanbul":   "Europe/Istanbul",
	"moscow":     "Europe/Moscow",

	// Middle East and Africa
	"tel aviv":     "Asia/Jerusalem",
	"jerusalem":    "Asia/Jerusalem",
	"beirut":       "Asia/Beirut",
	"riyadh":       "Asia/Riyadh",
	"dubai":        "Asia/Dubai",
	"abu dhabi":    "Asia/Dubai",
	"tehran":       "Asia/Tehran",
	"cairo":        "Africa/Cairo",
	"lagos":        "Africa/Lagos",
	"nairobi":      "Africa/Nairobi",
	"johannesburg": "Africa/Johannesburg",
	"cape town":    "Africa/Johannesburg",

	// Asia
	"karachi":      "Asia/Karachi",
	"mumbai":       "Asia/Kolkata",
	"delhi":        "Asia/Kolkata",
	"new delhi":    "Asia/Kolkata",
	"bangalore":    "Asia/Kolkata",
	"bengaluru":    "Asia/Kolkata",
	"chennai":      "Asia/Kolkata",
	"hyderabad":    "Asia/Kolkata",
	"kolkata":      "Asia/Kolkata",
	"kathmandu":    "Asia/Kathmandu",
	"dhaka":        "Asia/Dhaka",
	"bangkok":      "Asia/Bangkok",
	"hanoi":        "Asia/Ho_Chi_Minh",
	"ho chi minh":  "Asia/Ho_Chi_Minh",
	"jakarta":      "Asia/Jakarta",
	"kuala lumpur": "Asia/Kuala_Lumpur",
	"singapore":    "Asia/Singapore",
	"manila":       "Asia/Manila",
	"hong kong":    "Asia/Hong_Kong",
	"shenzhen":     "Asia/Shanghai",
	"shanghai":     "Asia/Shanghai",
	"beijing":      "Asia/Shanghai",
	"taipei":       "Asia/Taipei",
	"seoul":        "Asia/Seoul",
	"tokyo":        "Asia/Tokyo",
	"osaka":        "Asia/Tokyo",

	// Oceania
	"perth":      "Australia/Perth",
	"adelaide":   "Australia/Adelaide",
	"brisbane":   "Australia/Brisbane",
	"sydney":     "Australia/Sydney",
	"melbourne":  "Australia/Melbourne",
	"canberra":   "Australia/Sydney",
	"wellington": "Pacific/Auckland",
	"auckland":   "Pacific/Auckland",
}
