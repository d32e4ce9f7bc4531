package city

import "strings"

// Default is returned when no alias matches the message.
const Default = "Pakistan"

// entry pairs a canonical city name with its lowercase aliases. The table is
// an ordered slice because lookup is first-match: when a message mentions
// several cities, the earliest entry here wins.
type entry struct {
	name    string
	aliases []string
}

var table = []entry{
	{"Karachi", []string{"karachi", "khi"}},
	{"Lahore", []string{"lahore", "lhr"}},
	{"Islamabad", []string{"islamabad", "islo", "isl"}},
	{"Rawalpindi", []string{"rawalpindi", "pindi"}},
	{"Peshawar", []string{"peshawar", "pesh"}},
	{"Quetta", []string{"quetta"}},
	{"Multan", []string{"multan"}},
	{"Faisalabad", []string{"faisalabad", "faisal", "fsd"}},
	{"Hyderabad", []string{"hyderabad", "hydr"}},
	{"Sialkot", []string{"sialkot", "skt"}},
	{"Gujranwala", []string{"gujranwala", "gwl"}},
}

// Resolve maps a free-text message to a canonical city name via substring
// alias matching, falling back to Default.
func Resolve(message string) string {
	lowered := strings.ToLower(message)
	for _, e := range table {
		for _, alias := range e.aliases {
			if strings.Contains(lowered, alias) {
				return e.name
			}
		}
	}
	return Default
}
