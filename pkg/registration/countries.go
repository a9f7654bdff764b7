package registration

var countries = []string{"India", "USA", "UK"}

var citiesByCountry = map[string][]string{
	"India": {"Mumbai", "Delhi", "Bangalore"},
	"USA":   {"New York", "Los Angeles", "Chicago"},
	"UK":    {"London", "Manchester", "Liverpool"},
}

// Countries returns the selectable countries in display order.
func Countries() []string {
	return append([]string(nil), countries...)
}

// CitiesFor returns the fixed city list for country, or an empty slice for any
// country outside the table (including the empty string).
func CitiesFor(country string) []string {
	cities, ok := citiesByCountry[country]
	if !ok {
		return []string{}
	}
	return append([]string(nil), cities...)
}

// CityBelongs reports whether city is one of the choices for country.
func CityBelongs(country, city string) bool {
	for _, candidate := range citiesByCountry[country] {
		if candidate == city {
			return true
		}
	}
	return false
}
