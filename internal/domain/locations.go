package domain

// ValidLocations is the closed set of "City, Region" values accepted on
// the write path. Read-side filters are deliberately not checked
// against it: an unknown filter value just matches nothing.
var ValidLocations = []string{
	"Albuquerque, New Mexico",
	"Carlsbad, California",
	"Chula Vista, California",
	"Colorado Springs, Colorado",
	"Denver, Colorado",
	"El Cajon, California",
	"El Paso, Texas",
	"Escondido, California",
	"Fresno, California",
	"La Mesa, California",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Oceanside, California",
	"Phoenix, Arizona",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Diego, California",
	"Tucson, Arizona",
}

var validLocationSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ValidLocations))
	for _, l := range ValidLocations {
		m[l] = struct{}{}
	}
	return m
}()

// IsValidLocation reports membership with exact string equality, no
// normalization.
func IsValidLocation(loc string) bool {
	_, ok := validLocationSet[loc]
	return ok
}
