package prompt

// AstrologyReadingData feeds templates/astrology_reading.tmpl.
type AstrologyReadingData struct {
	Date    string
	Time    string
	City    string
	Country string
}
