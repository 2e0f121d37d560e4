package analytics

// DayKey returns the YYYY-MM-DD prefix of an ISO timestamp. Shorter values are used whole.
func DayKey(date string) string {
	runes := []rune(date)
	if len(runes) <= 10 {
		return date
	}
	return string(runes[:10])
}
