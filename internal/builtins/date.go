package builtins

import "time"

// Date returns the date builtins for now, in now's location:
// year (YYYY), month (MM), day (DD), date (YYYY-MM-DD) and dateCompact
// (YYYYMMDD).
func Date(now time.Time) map[string]string {
	return map[string]string{
		"year":        now.Format("2006"),
		"month":       now.Format("01"),
		"day":         now.Format("02"),
		"date":        now.Format("2006-01-02"),
		"dateCompact": now.Format("20060102"),
	}
}
