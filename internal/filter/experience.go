package filter

import (
	"time"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// TotalYears sums computed tenure across all experience entries with a usable
// start year. Each entry contributes the month difference between its start
// (inclusive) and its end (exclusive); an entry with no end date is treated
// as ongoing through now. Entries without a start year contribute 0.
func TotalYears(exps []profile.Experience, now time.Time) float64 {
	months := 0
	for _, e := range exps {
		if e.Start == nil || e.Start.Year == 0 {
			continue
		}
		start := monthStart(*e.Start)

		end := now
		if e.End != nil && e.End.Year != 0 {
			end = monthStart(*e.End)
		}

		diff := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
		if diff > 0 {
			months += diff
		}
	}
	return float64(months) / 12
}

// BandMatches buckets a fractional year total into the caller-facing
// experience bands. Unknown band strings constrain nothing.
func BandMatches(band string, years float64) bool {
	switch band {
	case "0-2":
		return years <= 2
	case "3-5":
		return years > 2 && years <= 5
	case "5-10":
		return years > 5 && years <= 10
	case "10+":
		return years > 10
	}
	return true
}

func monthStart(ym profile.YearMonth) time.Time {
	month := ym.Month
	if month < 1 || month > 12 {
		month = 1
	}
	return time.Date(ym.Year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
