package utils

import "time"

// All subscription date math happens at day granularity in IST (+05:30),
// matching where deliveries actually run.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func ISTLocation() *time.Location { return istLoc }

// Today returns midnight IST of the current day.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf truncates t to midnight IST.
func DateOf(t time.Time) time.Time {
	ist := t.In(istLoc)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, istLoc)
}

// DaysBetween counts whole days from a to b after truncating both to IST
// dates. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	da, db := DateOf(a), DateOf(b)
	return int(db.Sub(da).Hours() / 24)
}

func FromUnixDate(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return DateOf(time.Unix(sec, 0))
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
