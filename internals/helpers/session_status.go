package helper

import "time"

const (
	SessionStatusUpcoming = "upcoming"
	SessionStatusAttended = "attended"
)

// SessionStatus derives the display status of a session from its schedule.
// The status is never stored; every view goes through this helper.
func SessionStatus(schedule, now time.Time) string {
	if schedule.After(now) {
		return SessionStatusUpcoming
	}
	return SessionStatusAttended
}
