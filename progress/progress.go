// Package progress implements the streak and rolling-accuracy update rule
// applied once per completed practice session.
package progress

import (
	"math"
	"time"

	"github.com/genspeak/genspeak_api/shared"
)

// Snapshot is the slice of a user record the update rule reads.
type Snapshot struct {
	Streak           int
	Accuracy         int
	CompletedLessons int
	LastActiveDate   string // YYYY-MM-DD, "" if never active
}

type Result struct {
	Streak           int
	Accuracy         int
	CompletedLessons int
	LastActiveDate   string
}

// Update applies one completed session to a user's counters.
//
// Streak: unchanged when already active today, +1 when last active
// yesterday, otherwise reset to 1 (covers first-ever activity and gaps of
// two or more days). The activity date is set to today whenever it was not
// already today, so it never regresses.
//
// Accuracy is the two-point rolling average round((old+submitted)/2) — not
// a running mean over all sessions. The lesson counter always grows by one.
func Update(prev Snapshot, submitted int, today time.Time) Result {
	todayStr := today.Format(shared.DateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(shared.DateLayout)

	streak := prev.Streak
	lastActive := prev.LastActiveDate

	if lastActive != todayStr {
		if lastActive == yesterdayStr {
			streak++
		} else {
			streak = 1
		}
		lastActive = todayStr
	}

	return Result{
		Streak:           streak,
		Accuracy:         int(math.Round(float64(prev.Accuracy+submitted) / 2)),
		CompletedLessons: prev.CompletedLessons + 1,
		LastActiveDate:   lastActive,
	}
}
