// Package schedule maintains the payout rotation: seeding the initial member
// list, keeping week numbers contiguous across reorders, and projecting
// payout dates from the configured start date.
package schedule

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/azamanzizi-droid/ku2cash/internal/models"
)

// DefaultPeriodDays is the length of one rotation turn.
const DefaultPeriodDays = 7

// DefaultSeedCount is how many placeholder members a fresh circle starts
// with.
const DefaultSeedCount = 50

// SeedMembers generates count placeholder members named "Ahli 1".."Ahli N"
// with ids 1..N. Used only on first run, when no persisted state exists.
func SeedMembers(count int) []models.Member {
	members := make([]models.Member, count)
	for i := range members {
		members[i] = models.Member{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("Ahli %d", i+1),
		}
	}
	return members
}

// Shuffled builds a schedule from a uniformly random permutation of members,
// assigning weeks 1..N in shuffled order. Fisher-Yates, so every permutation
// is equally likely.
func Shuffled(members []models.Member) []models.ScheduleEntry {
	shuffled := make([]models.Member, len(members))
	copy(shuffled, members)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	entries := make([]models.ScheduleEntry, len(shuffled))
	for i, m := range shuffled {
		entries[i] = models.ScheduleEntry{Week: i + 1, Member: m}
	}
	return entries
}

// Append adds member to the end of the rotation without touching existing
// entries.
func Append(entries []models.ScheduleEntry, member models.Member) []models.ScheduleEntry {
	return append(entries, models.ScheduleEntry{
		Week:   len(entries) + 1,
		Member: member,
	})
}

// Renumber returns entries with Week set to 1..N by position. It runs
// unconditionally on every reorder, even when the caller already supplied
// correct numbers.
func Renumber(entries []models.ScheduleEntry) []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(entries))
	for i, e := range entries {
		e.Week = i + 1
		out[i] = e
	}
	return out
}

// ProjectedPayoutDate returns start + (week-1)*periodDays. Pure function of
// its inputs.
func ProjectedPayoutDate(start time.Time, week, periodDays int) time.Time {
	return start.AddDate(0, 0, (week-1)*periodDays)
}

// CurrentWeek derives the active rotation position from the start date:
// floor(daysSince(start)/periodDays)+1, clamped to [1, n]. Dates before the
// start clamp to week 1. Returns 0 for an empty schedule.
func CurrentWeek(start, now time.Time, periodDays, n int) int {
	if n <= 0 {
		return 0
	}
	days := int(now.Sub(start) / (24 * time.Hour))
	week := days/periodDays + 1
	if week < 1 {
		return 1
	}
	if week > n {
		return n
	}
	return week
}

// Status classifies a schedule entry relative to the current week.
type Status string

const (
	StatusPast     Status = "past"
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
)

// StatusOf partitions entries into past, current and upcoming turns.
func StatusOf(week, currentWeek int) Status {
	switch {
	case week < currentWeek:
		return StatusPast
	case week == currentWeek:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}

// MonthGrid describes the day grid of the month containing a payout date,
// enough to render a calendar with the payout day circled.
type MonthGrid struct {
	Year int `json:"year"`
	// Month is 1-based (January = 1).
	Month int `json:"month"`
	// FirstWeekday is the weekday of the 1st of the month, Sunday = 0.
	FirstWeekday int `json:"firstWeekday"`
	// Days is the number of days in the month.
	Days int `json:"days"`
	// PayoutDay is the day of month to highlight.
	PayoutDay int `json:"payoutDay"`
}

// GridFor computes the month grid containing payout.
func GridFor(payout time.Time) MonthGrid {
	first := time.Date(payout.Year(), payout.Month(), 1, 0, 0, 0, 0, payout.Location())
	// Day 0 of the next month is the last day of this one.
	last := first.AddDate(0, 1, -1)

	return MonthGrid{
		Year:         payout.Year(),
		Month:        int(payout.Month()),
		FirstWeekday: int(first.Weekday()),
		Days:         last.Day(),
		PayoutDay:    payout.Day(),
	}
}
