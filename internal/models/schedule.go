package models

// ScheduleEntry is one position in the payout rotation. The ordered list of
// entries forms the rotation schedule.
//
// Invariant: across the whole schedule, Week values are exactly 1..N with no
// gaps or duplicates. Every mutation that changes the ordering renumbers the
// entries to restore this.
type ScheduleEntry struct {
	// Week is the 1-based payout position. "Week" is the rotation turn,
	// not necessarily a literal calendar week.
	Week int `json:"week"`

	// Member is an embedded snapshot of the member taking this turn.
	// Its Name is kept in sync on rename.
	Member Member `json:"member"`
}
