package schedule

import (
	"testing"
	"time"

	"github.com/azamanzizi-droid/ku2cash/internal/models"
)

func TestSeedMembers(t *testing.T) {
	members := SeedMembers(50)

	if len(members) != 50 {
		t.Fatalf("Expected 50 members, got %d", len(members))
	}
	if members[0].ID != 1 || members[0].Name != "Ahli 1" {
		t.Errorf("First member: got {%d %q}", members[0].ID, members[0].Name)
	}
	if members[49].ID != 50 || members[49].Name != "Ahli 50" {
		t.Errorf("Last member: got {%d %q}", members[49].ID, members[49].Name)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	members := SeedMembers(50)
	entries := Shuffled(members)

	if len(entries) != 50 {
		t.Fatalf("Expected 50 entries, got %d", len(entries))
	}

	seen := make(map[int64]bool)
	for i, e := range entries {
		if e.Week != i+1 {
			t.Errorf("Entry %d: week = %d, want %d", i, e.Week, i+1)
		}
		if seen[e.Member.ID] {
			t.Errorf("Member %d appears more than once", e.Member.ID)
		}
		seen[e.Member.ID] = true
	}
	for id := int64(1); id <= 50; id++ {
		if !seen[id] {
			t.Errorf("Member %d missing from schedule", id)
		}
	}
}

func TestShuffledDoesNotMutateInput(t *testing.T) {
	members := SeedMembers(10)
	Shuffled(members)

	for i, m := range members {
		if m.ID != int64(i+1) {
			t.Fatalf("Input slice was reordered: index %d has id %d", i, m.ID)
		}
	}
}

func TestAppend(t *testing.T) {
	entries := Shuffled(SeedMembers(7))
	before := make([]models.ScheduleEntry, len(entries))
	copy(before, entries)

	entries = Append(entries, models.Member{ID: 8, Name: "Ali"})

	if len(entries) != 8 {
		t.Fatalf("Expected 8 entries, got %d", len(entries))
	}
	last := entries[7]
	if last.Week != 8 {
		t.Errorf("New entry week = %d, want 8", last.Week)
	}
	if last.Member.ID != 8 || last.Member.Name != "Ali" {
		t.Errorf("New entry member = {%d %q}", last.Member.ID, last.Member.Name)
	}
	for i, e := range entries[:7] {
		if e != before[i] {
			t.Errorf("Existing entry %d changed: got %+v, want %+v", i, e, before[i])
		}
	}
}

func TestRenumber(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Week: 3, Member: models.Member{ID: 3, Name: "C"}},
		{Week: 1, Member: models.Member{ID: 1, Name: "A"}},
		{Week: 2, Member: models.Member{ID: 2, Name: "B"}},
	}

	renumbered := Renumber(entries)

	wantIDs := []int64{3, 1, 2}
	for i, e := range renumbered {
		if e.Week != i+1 {
			t.Errorf("Entry %d: week = %d, want %d", i, e.Week, i+1)
		}
		if e.Member.ID != wantIDs[i] {
			t.Errorf("Entry %d: member id = %d, want %d", i, e.Member.ID, wantIDs[i])
		}
	}

	// Original slice keeps its week numbers.
	if entries[0].Week != 3 {
		t.Errorf("Renumber mutated its input: week = %d", entries[0].Week)
	}
}

func TestProjectedPayoutDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		week int
		want string
	}{
		{1, "2024-01-01"},
		{2, "2024-01-08"},
		{5, "2024-01-29"},
		{10, "2024-03-04"},
	}

	for _, tt := range tests {
		got := ProjectedPayoutDate(start, tt.week, DefaultPeriodDays)
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("Week %d: got %s, want %s", tt.week, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before start clamps to 1", start.AddDate(0, 0, -30), 1},
		{"start date is week 1", start, 1},
		{"mid first week", start.AddDate(0, 0, 6), 1},
		{"first day of week 2", start.AddDate(0, 0, 7), 2},
		{"week 5", start.AddDate(0, 0, 29), 5},
		{"beyond the rotation clamps to N", start.AddDate(0, 0, 500), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentWeek(start, tt.now, DefaultPeriodDays, 50)
			if got != tt.want {
				t.Errorf("CurrentWeek = %d, want %d", got, tt.want)
			}
		})
	}

	if got := CurrentWeek(start, start, DefaultPeriodDays, 0); got != 0 {
		t.Errorf("CurrentWeek with empty schedule = %d, want 0", got)
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(2, 5); got != StatusPast {
		t.Errorf("StatusOf(2, 5) = %s, want past", got)
	}
	if got := StatusOf(5, 5); got != StatusCurrent {
		t.Errorf("StatusOf(5, 5) = %s, want current", got)
	}
	if got := StatusOf(8, 5); got != StatusUpcoming {
		t.Errorf("StatusOf(8, 5) = %s, want upcoming", got)
	}
}

func TestGridFor(t *testing.T) {
	t.Run("January 2024", func(t *testing.T) {
		// 2024-01-29 is a Monday; January 1st 2024 is also a Monday.
		grid := GridFor(time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC))

		if grid.Year != 2024 || grid.Month != 1 {
			t.Errorf("Got %d-%d, want 2024-1", grid.Year, grid.Month)
		}
		if grid.FirstWeekday != 1 {
			t.Errorf("FirstWeekday = %d, want 1 (Monday)", grid.FirstWeekday)
		}
		if grid.Days != 31 {
			t.Errorf("Days = %d, want 31", grid.Days)
		}
		if grid.PayoutDay != 29 {
			t.Errorf("PayoutDay = %d, want 29", grid.PayoutDay)
		}
	})

	t.Run("leap February", func(t *testing.T) {
		grid := GridFor(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))

		if grid.Days != 29 {
			t.Errorf("Days = %d, want 29", grid.Days)
		}
		// February 1st 2024 is a Thursday.
		if grid.FirstWeekday != 4 {
			t.Errorf("FirstWeekday = %d, want 4 (Thursday)", grid.FirstWeekday)
		}
	})
}
