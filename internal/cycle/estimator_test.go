package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodora/moodora-backend/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayOfCycle(t *testing.T) {
	start := day(2026, 3, 1)
	assert.Equal(t, 1, DayOfCycle(start, start))
	assert.Equal(t, 6, DayOfCycle(day(2026, 3, 6), start))
	assert.Equal(t, 28, DayOfCycle(day(2026, 3, 28), start))

	// Time of day never shifts the day count.
	late := time.Date(2026, 3, 6, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 6, DayOfCycle(late, start.Add(7*time.Hour)))
}

func TestEstimatePhase(t *testing.T) {
	start := day(2026, 3, 1)
	tests := []struct {
		name        string
		today       time.Time
		wantPhase   Phase
		wantDay     int
		wantPercent float64
	}{
		{"first day", day(2026, 3, 1), PhaseMenstrual, 1, 20},
		{"last menstrual day", day(2026, 3, 5), PhaseMenstrual, 5, 100},
		{"first follicular day", day(2026, 3, 6), PhaseFollicular, 6, 12.5},
		{"last follicular day", day(2026, 3, 13), PhaseFollicular, 13, 100},
		{"ovulatory", day(2026, 3, 15), PhaseOvulatory, 15, 100.0 * 2 / 3},
		{"first luteal day", day(2026, 3, 17), PhaseLuteal, 17, 100.0 / 12},
		{"cycle end", day(2026, 3, 28), PhaseLuteal, 28, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimatePhase(tt.today, start)
			assert.Equal(t, tt.wantPhase, est.Phase.Phase)
			assert.Equal(t, tt.wantDay, est.DayOfCycle)
			assert.InDelta(t, tt.wantPercent, est.PercentComplete, 1e-9)
		})
	}
}

func TestEstimatePhaseClamps(t *testing.T) {
	start := day(2026, 3, 1)

	// Cycle running long.
	est := EstimatePhase(day(2026, 4, 5), start)
	assert.Equal(t, PhaseLuteal, est.Phase.Phase)
	assert.Equal(t, 36, est.DayOfCycle)
	assert.Equal(t, 100.0, est.PercentComplete)

	// Start date in the future.
	est = EstimatePhase(day(2026, 2, 20), start)
	assert.Equal(t, PhaseLuteal, est.Phase.Phase)
	assert.Equal(t, 100.0, est.PercentComplete)
}

func entry(date time.Time, mood models.MoodType) models.MoodEntry {
	return models.MoodEntry{Date: date, MoodType: mood}
}

func TestDominantMood(t *testing.T) {
	cycles := []models.MenstrualCycle{
		{ID: 1, StartDate: day(2026, 3, 1)},
	}
	entries := []models.MoodEntry{
		entry(day(2026, 3, 2), models.MoodSad),     // menstrual
		entry(day(2026, 3, 4), models.MoodSad),     // menstrual
		entry(day(2026, 3, 5), models.MoodNeutral), // menstrual
		entry(day(2026, 3, 10), models.MoodHappy),  // follicular
	}

	dominant, count := DominantMood(entries, cycles, PhaseMenstrual)
	assert.Equal(t, models.MoodSad, dominant)
	assert.Equal(t, 2, count)

	dominant, count = DominantMood(entries, cycles, PhaseFollicular)
	assert.Equal(t, models.MoodHappy, dominant)
	assert.Equal(t, 1, count)

	_, count = DominantMood(entries, cycles, PhaseOvulatory)
	assert.Equal(t, 0, count)
}

func TestDominantMoodTieKeepsFirst(t *testing.T) {
	cycles := []models.MenstrualCycle{{ID: 1, StartDate: day(2026, 3, 1)}}
	entries := []models.MoodEntry{
		entry(day(2026, 3, 1), models.MoodHappy),
		entry(day(2026, 3, 2), models.MoodSad),
		entry(day(2026, 3, 3), models.MoodSad),
		entry(day(2026, 3, 4), models.MoodHappy),
	}

	// Happy reaches 2 only after sad already holds the top count.
	dominant, count := DominantMood(entries, cycles, PhaseMenstrual)
	assert.Equal(t, models.MoodSad, dominant)
	assert.Equal(t, 2, count)
}

func TestDominantMoodSkipsEntriesOutsideEveryCycle(t *testing.T) {
	cycles := []models.MenstrualCycle{{ID: 1, StartDate: day(2026, 3, 1)}}
	entries := []models.MoodEntry{
		entry(day(2026, 1, 15), models.MoodSad), // before any cycle
		entry(day(2026, 5, 1), models.MoodSad),  // after start + 28 days
		entry(day(2026, 3, 3), models.MoodHappy),
	}

	dominant, count := DominantMood(entries, cycles, PhaseMenstrual)
	assert.Equal(t, models.MoodHappy, dominant)
	assert.Equal(t, 1, count)
}

func TestDominantMoodOverlappingCyclesPreferMostRecent(t *testing.T) {
	// Sorted by start date descending, as the store returns them. An entry on
	// March 22 is day 22 (luteal) of the old cycle but day 3 (menstrual) of
	// the new one; the most recent cycle wins.
	cycles := []models.MenstrualCycle{
		{ID: 2, StartDate: day(2026, 3, 20)},
		{ID: 1, StartDate: day(2026, 3, 1)},
	}
	entries := []models.MoodEntry{
		entry(day(2026, 3, 22), models.MoodAnxious),
	}

	dominant, count := DominantMood(entries, cycles, PhaseMenstrual)
	assert.Equal(t, models.MoodAnxious, dominant)
	assert.Equal(t, 1, count)

	_, count = DominantMood(entries, cycles, PhaseLuteal)
	assert.Equal(t, 0, count)
}

func TestDominantMoodHonorsRecordedEndDate(t *testing.T) {
	end := day(2026, 3, 5)
	cycles := []models.MenstrualCycle{
		{ID: 1, StartDate: day(2026, 3, 1), EndDate: &end},
	}
	entries := []models.MoodEntry{
		entry(day(2026, 3, 10), models.MoodSad), // past the recorded end
		entry(day(2026, 3, 3), models.MoodHappy),
	}

	dominant, count := DominantMood(entries, cycles, PhaseMenstrual)
	assert.Equal(t, models.MoodHappy, dominant)
	assert.Equal(t, 1, count)
}

func TestPhasesCoverFullCycle(t *testing.T) {
	for d := 1; d <= AverageCycleLength; d++ {
		_, ok := phaseForDay(d)
		require.True(t, ok, "day %d has no phase", d)
	}
	_, ok := phaseForDay(0)
	assert.False(t, ok)
	_, ok = phaseForDay(AverageCycleLength + 1)
	assert.False(t, ok)
}
