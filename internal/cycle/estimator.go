package cycle

import (
	"time"

	"github.com/moodora/moodora-backend/internal/models"
)

// AverageCycleLength is the assumed cycle length in days when a cycle has no
// recorded end date.
const AverageCycleLength = 28

// Phase is one of the four fixed cycle intervals.
type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

// PhaseInfo describes a phase and its day range (1-indexed, inclusive).
type PhaseInfo struct {
	Phase         Phase  `json:"phase"`
	Name          string `json:"name"`
	FirstDay      int    `json:"firstDay"`
	LastDay       int    `json:"lastDay"`
	TypicalEnergy string `json:"typicalEnergy"`
}

var phases = []PhaseInfo{
	{PhaseMenstrual, "Menstrual Phase", 1, 5, "Lower energy"},
	{PhaseFollicular, "Follicular Phase", 6, 13, "Increasing energy"},
	{PhaseOvulatory, "Ovulatory Phase", 14, 16, "Peak energy"},
	{PhaseLuteal, "Luteal Phase", 17, 28, "Decreasing energy"},
}

// Estimate places a day within the cycle.
type Estimate struct {
	Phase           PhaseInfo `json:"phase"`
	DayOfCycle      int       `json:"dayOfCycle"`
	PercentComplete float64   `json:"percentComplete"`
}

// dateOnly drops the time-of-day component so day arithmetic ignores
// timestamps and timezones.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayOfCycle returns the 1-indexed day of cycle for today given the cycle
// start date. The start date itself is day 1.
func DayOfCycle(today, start time.Time) int {
	diff := dateOnly(today).Sub(dateOnly(start))
	return int(diff.Hours()/24) + 1
}

func phaseForDay(day int) (PhaseInfo, bool) {
	for _, p := range phases {
		if day >= p.FirstDay && day <= p.LastDay {
			return p, true
		}
	}
	return PhaseInfo{}, false
}

// EstimatePhase maps today against the most recent cycle start date.
// A day of cycle outside [1,28] (cycle running long, or a start date in the
// future) clamps to the luteal phase at 100% rather than erroring.
func EstimatePhase(today, start time.Time) Estimate {
	day := DayOfCycle(today, start)
	p, ok := phaseForDay(day)
	if !ok {
		return Estimate{Phase: phases[len(phases)-1], DayOfCycle: day, PercentComplete: 100}
	}
	length := p.LastDay - p.FirstDay + 1
	percent := float64(day-(p.FirstDay-1)) / float64(length) * 100
	return Estimate{Phase: p, DayOfCycle: day, PercentComplete: percent}
}

// cycleFor finds the cycle containing date: start <= date <= end, where end
// defaults to start + 28 days when unset. Cycles must be sorted by start
// date descending; the first match wins, which is how overlapping cycles
// are disambiguated.
func cycleFor(date time.Time, cycles []models.MenstrualCycle) (models.MenstrualCycle, bool) {
	d := dateOnly(date)
	for _, c := range cycles {
		start := dateOnly(c.StartDate)
		end := start.AddDate(0, 0, AverageCycleLength)
		if c.EndDate != nil {
			end = dateOnly(*c.EndDate)
		}
		if !d.Before(start) && !d.After(end) {
			return c, true
		}
	}
	return models.MenstrualCycle{}, false
}

// DominantMood tallies mood labels of entries whose containing cycle places
// them in the given phase, and returns the most frequent label with its
// count. Ties go to the first label to reach the top count in entry order.
// count is 0 when no entry falls in the phase.
func DominantMood(entries []models.MoodEntry, cycles []models.MenstrualCycle, phase Phase) (models.MoodType, int) {
	counts := make(map[models.MoodType]int)
	var dominant models.MoodType
	highest := 0
	for _, e := range entries {
		c, ok := cycleFor(e.Date, cycles)
		if !ok {
			continue
		}
		day := DayOfCycle(e.Date, c.StartDate)
		p, ok := phaseForDay(day)
		if !ok || p.Phase != phase {
			continue
		}
		counts[e.MoodType]++
		if counts[e.MoodType] > highest {
			highest = counts[e.MoodType]
			dominant = e.MoodType
		}
	}
	return dominant, highest
}
