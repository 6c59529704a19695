package mood

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/moodora/moodora-backend/internal/models"
)

var (
	// ErrIncomplete is returned when not every question has an answer.
	// Partial answer sets are never classified.
	ErrIncomplete = errors.New("questionnaire incomplete")
	// ErrUnknownOption is returned when an answer names no option of its question.
	ErrUnknownOption = errors.New("unknown answer option")
)

// Tally holds polarity counts across the answered questions.
type Tally struct {
	Positive int
	Neutral  int
	Negative int
}

func (t Tally) total() int {
	return t.Positive + t.Neutral + t.Negative
}

// Percentages returns the exact polarity percentages used by the
// classification rules.
func (t Tally) Percentages() (positive, neutral, negative float64) {
	total := float64(t.total())
	if total == 0 {
		return 0, 0, 0
	}
	return float64(t.Positive) / total * 100,
		float64(t.Neutral) / total * 100,
		float64(t.Negative) / total * 100
}

// Rounded returns the percentages rounded to whole numbers. The analysis
// ladder and the stored notes use these, not the exact values.
func (t Tally) Rounded() (positive, neutral, negative int) {
	p, n, g := t.Percentages()
	return int(math.Round(p)), int(math.Round(n)), int(math.Round(g))
}

// TallyAnswers scores a full answer set against the question table.
// answers[i] must be the option ID chosen for Questions[i].
func TallyAnswers(answers []string) (Tally, error) {
	if len(answers) != QuestionCount {
		return Tally{}, ErrIncomplete
	}
	var t Tally
	for i, q := range Questions {
		if answers[i] == "" {
			return Tally{}, ErrIncomplete
		}
		opt, ok := optionOf(q, answers[i])
		if !ok {
			return Tally{}, fmt.Errorf("%w: %q for question %d", ErrUnknownOption, answers[i], q.ID)
		}
		switch opt.Value {
		case PolarityPositive:
			t.Positive++
		case PolarityNeutral:
			t.Neutral++
		case PolarityNegative:
			t.Negative++
		}
	}
	return t, nil
}

func optionOf(q Question, id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// rule is one rung of the classification ladder. Rules are evaluated in
// order and the first match wins; the rules are not mutually exclusive, so
// reordering them changes the result for boundary inputs.
type rule struct {
	name    string
	applies func(positive, neutral, negative float64) bool
	mood    models.MoodType
}

var classificationRules = []rule{
	{"strong positive", func(p, n, g float64) bool { return p >= 60 }, models.MoodHappy},
	{"positive with nuance", func(p, n, g float64) bool { return p >= 40 && n >= 30 }, models.MoodNeutral},
	{"strong negative", func(p, n, g float64) bool { return g >= 60 }, models.MoodSad},
	{"negative with nuance", func(p, n, g float64) bool { return g >= 40 && n >= 30 }, models.MoodNeutral},
	{"mostly neutral", func(p, n, g float64) bool { return n >= 50 }, models.MoodNeutral},
	{"slightly positive", func(p, n, g float64) bool { return p > g }, models.MoodNeutral},
	{"slightly negative", func(p, n, g float64) bool { return g > p }, models.MoodSad},
	{"balanced", func(p, n, g float64) bool { return true }, models.MoodNeutral},
}

// Classify maps a tally to a mood label by running the ordered rule ladder.
// The result depends only on the polarity counts.
func Classify(t Tally) (models.MoodType, error) {
	if t.total() == 0 {
		return "", ErrIncomplete
	}
	p, n, g := t.Percentages()
	for _, r := range classificationRules {
		if r.applies(p, n, g) {
			return r.mood, nil
		}
	}
	// The last rule always matches.
	return models.MoodNeutral, nil
}

// Analysis returns the human-readable reading of a tally. This ladder is
// separate from the classification rules: it works on rounded percentages
// and its fourth rung has no neutral condition. Display only; the stored
// mood label never derives from it.
func Analysis(t Tally) string {
	p, n, g := t.Rounded()
	switch {
	case p >= 60:
		return "Very positive mood. Keep up the activities that are doing you good."
	case p >= 40 && n >= 30:
		return "Mostly positive mood with some reservations. Maintain your current balance."
	case g >= 60:
		return "Rather negative mood. Consider relaxing and soothing activities."
	case g >= 40:
		return "Slightly negative mood. Make room for moments of rest."
	case n >= 50:
		return "Mostly neutral mood. Look for sources of motivation and joy."
	default:
		return "Mixed mood. Take time to identify what is influencing your emotional state."
	}
}

// Notes formats the free-text note stored with a questionnaire entry.
func Notes(t Tally, date time.Time) string {
	p, n, g := t.Rounded()
	return fmt.Sprintf(
		"Mood questionnaire from %s. Results: %d%% positive, %d%% neutral, %d%% negative. Analysis: %s",
		date.Format("2006-01-02"), p, n, g, Analysis(t),
	)
}
