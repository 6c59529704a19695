package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMoodEntry(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodPost, "/api/mood-entries", token, map[string]string{
		"moodType": "happy",
		"notes":    "sunny day",
		"date":     "2026-03-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var entry struct {
		ID       int64  `json:"id"`
		UserID   int64  `json:"userId"`
		MoodType string `json:"moodType"`
		Notes    string `json:"notes"`
		Date     string `json:"date"`
	}
	decode(t, rec, &entry)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "happy", entry.MoodType)
	assert.Equal(t, "sunny day", entry.Notes)
	assert.Contains(t, entry.Date, "2026-03-10")
}

func TestCreateMoodEntryDefaultsDateToNow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodPost, "/api/mood-entries", token, map[string]string{
		"moodType": "neutral",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry struct {
		Date string `json:"date"`
	}
	decode(t, rec, &entry)
	// The handler clock is pinned in newTestServer.
	assert.Contains(t, entry.Date, "2026-03-15")
}

func TestCreateMoodEntryRejectsUnknownMood(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodPost, "/api/mood-entries", token, map[string]string{
		"moodType": "ecstatic",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, rec, &resp)
	assert.Contains(t, resp.Errors, "moodType")
}

func TestListMoodEntriesNewestFirst(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	for _, d := range []string{"2026-03-01", "2026-03-10", "2026-03-05"} {
		rec := ts.do(http.MethodPost, "/api/mood-entries", token, map[string]string{
			"moodType": "happy",
			"date":     d,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.do(http.MethodGet, "/api/mood-entries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []struct {
		Date string `json:"date"`
	}
	decode(t, rec, &entries)
	require.Len(t, entries, 3)
	assert.Contains(t, entries[0].Date, "2026-03-10")
	assert.Contains(t, entries[1].Date, "2026-03-05")
	assert.Contains(t, entries[2].Date, "2026-03-01")
}

func TestMoodEntriesByRange(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	for _, d := range []string{"2026-03-01", "2026-03-10", "2026-03-20"} {
		rec := ts.do(http.MethodPost, "/api/mood-entries", token, map[string]string{
			"moodType": "neutral",
			"date":     d,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.do(http.MethodGet, "/api/mood-entries/range?startDate=2026-03-05&endDate=2026-03-20", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []struct {
		Date string `json:"date"`
	}
	decode(t, rec, &entries)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Date, "2026-03-10")
	assert.Contains(t, entries[1].Date, "2026-03-20")
}

func TestMoodEntriesByRangeBadParams(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	for _, path := range []string{
		"/api/mood-entries/range",
		"/api/mood-entries/range?startDate=2026-03-01",
		"/api/mood-entries/range?startDate=03/01/2026&endDate=2026-03-20",
	} {
		rec := ts.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Invalid date format")
	}
}

func TestMoodEntriesScopedToCaller(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register("alice@example.com", "female")
	bob := ts.register("bob@example.com", "male")

	rec := ts.do(http.MethodPost, "/api/mood-entries", alice, map[string]string{"moodType": "sad"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodGet, "/api/mood-entries", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []struct{}
	decode(t, rec, &entries)
	assert.Empty(t, entries)
}

func TestGetQuestionnaire(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodGet, "/api/questionnaire", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []struct {
		ID      int    `json:"id"`
		Text    string `json:"text"`
		Options []struct {
			ID    string `json:"id"`
			Value string `json:"value"`
		} `json:"options"`
	}
	decode(t, rec, &questions)
	require.Len(t, questions, 7)
	for _, q := range questions {
		assert.Len(t, q.Options, 3)
	}
}

// positiveAnswers picks the first (positive) option of every question.
func positiveAnswers() []string {
	answers := make([]string, 7)
	for i := range answers {
		answers[i] = fmt.Sprintf("q%do1", i+1)
	}
	return answers
}

func TestSubmitQuestionnaire(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodPost, "/api/mood-entries/questionnaire", token, map[string]interface{}{
		"answers": positiveAnswers(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Entry struct {
			ID       int64  `json:"id"`
			MoodType string `json:"moodType"`
			Notes    string `json:"notes"`
		} `json:"entry"`
		MoodType  string `json:"moodType"`
		Breakdown struct {
			Positive int `json:"positive"`
			Neutral  int `json:"neutral"`
			Negative int `json:"negative"`
		} `json:"breakdown"`
		Analysis string `json:"analysis"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "happy", resp.MoodType)
	assert.Equal(t, "happy", resp.Entry.MoodType)
	assert.Equal(t, 100, resp.Breakdown.Positive)
	assert.Equal(t, 0, resp.Breakdown.Negative)
	assert.Contains(t, resp.Analysis, "Very positive mood")
	assert.Contains(t, resp.Entry.Notes, "Mood questionnaire from 2026-03-15")

	// The entry is persisted alongside directly selected ones.
	rec = ts.do(http.MethodGet, "/api/mood-entries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []struct {
		MoodType string `json:"moodType"`
	}
	decode(t, rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "happy", entries[0].MoodType)
}

func TestSubmitQuestionnaireIncomplete(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodPost, "/api/mood-entries/questionnaire", token, map[string]interface{}{
		"answers": []string{"q1o1", "q2o1"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Questionnaire incomplete")

	// Nothing was stored.
	rec = ts.do(http.MethodGet, "/api/mood-entries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []struct{}
	decode(t, rec, &entries)
	assert.Empty(t, entries)
}

func TestSubmitQuestionnaireUnknownOption(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	answers := positiveAnswers()
	answers[4] = "q5o9"
	rec := ts.do(http.MethodPost, "/api/mood-entries/questionnaire", token, map[string]interface{}{
		"answers": answers,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, rec, &resp)
	assert.Contains(t, resp.Errors, "answers")
}

func TestMoodEndpointsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/mood-entries"},
		{http.MethodGet, "/api/mood-entries/range?startDate=2026-03-01&endDate=2026-03-02"},
		{http.MethodPost, "/api/mood-entries"},
		{http.MethodPost, "/api/mood-entries/questionnaire"},
		{http.MethodGet, "/api/questionnaire"},
	}
	for _, p := range paths {
		rec := ts.do(p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)
	}
}
