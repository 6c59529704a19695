package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecommendations(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	rec := ts.do(http.MethodGet, "/api/recommendations/sad", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var recs []struct {
		Type       string `json:"type"`
		Title      string `json:"title"`
		MoodTarget string `json:"moodTarget"`
	}
	decode(t, rec, &recs)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, "sad", r.MoodTarget)
		assert.NotEmpty(t, r.Title)
	}
}

func TestGetRecommendationsFilteredByType(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	// Type filter is case-insensitive.
	rec := ts.do(http.MethodGet, "/api/recommendations/sad?type=music", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var recs []struct {
		Type string `json:"type"`
	}
	decode(t, rec, &recs)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Equal(t, "MUSIC", r.Type)
	}
}

// A mood label with no catalog entries, including a typo, is an empty list
// rather than an error.
func TestGetRecommendationsUnknownMoodEmpty(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register("alice@example.com", "female")

	for _, path := range []string{
		"/api/recommendations/saad",
		"/api/recommendations/energetic",
	} {
		rec := ts.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]\n", rec.Body.String(), path)
	}
}

func TestGetRecommendationsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/recommendations/sad", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
