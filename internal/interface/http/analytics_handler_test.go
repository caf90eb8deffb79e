package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsAll(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/analytics", env.token(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all map[string]map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &all))
	require.Len(t, all, 4)

	tw := all["twitter"]
	assert.EqualValues(t, 2342, tw["followers"])
	assert.InDelta(t, 3.8, tw["engagement"].(float64), 0.001)
	// extras are flattened next to the fixed fields
	assert.EqualValues(t, 124, tw["retweets"])
	assert.EqualValues(t, 532, tw["likes"])

	daily := tw["daily"].([]any)
	assert.Len(t, daily, 6)
}

func TestAnalyticsSinglePlatform(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/analytics/instagram", env.token(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var a map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &a))
	assert.EqualValues(t, 5432, a["followers"])
	assert.EqualValues(t, 1243, a["likes"])
	assert.EqualValues(t, 215, a["comments"])
}

func TestAnalyticsAbsentPlatform(t *testing.T) {
	env := newTestEnv(t)

	// "myspace" has no snapshot: 404, not 500
	w, resp := env.do(t, http.MethodGet, "/api/analytics/myspace", env.token(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no analytics for platform", resp.Message)
}
