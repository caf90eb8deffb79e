package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAnalyticsMarshalFlattensExtras(t *testing.T) {
	a := PlatformAnalytics{
		Followers:  2342,
		Engagement: 3.8,
		Extras:     map[string]float64{"retweets": 124, "likes": 532},
		Daily: []DailySample{
			{Date: "2025-05-01", Followers: 2300, Engagement: 3.2},
		},
	}

	b, err := json.Marshal(a)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.EqualValues(t, 2342, out["followers"])
	assert.InDelta(t, 3.8, out["engagement"].(float64), 0.001)
	assert.EqualValues(t, 124, out["retweets"])
	assert.EqualValues(t, 532, out["likes"])

	daily, ok := out["daily"].([]any)
	require.True(t, ok)
	require.Len(t, daily, 1)
	first := daily[0].(map[string]any)
	assert.Equal(t, "2025-05-01", first["date"])
}

func TestPlatformAnalyticsMarshalNilDaily(t *testing.T) {
	b, err := json.Marshal(PlatformAnalytics{Followers: 1})
	require.NoError(t, err)
	// daily is always an array on the wire, never null
	assert.Contains(t, string(b), `"daily":[]`)
}

func TestPlatformAnalyticsUnmarshalCollectsExtras(t *testing.T) {
	in := `{"followers":5432,"engagement":4.2,"likes":1243,"comments":215,"daily":[{"date":"2025-05-01","followers":5350,"engagement":4.0}]}`

	var a PlatformAnalytics
	require.NoError(t, json.Unmarshal([]byte(in), &a))
	assert.Equal(t, 5432, a.Followers)
	assert.InDelta(t, 4.2, a.Engagement, 0.001)
	assert.InDelta(t, 1243, a.Extras["likes"], 0.001)
	assert.InDelta(t, 215, a.Extras["comments"], 0.001)
	require.Len(t, a.Daily, 1)
	assert.Equal(t, 5350, a.Daily[0].Followers)
}

func TestPlatformAnalyticsRoundTrip(t *testing.T) {
	a := PlatformAnalytics{
		Followers:  1243,
		Engagement: 2.8,
		Extras:     map[string]float64{"reactions": 345},
		Daily:      []DailySample{{Date: "2025-05-06", Followers: 1243, Engagement: 2.8}},
	}
	b, err := json.Marshal(a)
	require.NoError(t, err)

	var got PlatformAnalytics
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, a, got)
}
