package entity

import "encoding/json"

// DailySample is one day of the analytics series for a platform.
type DailySample struct {
	Date       string  `json:"date"`
	Followers  int     `json:"followers"`
	Engagement float64 `json:"engagement"`
}

// PlatformAnalytics holds cumulative counters for a platform plus a
// date-ascending daily series. Followers and Engagement are always
// present; every other metric (retweets, reactions, shares, ...) lives
// in the open Extras map so platforms can differ without changing the
// record shape. On the wire the extras are flattened next to the fixed
// fields, matching what clients already consume.
type PlatformAnalytics struct {
	Followers  int
	Engagement float64
	Extras     map[string]float64
	Daily      []DailySample
}

func (a PlatformAnalytics) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extras)+3)
	for k, v := range a.Extras {
		out[k] = v
	}
	out["followers"] = a.Followers
	out["engagement"] = a.Engagement
	daily := a.Daily
	if daily == nil {
		daily = []DailySample{}
	}
	out["daily"] = daily
	return json.Marshal(out)
}

func (a *PlatformAnalytics) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*a = PlatformAnalytics{Extras: map[string]float64{}}
	for k, v := range raw {
		switch k {
		case "followers":
			if err := json.Unmarshal(v, &a.Followers); err != nil {
				return err
			}
		case "engagement":
			if err := json.Unmarshal(v, &a.Engagement); err != nil {
				return err
			}
		case "daily":
			if err := json.Unmarshal(v, &a.Daily); err != nil {
				return err
			}
		default:
			var n float64
			if err := json.Unmarshal(v, &n); err != nil {
				// non-numeric extras are not part of the model
				continue
			}
			a.Extras[k] = n
		}
	}
	if len(a.Extras) == 0 {
		a.Extras = nil
	}
	return nil
}
