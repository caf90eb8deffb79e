package seed

import (
	"time"

	"github.com/postpilot/postpilot/internal/domain/entity"
)

// Demo is the fixture dataset loaded by the in-memory store and the
// database seeder: one user, four platform accounts, three posts and a
// full analytics map. Account and post UserID fields are empty until
// the caller persists the user and fills them in.
type Demo struct {
	User      entity.User
	Accounts  []entity.SocialAccount
	Posts     []entity.Post
	Analytics map[entity.Platform]entity.PlatformAnalytics
}

func strptr(s string) *string { return &s }

func daily(samples ...[3]any) []entity.DailySample {
	out := make([]entity.DailySample, 0, len(samples))
	for _, s := range samples {
		out = append(out, entity.DailySample{
			Date:       s[0].(string),
			Followers:  s[1].(int),
			Engagement: s[2].(float64),
		})
	}
	return out
}

// DemoData builds the fixture. passwordHash must be the bcrypt hash for
// "password123" so the seeded login works.
func DemoData(passwordHash string) *Demo {
	return &Demo{
		User: entity.User{Email: "demo@example.com", Password: passwordHash, Name: "Demo User"},
		Accounts: []entity.SocialAccount{
			{Platform: entity.PlatformTwitter, Handle: "@demouser", Connected: true},
			{Platform: entity.PlatformInstagram, Handle: "@demouser", Connected: true},
			{Platform: entity.PlatformFacebook, Handle: "Demo User", Connected: false},
			{Platform: entity.PlatformLinkedIn, Handle: "Demo User", Connected: true},
		},
		Posts: []entity.Post{
			{
				Content:   "Check out our new product launch! #excited",
				Platforms: []entity.Platform{entity.PlatformTwitter, entity.PlatformInstagram},
				Scheduled: time.Date(2025, time.May, 15, 10, 0, 0, 0, time.Local),
				Status:    entity.StatusScheduled,
				Image:     strptr("https://images.pexels.com/photos/7947941/pexels-photo-7947941.jpeg"),
			},
			{
				Content:   "We're hiring! Join our amazing team today.",
				Platforms: []entity.Platform{entity.PlatformLinkedIn, entity.PlatformTwitter},
				Scheduled: time.Date(2025, time.May, 16, 14, 30, 0, 0, time.Local),
				Status:    entity.StatusScheduled,
			},
			{
				Content:   "Thank you to everyone who attended our webinar!",
				Platforms: []entity.Platform{entity.PlatformFacebook, entity.PlatformLinkedIn},
				Scheduled: time.Date(2025, time.May, 10, 9, 0, 0, 0, time.Local),
				Status:    entity.StatusPublished,
				Image:     strptr("https://images.pexels.com/photos/3153198/pexels-photo-3153198.jpeg"),
			},
		},
		Analytics: map[entity.Platform]entity.PlatformAnalytics{
			entity.PlatformTwitter: {
				Followers:  2342,
				Engagement: 3.8,
				Extras:     map[string]float64{"retweets": 124, "likes": 532},
				Daily: daily(
					[3]any{"2025-05-01", 2300, 3.2},
					[3]any{"2025-05-02", 2315, 3.4},
					[3]any{"2025-05-03", 2322, 3.5},
					[3]any{"2025-05-04", 2330, 3.6},
					[3]any{"2025-05-05", 2336, 3.7},
					[3]any{"2025-05-06", 2342, 3.8},
				),
			},
			entity.PlatformInstagram: {
				Followers:  5432,
				Engagement: 4.2,
				Extras:     map[string]float64{"likes": 1243, "comments": 215},
				Daily: daily(
					[3]any{"2025-05-01", 5350, 4.0},
					[3]any{"2025-05-02", 5375, 4.0},
					[3]any{"2025-05-03", 5390, 4.1},
					[3]any{"2025-05-04", 5410, 4.1},
					[3]any{"2025-05-05", 5420, 4.2},
					[3]any{"2025-05-06", 5432, 4.2},
				),
			},
			entity.PlatformFacebook: {
				Followers:  3254,
				Engagement: 2.1,
				Extras:     map[string]float64{"reactions": 578, "shares": 124},
				Daily: daily(
					[3]any{"2025-05-01", 3210, 1.9},
					[3]any{"2025-05-02", 3220, 1.9},
					[3]any{"2025-05-03", 3228, 2.0},
					[3]any{"2025-05-04", 3235, 2.0},
					[3]any{"2025-05-05", 3245, 2.1},
					[3]any{"2025-05-06", 3254, 2.1},
				),
			},
			entity.PlatformLinkedIn: {
				Followers:  1243,
				Engagement: 2.8,
				Extras:     map[string]float64{"reactions": 345, "comments": 87},
				Daily: daily(
					[3]any{"2025-05-01", 1210, 2.5},
					[3]any{"2025-05-02", 1215, 2.6},
					[3]any{"2025-05-03", 1225, 2.6},
					[3]any{"2025-05-04", 1230, 2.7},
					[3]any{"2025-05-05", 1238, 2.7},
					[3]any{"2025-05-06", 1243, 2.8},
				),
			},
		},
	}
}
