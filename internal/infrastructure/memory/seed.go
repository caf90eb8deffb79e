package memory

import (
	"github.com/postpilot/postpilot/internal/infrastructure/seed"
)

// SeedDemo loads the demo dataset: one user, four platform accounts,
// three posts and a full analytics map. passwordHash must be the bcrypt
// hash for "password123" so the seeded login works.
func (s *Store) SeedDemo(passwordHash string) {
	demo := seed.DemoData(passwordHash)

	u := demo.User
	_ = s.Users().Create(&u)

	for i := range demo.Accounts {
		a := demo.Accounts[i]
		a.UserID = u.ID
		_ = s.Accounts().Upsert(&a)
	}
	for i := range demo.Posts {
		p := demo.Posts[i]
		p.UserID = u.ID
		_ = s.Posts().Create(&p)
	}
	for platform, a := range demo.Analytics {
		s.SetAnalytics(platform, a)
	}
}
