package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/postpilot/postpilot/config"
	pginfra "github.com/postpilot/postpilot/internal/infrastructure/postgres"
	"github.com/postpilot/postpilot/internal/infrastructure/seed"
	"github.com/postpilot/postpilot/pkg/helpers"
)

// Seeds the demo dataset into Postgres. Safe to re-run: the user and
// accounts are upserted and posts are only inserted when the user has
// none yet.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	demo := seed.DemoData(hash)

	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, demo.User.Email, demo.User.Password, demo.User.Name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=password123\n", userID, demo.User.Email)

	accounts := pginfra.NewAccountRepository(pool)
	for i := range demo.Accounts {
		a := demo.Accounts[i]
		a.UserID = userID
		if err := accounts.Upsert(&a); err != nil {
			log.Fatalf("failed to seed %s account: %v", a.Platform, err)
		}
	}
	fmt.Printf("seeded %d social accounts\n", len(demo.Accounts))

	posts := pginfra.NewPostRepository(pool)
	existing, err := posts.ListByUser(userID)
	if err != nil {
		log.Fatalf("failed to list posts: %v", err)
	}
	if len(existing) == 0 {
		for i := range demo.Posts {
			p := demo.Posts[i]
			p.UserID = userID
			if err := posts.Create(&p); err != nil {
				log.Fatalf("failed to seed post: %v", err)
			}
		}
		fmt.Printf("seeded %d posts\n", len(demo.Posts))
	} else {
		fmt.Printf("skipping posts, user already has %d\n", len(existing))
	}

	analytics := pginfra.NewAnalyticsRepository(pool)
	for platform, a := range demo.Analytics {
		if err := analytics.Upsert(platform, a); err != nil {
			log.Fatalf("failed to seed %s analytics: %v", platform, err)
		}
	}
	fmt.Printf("seeded analytics for %d platforms\n", len(demo.Analytics))
}
