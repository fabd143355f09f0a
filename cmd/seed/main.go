// Command seed provisions the admin user and, on an empty database, a few
// sample posts and resume entries. Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"lunblog/internal/auth"
	"lunblog/internal/config"
	"lunblog/internal/database"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dsn := database.DSNFromEnv()

	if err := database.RunMigrations(ctx, dsn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	email := config.GetEnvOrDefault("SEED_ADMIN_EMAIL", "admin@lunblog.com")
	password := config.MustGetEnv("SEED_ADMIN_PASSWORD")
	name := config.GetEnvOrDefault("SEED_ADMIN_NAME", "Blog Admin")

	if err := seedAdmin(ctx, db, email, password, name); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Admin user ready: %s", email)

	if err := seedPosts(ctx, db); err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}

	if err := seedResume(ctx, db); err != nil {
		log.Fatalf("Failed to seed resume items: %v", err)
	}

	log.Println("Seeding complete")
}

func seedAdmin(ctx context.Context, db database.Service, email, password, name string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`, uuid.New().String(), email, hash, name)

	return err
}

func seedPosts(ctx context.Context, db database.Service) error {
	samples := []struct {
		title, slug, content, excerpt, status string
	}{
		{
			title:   "Hello, World",
			slug:    "hello-world",
			content: "# Hello, World\n\nFirst post on the new blog. More to come.",
			excerpt: "First post on the new blog.",
			status:  "published",
		},
		{
			title:   "Notes on Go Project Layout",
			slug:    "notes-on-go-project-layout",
			content: "# Notes on Go Project Layout\n\nDraft notes on structuring small Go services.",
			excerpt: "Draft notes on structuring small Go services.",
			status:  "draft",
		},
	}

	for _, p := range samples {
		var publishedAt any
		if p.status == "published" {
			publishedAt = time.Now()
		}

		_, err := db.Exec(ctx, `
			INSERT INTO blog_posts (id, title, slug, content, excerpt, status, published_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			ON CONFLICT (slug) DO NOTHING
		`, uuid.New().String(), p.title, p.slug, p.content, p.excerpt, p.status, publishedAt)
		if err != nil {
			return err
		}
		log.Printf("Post ready: %s (%s)", p.title, p.status)
	}

	return nil
}

func seedResume(ctx context.Context, db database.Service) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM resume_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Resume items already present, skipping")
		return nil
	}

	samples := []struct {
		company, position, description string
		start                          time.Time
		end                            *time.Time
		order                          int
	}{
		{
			company:     "Tech Innovations Inc.",
			position:    "Senior Software Engineer",
			description: "Led development of backend services. Mentored junior developers and established coding standards.",
			start:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			order:       100,
		},
		{
			company:     "Digital Solutions Ltd.",
			position:    "Software Engineer",
			description: "Developed RESTful APIs and responsive web applications.",
			start:       time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
			end:         timePtr(time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)),
			order:       90,
		},
	}

	for _, item := range samples {
		_, err := db.Exec(ctx, `
			INSERT INTO resume_items (id, company, position, description, start_date, end_date, display_order, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		`, uuid.New().String(), item.company, item.position, item.description, item.start, item.end, item.order)
		if err != nil {
			return err
		}
		log.Printf("Resume item ready: %s", item.company)
	}

	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
