package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/lillieharlow/Bloggy-API/internal/config"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/repository/postgres"
)

// fixture is the YAML seed file layout: users own posts, posts own
// comments. Passwords are plaintext in the fixture and hashed on insert.
type fixture struct {
	Users []struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Posts    []struct {
			Title    string   `yaml:"title"`
			Body     string   `yaml:"body"`
			Image    string   `yaml:"image"`
			Tags     []string `yaml:"tags"`
			Comments []struct {
				Author string `yaml:"author"`
				Text   string `yaml:"text"`
			} `yaml:"comments"`
		} `yaml:"posts"`
	} `yaml:"users"`
}

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	file := flag.String("file", "seed.yaml", "Path to the YAML fixture file")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: Cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.DropTables(ctx, pool); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	fx, err := loadFixture(*file)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Logger: logger}
	if err := seed(ctx, repoConfig, fx); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Seeding complete")
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

func seed(ctx context.Context, repoConfig *postgres.RepositoryConfig, fx *fixture) error {
	users := postgres.NewUserRepository(repoConfig)
	posts := postgres.NewPostRepository(repoConfig)
	comments := postgres.NewCommentRepository(repoConfig)

	now := time.Now()
	for _, u := range fx.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}

		user := &models.User{
			ID:           uuid.NewString(),
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}

		for _, p := range u.Posts {
			post := &models.Post{
				ID:        uuid.NewString(),
				Title:     p.Title,
				Body:      p.Body,
				Image:     p.Image,
				Tags:      p.Tags,
				AuthorID:  user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := posts.Create(ctx, post); err != nil {
				return fmt.Errorf("create post %q: %w", p.Title, err)
			}

			for _, c := range p.Comments {
				comment := &models.Comment{
					ID:        uuid.NewString(),
					PostID:    post.ID,
					Author:    c.Author,
					Text:      c.Text,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := comments.Create(ctx, comment); err != nil {
					return fmt.Errorf("create comment on %q: %w", p.Title, err)
				}
			}
		}
	}

	return nil
}
