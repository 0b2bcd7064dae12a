// seed inserts a demo user with a few projects and tasks into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akulov/taskboard/internal/domain"
	"github.com/akulov/taskboard/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "password123"
)

type projectSpec struct {
	name        string
	description string
	tasks       []taskSpec
}

type taskSpec struct {
	title   string
	status  domain.TaskStatus
	dueDays int // days from now; 0 means no due date
}

var seedProjects = []projectSpec{
	{
		name:        "Website Redesign",
		description: "Refresh the marketing site",
		tasks: []taskSpec{
			{"Draft wireframes", domain.TaskCompleted, 0},
			{"Review copy with marketing", domain.TaskInProgress, 3},
			{"Ship new landing page", domain.TaskPending, 14},
		},
	},
	{
		name:        "Q3 Infrastructure",
		description: "Platform maintenance backlog",
		tasks: []taskSpec{
			{"Upgrade postgres to 16", domain.TaskPending, 30},
			{"Rotate API credentials", domain.TaskPending, 7},
			{"Document runbooks", domain.TaskInProgress, 0},
		},
	},
	{
		name:  "Personal",
		tasks: []taskSpec{{"Book dentist appointment", domain.TaskPending, 10}},
	},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	projects := postgres.NewProjectRepository(pool)
	tasks := postgres.NewTaskRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user, err := users.Create(ctx, seedEmail, "Seed User", string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			log.Fatalf("seed user already exists, drop the database first")
		}
		log.Fatalf("create user: %v", err)
	}

	total := 0
	for _, ps := range seedProjects {
		p := &domain.Project{UserID: user.ID, Name: ps.name}
		if ps.description != "" {
			desc := ps.description
			p.Description = &desc
		}
		created, err := projects.Create(ctx, p)
		if err != nil {
			log.Fatalf("create project %q: %v", ps.name, err)
		}

		for _, ts := range ps.tasks {
			t := &domain.Task{ProjectID: created.ID, Title: ts.title, Status: ts.status}
			if ts.dueDays > 0 {
				due := time.Now().AddDate(0, 0, ts.dueDays)
				t.DueDate = &due
			}
			if _, err := tasks.Create(ctx, t); err != nil {
				log.Fatalf("create task %q: %v", ts.title, err)
			}
			total++
		}
	}

	fmt.Printf("seeded %s (password %q) with %d projects and %d tasks\n",
		seedEmail, seedPassword, len(seedProjects), total)
}
