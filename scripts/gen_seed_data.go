//go:build ignore

// Command gen_seed_data writes a sample task collection for the local store.
//
// Usage:
//
//	go run ./scripts/gen_seed_data.go --out testdata/tasks.json --count 12
//	taskapp serve --data testdata/tasks.json
//
// It refuses to overwrite an existing file unless --force is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pablasso/taskapp/internal/server"
	"github.com/pablasso/taskapp/internal/task"
)

var (
	titles = []string{
		"Renew passport", "Plan sprint review", "Fix login redirect", "Water the plants",
		"Write release notes", "Book dentist appointment", "Migrate CI runners", "Call the landlord",
		"Review onboarding doc", "Order office chairs", "Rotate API keys", "Back up photo library",
	}
	owners = []string{"Ana", "Ben", "Chloe", "Dev"}
	tags   = []string{"work", "home", "errand", "urgent", "infra, work", "personal, health"}
)

func main() {
	out := flag.String("out", "testdata/tasks.json", "Data file to write")
	count := flag.Int("count", len(titles), "Number of tasks to generate")
	force := flag.Bool("force", false, "Overwrite an existing data file")
	flag.Parse()

	if err := run(*out, *count, *force); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out string, count int, force bool) error {
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	if _, err := os.Stat(out); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", out)
	}
	if force {
		if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", out, err)
		}
	}

	repo, err := server.OpenTaskRepository(out)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range count {
		created := now.AddDate(0, 0, -count+i)
		rec := task.Record{
			Title:       titles[i%len(titles)],
			Description: "Sample task " + fmt.Sprint(i+1) + ": " + strings.ToLower(titles[i%len(titles)]) + ".",
			DueDate:     created.AddDate(0, 0, 7+i%14).Format("2006-01-02"),
			Priority:    task.Priorities[i%len(task.Priorities)],
			AssignedTo:  owners[i%len(owners)],
			Tags:        tags[i%len(tags)],
			Status:      task.Statuses[i%len(task.Statuses)],
			CreatedAt:   task.Stamp(created),
		}
		if i%3 == 0 {
			rec.UpdatedAt = task.Stamp(created.Add(2 * time.Hour))
		}
		if _, err := repo.Create(rec); err != nil {
			return fmt.Errorf("failed to write task %d: %w", i+1, err)
		}
	}

	fmt.Printf("Wrote %d tasks to %s\n", count, out)
	return nil
}
