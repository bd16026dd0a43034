package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiktorlazar/ordoai/internal/scheduler"
	"github.com/wiktorlazar/ordoai/internal/storage"
	"github.com/wiktorlazar/ordoai/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ordoai failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	sched := scheduler.NewEngine(cfg.SchedulerBuffer)
	sched.Start()
	defer sched.Stop()
	if err := requeuePendingAlerts(repo, sched); err != nil {
		return err
	}

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithConfig(repo, nil, sched, notifier, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// requeuePendingAlerts reloads event alerts that were scheduled in an
// earlier run and have not fired yet. Alerts already in the past are left
// alone; the store keeps them for the transcript.
func requeuePendingAlerts(repo storage.Repository, sched *scheduler.Engine) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	enabled := true
	events, err := repo.ListEvents(ctx, storage.EventListFilter{Enabled: &enabled})
	if err != nil {
		return fmt.Errorf("load pending events: %w", err)
	}
	now := time.Now()
	for _, ev := range events {
		if ev.AlertAt == nil || ev.AlertAt.Before(now) {
			continue
		}
		if err := sched.Schedule(scheduler.Alert{
			ID:             ev.ID,
			ConversationID: ev.ConversationID,
			Title:          ev.Title,
			TriggerAt:      *ev.AlertAt,
		}); err != nil {
			return fmt.Errorf("requeue alert %s: %w", ev.ID, err)
		}
	}
	return nil
}
