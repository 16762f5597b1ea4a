package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/formatter"
	"github.com/AryehRotberg/reactive-wings/internal/models"
	"github.com/AryehRotberg/reactive-wings/internal/repositories"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"github.com/urfave/cli/v3"
)

// SubscriptionsList fetches and prints the signed-in user's subscriptions.
func (r *Runner) SubscriptionsList(ctx context.Context, cmd *cli.Command) error {
	res := r.coordinator.Refresh(ctx)
	if res.Err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", res.Err)
	}

	if cmd.Bool("json") {
		if err := r.writeJSON(res.Subscriptions, cmd.Bool("pretty")); err != nil {
			return err
		}
	} else {
		r.writePlain("%s", formatter.RenderUserHeader(res.Email))
		r.writePlain("%s", formatter.RenderSubscriptionList(res.Subscriptions))
	}

	r.saveSnapshot(ctx, res.Email, res.Subscriptions)
	return nil
}

// refreshAndPrint re-fetches the list after a mutating workflow and prints it.
func (r *Runner) refreshAndPrint(ctx context.Context) error {
	res := r.coordinator.Refresh(ctx)
	if res.Err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", res.Err)
	}

	r.writePlain("%s", formatter.RenderUserHeader(res.Email))
	r.writePlain("%s", formatter.RenderSubscriptionList(res.Subscriptions))
	r.saveSnapshot(ctx, res.Email, res.Subscriptions)
	return nil
}

// SubscriptionsAdd runs the subscribe workflow and prints the refreshed list.
func (r *Runner) SubscriptionsAdd(ctx context.Context, cmd *cli.Command) error {
	date := cmd.String("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	res := r.coordinator.Subscribe(ctx, cmd.String("airline"), cmd.String("flight"), date)
	if res.Err != nil {
		return fmt.Errorf("%s: %w", res.Message, res.Err)
	}

	r.writePlain("%s\n", res.Message)
	return r.refreshAndPrint(ctx)
}

// SubscriptionsRemove deletes a subscription by airline, flight, and date.
func (r *Runner) SubscriptionsRemove(ctx context.Context, cmd *cli.Command) error {
	date, err := models.ScheduledDateKey(cmd.String("date"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	key := models.SubscriptionKey{
		AirlineCode:   cmd.String("airline"),
		FlightNumber:  cmd.String("flight"),
		ScheduledDate: date,
	}

	res := r.coordinator.Unsubscribe(ctx, key, 0)
	if res.Err != nil {
		return fmt.Errorf("%s: %w", res.Message, res.Err)
	}

	r.writePlain("%s\n", res.Message)
	return r.refreshAndPrint(ctx)
}

// SubscriptionsCached prints the most recent locally saved snapshot without
// contacting the server.
func (r *Runner) SubscriptionsCached(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openSnapshotRepo(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot, err := repo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cached subscriptions: %w", err)
	}
	if snapshot == nil {
		return r.writePlain("No cached subscriptions. Run 'wings subscriptions list' first.\n")
	}

	if cmd.Bool("json") {
		return r.writeJSON(snapshot, cmd.Bool("pretty"))
	}

	r.writePlain("%s", formatter.RenderUserHeader(snapshot.Email))
	r.writePlain("Cached at %s\n\n", snapshot.FetchedAt.Local().Format("Jan 2, 2006, 03:04 PM"))
	return r.writePlain("%s", formatter.RenderSubscriptionList(snapshot.Subscriptions))
}

func (r *Runner) openSnapshotRepo(ctx context.Context) (*repositories.SnapshotRepository, *sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Cache.MaxOpenConns, r.config.Cache.MaxIdleConns)

	repo := repositories.NewSnapshotRepository(db)
	if err := repo.Init(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db, nil
}

// saveSnapshot persists the freshly fetched list for offline viewing. Cache
// failures only warn; the fetch already succeeded.
func (r *Runner) saveSnapshot(ctx context.Context, email string, subs []models.FlightSubscription) {
	repo, db, err := r.openSnapshotRepo(ctx)
	if err != nil {
		r.logger.Warn("skipping snapshot save", "error", err)
		return
	}
	defer db.Close()

	if _, err := repo.Save(ctx, email, subs); err != nil {
		r.logger.Warn("failed to save snapshot", "error", err)
		return
	}
	if err := repo.Prune(ctx, 10); err != nil {
		r.logger.Warn("failed to prune snapshots", "error", err)
	}
}
