package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/models"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
)

// Snapshot is one persisted copy of a user's subscription list as fetched
// from the server.
type Snapshot struct {
	ID            string
	Email         string
	FetchedAt     time.Time
	Subscriptions []models.FlightSubscription
}

// SnapshotRepository persists subscription snapshots in SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new [SnapshotRepository] with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Init creates the snapshots table if it does not exist.
func (r *SnapshotRepository) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			fetched_at TIMESTAMP NOT NULL,
			payload TEXT NOT NULL
		)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return nil
}

// Save stores the given subscription list as a new snapshot and returns it.
func (r *SnapshotRepository) Save(ctx context.Context, email string, subs []models.FlightSubscription) (*Snapshot, error) {
	payload, err := json.Marshal(subs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	snapshot := &Snapshot{
		ID:            shared.GenerateID(),
		Email:         email,
		FetchedAt:     time.Now().UTC(),
		Subscriptions: subs,
	}

	query := `
		INSERT INTO snapshots (id, email, fetched_at, payload) VALUES (?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query, snapshot.ID, snapshot.Email, snapshot.FetchedAt, string(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return snapshot, nil
}

// Latest retrieves the most recently fetched snapshot.
// Returns nil with no error when no snapshot has been stored yet.
func (r *SnapshotRepository) Latest(ctx context.Context) (*Snapshot, error) {
	query := `
		SELECT id, email, fetched_at, payload
		FROM snapshots
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var (
		id        string
		email     string
		fetchedAt time.Time
		payload   string
	)

	err := r.db.QueryRowContext(ctx, query).Scan(&id, &email, &fetchedAt, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var subs []models.FlightSubscription
	if err := json.Unmarshal([]byte(payload), &subs); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}

	return &Snapshot{ID: id, Email: email, FetchedAt: fetchedAt, Subscriptions: subs}, nil
}

// Prune deletes all snapshots except the newest keep entries.
func (r *SnapshotRepository) Prune(ctx context.Context, keep int) error {
	query := `
		DELETE FROM snapshots
		WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY fetched_at DESC LIMIT ?
		)
	`

	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	return nil
}
