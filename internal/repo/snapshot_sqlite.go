package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// SQLiteSnapshotRepository is the single-box variant of the store. It keeps
// the same table shape as the Postgres repository; timestamps are stored as
// RFC 3339 text because SQLite has no native timestamp type.
type SQLiteSnapshotRepository struct {
	db *sql.DB
}

func NewSQLiteSnapshotRepository(db *sql.DB) *SQLiteSnapshotRepository {
	return &SQLiteSnapshotRepository{db: db}
}

func (r *SQLiteSnapshotRepository) Create(s models.Snapshot) (models.Snapshot, error) {
	payload, err := json.Marshal(s.Products)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to encode products: %w", err)
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := `INSERT INTO cleaning_inventories (device, products, reported_by, date, created_at)
	          VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, s.Device, string(payload), s.ReportedBy, s.Date, s.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: failed to insert snapshot: %v", ErrStoreUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read generated id: %w", err)
	}
	s.ID = int(id)
	return s, nil
}

func (r *SQLiteSnapshotRepository) GetByDevices(devices []string) ([]models.Snapshot, error) {
	placeholders := make([]string, len(devices))
	args := make([]any, len(devices))
	for i, d := range devices {
		placeholders[i] = "?"
		args[i] = d
	}

	query := fmt.Sprintf(`SELECT id, device, products, reported_by, date, created_at
	          FROM cleaning_inventories WHERE device IN (%s)
	          ORDER BY created_at DESC, id DESC`, strings.Join(placeholders, ", "))
	return r.query(query, args...)
}

func (r *SQLiteSnapshotRepository) GetAll() ([]models.Snapshot, error) {
	query := `SELECT id, device, products, reported_by, date, created_at
	          FROM cleaning_inventories
	          ORDER BY device ASC, created_at DESC, id DESC`
	return r.query(query)
}

func (r *SQLiteSnapshotRepository) Devices() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT device FROM cleaning_inventories ORDER BY device ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list devices: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var devices []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return devices, nil
}

func (r *SQLiteSnapshotRepository) DeleteAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cleaning_inventories`); err != nil {
		return fmt.Errorf("%w: failed to delete snapshots: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SQLiteSnapshotRepository) query(query string, args ...any) ([]models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query snapshots: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var snapshots []models.Snapshot
	for rows.Next() {
		var (
			s         models.Snapshot
			payload   string
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.Device, &payload, &s.ReportedBy, &s.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &s.Products); err != nil {
			return nil, fmt.Errorf("failed to decode products for device %s: %w", s.Device, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
		}
		s.CreatedAt = ts
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return snapshots, nil
}
