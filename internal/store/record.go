package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// Record names for the two durably persisted state slices. Each holds a JSON
// projection restricted to an explicit whitelist of fields (see state package).
const (
	RecordCandidate = "candidate"
	RecordSession   = "session"

	// Small markers persisted alongside the slices.
	RecordAuthToken       = "auth_token"
	RecordInterviewerAuth = "interviewer_auth"
)

// InterviewerAuthGranted is the marker value stored after the dashboard
// password check passes. It is cosmetic gating, not a security boundary.
const InterviewerAuthGranted = "authenticated"

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// RecordRepo persists named records to durable local storage.
type RecordRepo interface {
	// Save stores data under name, replacing any previous value.
	Save(ctx context.Context, name string, data []byte) error

	// Load returns the data stored under name, or nil if absent.
	Load(ctx context.Context, name string) ([]byte, error)

	// Delete removes the record stored under name. Deleting an absent
	// record is not an error.
	Delete(ctx context.Context, name string) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Save(ctx context.Context, name string, data []byte) error {
	query, args, err := sqlBuilder.
		Insert("records").
		Columns("name", "data", "updated_at").
		Values(name, string(data), time.Now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save record %q: %w", name, err)
	}
	return nil
}

func (r *recordRepo) Load(ctx context.Context, name string) ([]byte, error) {
	query, args, err := sqlBuilder.
		Select("data").
		From("records").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var data string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load record %q: %w", name, err)
	}
	return []byte(data), nil
}

func (r *recordRepo) Delete(ctx context.Context, name string) error {
	query, args, err := sqlBuilder.
		Delete("records").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete record %q: %w", name, err)
	}
	return nil
}
