package sessionrepo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/pg"
)

const (
	table        = "game_sessions"
	colID        = "id"
	colUserID    = "user_id"
	colStartTime = "start_time"
	colEndTime   = "end_time"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"

	returning = "RETURNING id, user_id, start_time, end_time, created_at, updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sessionWithOwner selects a session together with its owner's public
// profile.
var sessionWithOwner = psql.Select(
	"s.id", "s.user_id", "s.start_time", "s.end_time", "s.created_at", "s.updated_at",
	"u.id", "u.name", "u.email",
).
	From(table + " s").
	Join("users u ON u.id = s.user_id")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, userID int, startTime time.Time) (*domain.Session, error) {
	query, args, err := psql.Insert(table).
		Columns(colUserID, colStartTime).
		Values(userID, startTime).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var session domain.Session
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&session.ID, &session.UserID, &session.StartTime, &session.EndTime, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// FindByID returns nil when the session does not exist.
func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Session, error) {
	query, args, err := sessionWithOwner.Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	session, err := scanWithOwner(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find session", zap.Int("session_id", id), zap.Error(err))
		return nil, err
	}
	return session, nil
}

// LockByID reads the session row with FOR UPDATE. It must run inside a
// transaction; concurrent writers on the same session queue behind it.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Session, error) {
	query, args, err := psql.Select(colID, colUserID, colStartTime, colEndTime, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}

	var session domain.Session
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&session.ID, &session.UserID, &session.StartTime, &session.EndTime, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock session", zap.Int("session_id", id), zap.Error(err))
		return nil, err
	}
	return &session, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Session, error) {
	query, args, err := sessionWithOwner.
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("s.start_time DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		session, err := scanWithOwner(rows)
		if err != nil {
			zap.L().Error("failed to scan session", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

func (r *Repository) Close(ctx context.Context, id int, endTime time.Time) error {
	query, args, err := psql.Update(table).
		Set(colEndTime, endTime).
		Set(colUpdatedAt, endTime).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("failed to close session", zap.Int("session_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the session; its spins go with it through the foreign key.
func (r *Repository) Delete(ctx context.Context, id int) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{colID: id}).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("failed to delete session", zap.Int("session_id", id), zap.Error(err))
		return err
	}
	return nil
}

func scanWithOwner(row pgx.Row) (*domain.Session, error) {
	var session domain.Session
	var owner domain.User
	err := row.Scan(
		&session.ID, &session.UserID, &session.StartTime, &session.EndTime, &session.CreatedAt, &session.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Email,
	)
	if err != nil {
		return nil, err
	}
	session.User = &owner
	return &session, nil
}
