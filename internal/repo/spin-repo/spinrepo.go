package spinrepo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/pg"
)

const (
	table        = "spins"
	colID        = "id"
	colSessionID = "session_id"
	colResult    = "result"
	colBetAmount = "bet_amount"
	colPL        = "pl"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, spin *domain.Spin) (*domain.Spin, error) {
	query, args, err := psql.Insert(table).
		Columns(colSessionID, colResult, colBetAmount, colPL).
		Values(spin.SessionID, spin.Result, spin.BetAmount, spin.PL).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colUpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&spin.ID, &spin.CreatedAt, &spin.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to save spin", zap.Int("session_id", spin.SessionID), zap.Error(err))
		return nil, err
	}
	return spin, nil
}

// ListBySessionID returns the session's spins oldest first.
func (r *Repository) ListBySessionID(ctx context.Context, sessionID int) ([]domain.Spin, error) {
	query, args, err := psql.Select(colID, colSessionID, colResult, colBetAmount, colPL, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colCreatedAt, colID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list spins", zap.Int("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	spins := make([]domain.Spin, 0)
	for rows.Next() {
		var spin domain.Spin
		err := rows.Scan(&spin.ID, &spin.SessionID, &spin.Result, &spin.BetAmount, &spin.PL, &spin.CreatedAt, &spin.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan spin", zap.Error(err))
			return nil, err
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return spins, nil
}
