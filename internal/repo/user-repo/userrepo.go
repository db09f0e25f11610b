package userrepo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/pg"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colCreatedAt    = "created_at"
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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, sq.Eq{colEmail: email})
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, sq.Eq{colID: id})
}

func (repo *Repository) findOne(ctx context.Context, where sq.Eq) (*domain.User, error) {
	query, args, err := psql.Select(colID, colName, colEmail, colPasswordHash, colCreatedAt).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = repo.db.QueryRow(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := psql.Insert(table).
		Columns(colName, colEmail, colPasswordHash).
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = repo.db.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
