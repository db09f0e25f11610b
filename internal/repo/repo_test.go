package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/spintracker/internal/pg"
	sessionrepo "github.com/GlebRadaev/spintracker/internal/repo/session-repo"
	spinrepo "github.com/GlebRadaev/spintracker/internal/repo/spin-repo"
	userrepo "github.com/GlebRadaev/spintracker/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB, mockTxManager
}

func TestNew(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &sessionrepo.Repository{}, repo.SessionRepo)
	assert.IsType(t, &spinrepo.Repository{}, repo.SpinRepo)
	assert.Same(t, txManager, repo.TXManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
