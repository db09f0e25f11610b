package pg

import (
	"context"
	"fmt"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txManager struct {
	manager trm.Manager
}

// NewTXManager builds a manager whose transactions are visible to Conn
// through the context passed to fn. Nested Begin calls join the outer
// transaction.
func NewTXManager(db trmpgx.Transactional) (TXManager, error) {
	m, err := manager.New(trmpgx.NewDefaultFactory(db))
	if err != nil {
		return nil, fmt.Errorf("can't create transaction manager: %w", err)
	}
	return &txManager{manager: m}, nil
}

func (t *txManager) Begin(ctx context.Context, fn TransactionalFn) error {
	return t.manager.Do(ctx, fn)
}
