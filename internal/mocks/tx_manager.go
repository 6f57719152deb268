package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// TxManager runs the callback inline so expectations set on other mocks
// fire inside the "transaction". An expectation error short-circuits the
// callback, mimicking a failed begin.
type TxManager struct {
	mock.Mock
}

func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}

	return fn(ctx)
}
