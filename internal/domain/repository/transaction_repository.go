package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type TransactionRepository interface {
	ListByUser(ctx context.Context) ([]*entity.Transaction, error)
}

type FundRepository interface {
	Deposit(ctx context.Context, amount float64, method, reference string) (*entity.Transaction, error)
}
