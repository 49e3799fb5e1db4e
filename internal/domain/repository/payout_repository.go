package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type PayoutRepository interface {
	History(ctx context.Context) ([]*entity.Payout, error)
	Request(ctx context.Context, amount float64, method string) (*entity.Payout, error)
}
