package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type AdRepository interface {
	ListByUser(ctx context.Context) ([]*entity.Ad, error)
	ListAll(ctx context.Context) ([]*entity.Ad, error)
	Create(ctx context.Context, ad *entity.Ad) (*entity.Ad, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Ad, error)
	Delete(ctx context.Context, id string) error
}
