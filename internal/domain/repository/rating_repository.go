package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type RatingRepository interface {
	Submit(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)
	ListByUser(ctx context.Context) ([]*entity.Rating, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error)
	HasRated(ctx context.Context, productID string) (bool, error)
}
