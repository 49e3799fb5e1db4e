package repository

import (
	"context"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
)

type restRatingRepository struct {
	client *platform.Client
}

func NewRestRatingRepository(client *platform.Client) repository.RatingRepository {
	return &restRatingRepository{
		client: client,
	}
}

func (r *restRatingRepository) Submit(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	req := map[string]interface{}{
		"productId": rating.ProductID,
		"rating":    rating.Rating,
		"comment":   rating.Comment,
		"earning":   rating.Earning,
	}

	var created entity.Rating
	if err := r.client.PostJSON(ctx, "/api/ratings/submit", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restRatingRepository) ListByUser(ctx context.Context) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	if err := r.client.GetJSON(ctx, "/api/ratings/user", &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *restRatingRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	if err := r.client.GetJSON(ctx, "/api/ratings/product/"+sanitizeID(productID), &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *restRatingRepository) HasRated(ctx context.Context, productID string) (bool, error) {
	var result struct {
		Rated bool `json:"rated"`
	}
	if err := r.client.GetJSON(ctx, "/api/ratings/check/"+sanitizeID(productID), &result); err != nil {
		return false, err
	}
	return result.Rated, nil
}
