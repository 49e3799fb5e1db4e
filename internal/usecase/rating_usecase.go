package usecase

import (
	"context"
	"sync"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/pkg/errors"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	user       entity.Identity

	mu      sync.Mutex
	ratings []*entity.Rating
	guard   *submitGuard
}

func NewRatingUseCase(ratingRepo repository.RatingRepository, user entity.Identity) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		user:       user,
		guard:      newSubmitGuard(),
	}
}

type SubmitRatingInput struct {
	ProductID string
	Rating    int
	Comment   string
	Earning   float64
}

func (uc *RatingUseCase) LoadUserRatings(ctx context.Context) ([]*entity.Rating, error) {
	ratings, err := uc.ratingRepo.ListByUser(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.ratings = ratings
	uc.mu.Unlock()
	return uc.UserRatings(), nil
}

func (uc *RatingUseCase) UserRatings() []*entity.Rating {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.Rating, len(uc.ratings))
	copy(snapshot, uc.ratings)
	return snapshot
}

func (uc *RatingUseCase) SubmitRating(ctx context.Context, input SubmitRatingInput) (*entity.Rating, error) {
	if input.ProductID == "" {
		return nil, errors.Validation("Product id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5")
	}

	if !uc.guard.begin("submit-rating") {
		return nil, errors.Conflict("A rating submission is already in progress")
	}
	defer uc.guard.end("submit-rating")

	created, err := uc.ratingRepo.Submit(ctx, &entity.Rating{
		ProductID: input.ProductID,
		UserID:    uc.user.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Earning:   input.Earning,
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.ratings = append(uc.ratings, created)
	uc.mu.Unlock()
	return created, nil
}

func (uc *RatingUseCase) HasRated(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, errors.Validation("Product id is required")
	}
	return uc.ratingRepo.HasRated(ctx, productID)
}

// ProductRatings fetches a product's ratings plus the derived average,
// rounded to one decimal for display.
func (uc *RatingUseCase) ProductRatings(ctx context.Context, productID string) ([]*entity.Rating, float64, error) {
	if productID == "" {
		return nil, 0, errors.Validation("Product id is required")
	}

	ratings, err := uc.ratingRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	values := make([]entity.Rating, len(ratings))
	for i, r := range ratings {
		values[i] = *r
	}
	return ratings, entity.AverageRating(values), nil
}
