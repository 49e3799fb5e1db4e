package repository

import (
	"context"
	"strings"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
	"earnhub/pkg/errors"
)

type restAdRepository struct {
	client *platform.Client
}

func NewRestAdRepository(client *platform.Client) repository.AdRepository {
	return &restAdRepository{
		client: client,
	}
}

func (r *restAdRepository) ListByUser(ctx context.Context) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	if err := r.client.GetJSON(ctx, "/api/ads/user", &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *restAdRepository) ListAll(ctx context.Context) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	if err := r.client.GetJSON(ctx, "/api/ads/all", &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *restAdRepository) Create(ctx context.Context, ad *entity.Ad) (*entity.Ad, error) {
	req := map[string]interface{}{
		"title":       ad.Title,
		"description": ad.Description,
	}
	if ad.Image != "" {
		req["image"] = ad.Image
	}

	var created entity.Ad
	if err := r.client.PostJSON(ctx, "/api/ads/create", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restAdRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Ad, error) {
	if status != entity.AdStatusApproved && status != entity.AdStatusRejected {
		return nil, errors.BadRequest("Unknown ad status", nil)
	}

	var updated entity.Ad
	path := "/api/ads/" + sanitizeID(id) + "/status"
	if err := r.client.PutJSON(ctx, path, map[string]string{"status": status}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restAdRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/api/ads/"+sanitizeID(id))
}

// sanitizeID keeps a record id usable as a single path segment.
func sanitizeID(id string) string {
	return strings.Trim(strings.ReplaceAll(id, "/", ""), " ")
}
