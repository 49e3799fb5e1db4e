package repository

import (
	"context"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
)

type restUserRepository struct {
	client *platform.Client
}

func NewRestUserRepository(client *platform.Client) repository.UserRepository {
	return &restUserRepository{
		client: client,
	}
}

// Me re-validates the locally trusted identity against the server. Called
// before sensitive mutations so a revoked credential is caught early.
func (r *restUserRepository) Me(ctx context.Context) (*entity.Identity, error) {
	var me entity.Identity
	if err := r.client.GetJSON(ctx, "/api/users/me", &me); err != nil {
		return nil, err
	}
	return &me, nil
}

func (r *restUserRepository) UpdateProfile(ctx context.Context, fullName, email string) (*entity.Identity, error) {
	req := map[string]string{
		"name":  fullName,
		"email": email,
	}

	var updated entity.Identity
	if err := r.client.PutJSON(ctx, "/api/users/profile", req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type restAdminRepository struct {
	client *platform.Client
}

func NewRestAdminRepository(client *platform.Client) repository.AdminRepository {
	return &restAdminRepository{
		client: client,
	}
}

func (r *restAdminRepository) Stats(ctx context.Context) (*repository.PlatformStats, error) {
	var stats repository.PlatformStats
	if err := r.client.GetJSON(ctx, "/api/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *restAdminRepository) ListUsers(ctx context.Context) ([]*entity.Identity, error) {
	var users []*entity.Identity
	if err := r.client.GetJSON(ctx, "/api/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}
