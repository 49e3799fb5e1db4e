package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type UserRepository interface {
	Me(ctx context.Context) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, fullName, email string) (*entity.Identity, error)
}

// PlatformStats is the admin dashboard summary the remote API computes.
type PlatformStats struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalAds     int     `json:"totalAds"`
	PendingAds   int     `json:"pendingAds"`
	TotalPayouts float64 `json:"totalPayouts"`
}

type AdminRepository interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	ListUsers(ctx context.Context) ([]*entity.Identity, error)
}
