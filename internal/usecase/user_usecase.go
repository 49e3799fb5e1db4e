package usecase

import (
	"context"
	"strings"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// Refresh re-validates the locally trusted identity against the server.
func (uc *UserUseCase) Refresh(ctx context.Context) (*entity.Identity, error) {
	return uc.userRepo.Me(ctx)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, fullName, email string) (*entity.Identity, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, errors.Validation("Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errors.Validation("Email is required")
	}
	return uc.userRepo.UpdateProfile(ctx, fullName, email)
}

type AdminUseCase struct {
	adminRepo repository.AdminRepository
}

func NewAdminUseCase(adminRepo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
	}
}

func (uc *AdminUseCase) Stats(ctx context.Context) (*repository.PlatformStats, error) {
	return uc.adminRepo.Stats(ctx)
}

func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*entity.Identity, error) {
	return uc.adminRepo.ListUsers(ctx)
}
