package usecase

import (
	"context"
	"strings"
	"sync"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	user        entity.Identity

	mu       sync.Mutex
	products []*entity.Product
	guard    *submitGuard
}

func NewProductUseCase(productRepo repository.ProductRepository, user entity.Identity) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		user:        user,
		guard:       newSubmitGuard(),
	}
}

func (uc *ProductUseCase) LoadProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.products = products
	uc.mu.Unlock()
	return uc.Products(), nil
}

func (uc *ProductUseCase) Products() []*entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.Product, len(uc.products))
	copy(snapshot, uc.products)
	return snapshot
}

func (uc *ProductUseCase) AddProduct(ctx context.Context, name, description string, image *repository.ImageUpload) (*entity.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("Name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.Validation("Description is required")
	}

	if !uc.guard.begin("add-product") {
		return nil, errors.Conflict("A product submission is already in progress")
	}
	defer uc.guard.end("add-product")

	created, err := uc.productRepo.Create(ctx, &entity.Product{
		Name:        name,
		Description: description,
		AddedBy:     uc.user.ID,
	}, image)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.products = append(uc.products, created)
	uc.mu.Unlock()
	return created, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, name, description string) (*entity.Product, error) {
	if id == "" {
		return nil, errors.Validation("Product id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("Name is required")
	}

	updated, err := uc.productRepo.Update(ctx, &entity.Product{
		ID:          id,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	for i, product := range uc.products {
		if product.ID == updated.ID {
			uc.products[i] = updated
			break
		}
	}
	uc.mu.Unlock()
	return updated, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return errors.Validation("Product id is required")
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.mu.Lock()
	for i, product := range uc.products {
		if product.ID == id {
			uc.products = append(uc.products[:i], uc.products[i+1:]...)
			break
		}
	}
	uc.mu.Unlock()
	return nil
}
