package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

// ImageUpload carries an optional product image for the multipart add call.
type ImageUpload struct {
	FileName string
	Content  []byte
}

type ProductRepository interface {
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product, image *ImageUpload) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
