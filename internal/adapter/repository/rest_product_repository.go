package repository

import (
	"bytes"
	"context"
	"mime/multipart"
	"strconv"
	"time"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
	"earnhub/pkg/errors"
)

type restProductRepository struct {
	client *platform.Client
}

func NewRestProductRepository(client *platform.Client) repository.ProductRepository {
	return &restProductRepository{
		client: client,
	}
}

func (r *restProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.client.GetJSON(ctx, "/api/products/all", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create posts the product as multipart form data: name, description,
// addedBy, now (epoch millis) and the optional image file.
func (r *restProductRepository) Create(ctx context.Context, product *entity.Product, image *repository.ImageUpload) (*entity.Product, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":        product.Name,
		"description": product.Description,
		"addedBy":     product.AddedBy,
		"now":         strconv.FormatInt(time.Now().UnixMilli(), 10),
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, errors.Internal("Failed to encode product form", err)
		}
	}

	if image != nil && len(image.Content) > 0 {
		part, err := writer.CreateFormFile("image", image.FileName)
		if err != nil {
			return nil, errors.Internal("Failed to encode product image", err)
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, errors.Internal("Failed to encode product image", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Internal("Failed to encode product form", err)
	}

	var created entity.Product
	if err := r.client.PostMultipart(ctx, "/api/products/add", &body, writer.FormDataContentType(), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	req := map[string]string{
		"name":        product.Name,
		"description": product.Description,
	}

	var updated entity.Product
	if err := r.client.PutJSON(ctx, "/api/products/"+sanitizeID(product.ID), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/api/products/"+sanitizeID(id))
}
