package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/repository"
	"earnhub/internal/usecase"
	"earnhub/pkg/errors"
	"earnhub/pkg/response"
)

type ProductHandler struct {
	registry *usecase.ContextRegistry
}

func NewProductHandler(registry *usecase.ContextRegistry) *ProductHandler {
	return &ProductHandler{
		registry: registry,
	}
}

type updateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
}

func (h *ProductHandler) List(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := set.Products.LoadProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

// Add accepts a multipart form: name, description, optional image file.
func (h *ProductHandler) Add(c echo.Context) error {
	name := c.FormValue("name")
	description := c.FormValue("description")

	var image *repository.ImageUpload
	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read image upload", err))
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read image upload", err))
		}

		image = &repository.ImageUpload{
			FileName: fileHeader.Filename,
			Content:  content,
		}
	}

	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := set.Products.AddProduct(c.Request().Context(), name, description, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := set.Products.UpdateProduct(c.Request().Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	if err := set.Products.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}
