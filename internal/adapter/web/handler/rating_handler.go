package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/usecase"
	"earnhub/pkg/response"
)

type RatingHandler struct {
	registry *usecase.ContextRegistry
}

func NewRatingHandler(registry *usecase.ContextRegistry) *RatingHandler {
	return &RatingHandler{
		registry: registry,
	}
}

type submitRatingRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment" validate:"omitempty,max=500"`
	Earning   float64 `json:"earning" validate:"omitempty,gte=0"`
}

// Mine lists the ratings the signed-in user has submitted.
func (h *RatingHandler) Mine(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ratings, err := set.Ratings.LoadUserRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

func (h *RatingHandler) Submit(c echo.Context) error {
	var req submitRatingRequest
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

	rating, err := set.Ratings.SubmitRating(c.Request().Context(), usecase.SubmitRatingInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Earning:   req.Earning,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rating)
}

// ByProduct returns a product's ratings with the derived average.
func (h *RatingHandler) ByProduct(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ratings, average, err := set.Ratings.ProductRatings(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"ratings": ratings,
		"average": average,
	})
}

// Check reports whether the user has already rated the product, so the UI
// can disable the rating form up front.
func (h *RatingHandler) Check(c echo.Context) error {
	set, _, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	rated, err := set.Ratings.HasRated(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"rated": rated,
	})
}
