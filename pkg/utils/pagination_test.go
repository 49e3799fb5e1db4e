package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users"+query, nil)
	rec := httptest.NewRecorder()
	return GetPaginationParams(e.NewContext(req, rec))
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFor("")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetPaginationParamsOffset(t *testing.T) {
	params := paramsFor("?page=3&limit=10")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, 20, params.Offset)
}

func TestGetPaginationParamsClampsBadInput(t *testing.T) {
	params := paramsFor("?page=-1&limit=500")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
}

func TestPaginateSlicing(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, Paginate(items, 0, 2))
	assert.Equal(t, []string{"c", "d"}, Paginate(items, 2, 2))
	assert.Equal(t, []string{"e"}, Paginate(items, 4, 2))
	assert.Empty(t, Paginate(items, 10, 2))
}
