package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"earnhub/internal/infrastructure/ws"
)

func TestTicketWidgetAnonymousGetsEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/tickets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebSocketHandler(ws.NewHub())

	assert.NoError(t, h.TicketWidget(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
