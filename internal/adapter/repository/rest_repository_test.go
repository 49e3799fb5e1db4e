package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"earnhub/internal/domain/entity"
	domrepo "earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
	"earnhub/pkg/errors"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*platform.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return platform.NewClient(server.URL, 5*time.Second, platform.StaticToken(token)), server
}

func TestBearerAndCorrelationHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	repo := NewRestAdRepository(client)
	ads, err := repo.ListByUser(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, ads)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestMissingTokenSkipsNetworkCall(t *testing.T) {
	var calls int64
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	})

	repo := NewRestPayoutRepository(client)
	payouts, err := repo.History(context.Background())
	assert.Nil(t, payouts)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Insufficient balance for payout"}`))
	})

	repo := NewRestPayoutRepository(client)
	_, err := repo.Request(context.Background(), 500, "usdt")
	if assert.Error(t, err) {
		var appErr *errors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Insufficient balance for payout", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
	}
}

func TestNonJSONResponseIsTransportError(t *testing.T) {
	client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	})

	repo := NewRestProductRepository(client)
	_, err := repo.ListAll(context.Background())
	assert.True(t, errors.Is(err, "TRANSPORT_ERROR"))
}

func TestPayoutHistoryAcceptsBothShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "bare list", body: `[{"amount":25,"status":"completed","method":"usdt","requestedAt":"2024-01-01T00:00:00Z"}]`},
		{name: "wrapped", body: `{"payouts":[{"amount":25,"status":"completed","method":"usdt","requestedAt":"2024-01-01T00:00:00Z"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			})

			repo := NewRestPayoutRepository(client)
			payouts, err := repo.History(context.Background())
			assert.NoError(t, err)
			if assert.Len(t, payouts, 1) {
				assert.Equal(t, 25.0, payouts[0].Amount)
				assert.Equal(t, "completed", payouts[0].Status)
				assert.Equal(t, "usdt", payouts[0].Method)
			}
		})
	}
}

func TestProductCreateSendsMultipart(t *testing.T) {
	var contentType, name, addedBy, now string
	var hasImage bool
	client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		name = r.FormValue("name")
		addedBy = r.FormValue("addedBy")
		now = r.FormValue("now")
		_, _, err := r.FormFile("image")
		hasImage = err == nil
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p1","name":"Widget"}`))
	})

	repo := NewRestProductRepository(client)
	created, err := repo.Create(context.Background(),
		&entity.Product{Name: "Widget", Description: "A widget", AddedBy: "admin-1"},
		&domrepo.ImageUpload{FileName: "widget.png", Content: []byte("png-bytes")},
	)
	assert.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, "Widget", name)
	assert.Equal(t, "admin-1", addedBy)
	assert.NotEmpty(t, now)
	assert.True(t, hasImage)
}
