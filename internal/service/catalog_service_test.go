package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
)

func TestBrowseNormalizesEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":true,"data":null}`)
	}))
	defer srv.Close()

	svc := NewCatalogService(backend.NewClient(srv.URL))
	courses, err := svc.Browse(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses, "empty catalog is a valid answer, not an error")
	assert.Empty(t, courses)
}

func TestMineNormalizesEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/mine", r.URL.Path)
		io.WriteString(w, `{"status":true,"data":null}`)
	}))
	defer srv.Close()

	svc := NewCatalogService(backend.NewClient(srv.URL))
	courses, err := svc.Mine(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestPurchasedFailureKeepsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewCatalogService(backend.NewClient(srv.URL))
	_, err := svc.Purchased(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error in listing my bought courses", err.Error())
}
