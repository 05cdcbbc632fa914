package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/v1/items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	srv := httptest.NewServer(r)
	defer srv.Close()

	for _, id := range []string{"a", "b", "c"} {
		resp, err := http.Get(srv.URL + "/v1/items/" + id)
		require.NoError(t, err)
		resp.Body.Close()
	}

	count := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET /v1/items/{itemId}", "200"))
	assert.Equal(t, float64(3), count, "distinct ids must share one route series")
}
