package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_HandlerServesMetrics(t *testing.T) {
	r := NewRegistry()
	r.SeedTotal.Inc()
	r.ObserveDataset(10, 20, 5)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "mockshop_seed_total 1")
	assert.Contains(t, string(body), "mockshop_dataset_users 10")
	assert.Contains(t, string(body), "mockshop_dataset_orders 20")
	assert.Contains(t, string(body), "mockshop_dataset_products 5")
}
