package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/stats/view"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/log"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		handler, err := SetupMetrics(&config.MetricsConfig{Enabled: false}, log.New())
		require.NoError(t, err)
		assert.Nil(t, handler)
	})

	t.Run("enabled", func(t *testing.T) {
		handler, err := SetupMetrics(&config.MetricsConfig{Enabled: true, Namespace: "filsnap_test"}, log.New())
		require.NoError(t, err)
		require.NotNil(t, handler)
		defer view.Unregister(SnapViews...)

		ctx := context.Background()
		RecordRequest(ctx, "fil_getAddress", false, time.Now())
		RecordRequest(ctx, "fil_getAddress", true, time.Now())
		RecordStateReset(ctx)

		rows, err := view.RetrieveData(SnapRequestsView.Name)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", Path, nil))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "filsnap_test_snap_requests")
	})
}
