package metrics

import (
	"context"
	"time"

	rpcMetrics "github.com/filecoin-project/go-jsonrpc/metrics"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// Global Tags
var (
	Method, _ = tag.NewKey("method")
	Status, _ = tag.NewKey("status")
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Distribution
var defaultMillisecondsDistribution = view.Distribution(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000)

var (
	SnapRequests       = stats.Int64("snap/requests", "Number of snap requests", stats.UnitDimensionless)
	SnapRequestLatency = stats.Float64("snap/request_ms", "Duration of snap requests", stats.UnitMilliseconds)
	StateResets        = stats.Int64("snap/state_resets", "Number of times the stored state was reset to the initial state", stats.UnitDimensionless)
)

var (
	SnapRequestsView = &view.View{
		Measure:     SnapRequests,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Method, Status},
	}
	SnapRequestLatencyView = &view.View{
		Measure:     SnapRequestLatency,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Method},
	}
	StateResetsView = &view.View{
		Measure:     StateResets,
		Aggregation: view.Count(),
	}
)

var SnapViews = append([]*view.View{
	SnapRequestsView,
	SnapRequestLatencyView,
	StateResetsView,
}, rpcMetrics.DefaultViews...)

// RecordRequest records one handled snap request.
func RecordRequest(ctx context.Context, method string, failed bool, start time.Time) {
	status := StatusOK
	if failed {
		status = StatusError
	}
	ctx, _ = tag.New(ctx, tag.Upsert(Method, method), tag.Upsert(Status, status))
	stats.Record(ctx, SnapRequests.M(1), SnapRequestLatency.M(float64(time.Since(start).Microseconds())/1000))
}

func RecordStateReset(ctx context.Context) {
	stats.Record(ctx, StateResets.M(1))
}
