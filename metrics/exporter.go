package metrics

import (
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/prometheus"
	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opencensus.io/stats/view"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/log"
)

const Path = "/debug/metrics"

// SetupMetrics registers the snap views and returns the prometheus handler to
// mount on Path, nil when metrics are disabled.
func SetupMetrics(metricsConfig *config.MetricsConfig, log *log.Logger) (http.Handler, error) {
	log.Infof("metrics config: enabled: %v, namespace: %s", metricsConfig.Enabled, metricsConfig.Namespace)

	if !metricsConfig.Enabled {
		return nil, nil
	}

	if err := view.Register(SnapViews...); err != nil {
		return nil, fmt.Errorf("cannot register the view: %w", err)
	}

	exporter, err := prometheus.NewExporter(prometheus.Options{
		Registry:  promclient.NewRegistry(),
		Namespace: metricsConfig.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	return exporter, nil
}
