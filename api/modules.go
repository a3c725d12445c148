package api

import (
	"context"
	"net"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"
	"go.uber.org/fx"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/log"
	"github.com/ipfs-force-community/sophon-filsnap/metrics"
)

// NewHandler serves snapImp on /rpc/v0 and, when given, the metrics exporter
// on metrics.Path.
func NewHandler(snapImp *SnapImp, metricsHandler http.Handler) http.Handler {
	srv := jsonrpc.NewServer()
	srv.Register("Filsnap", snapImp)

	handler := http.NewServeMux()
	handler.Handle("/rpc/v0", srv)
	if metricsHandler != nil {
		handler.Handle(metrics.Path, metricsHandler)
	}
	handler.Handle("/debug/pprof/", http.DefaultServeMux)
	return handler
}

func RunAPI(lc fx.Lifecycle, lst net.Listener, log *log.Logger, snapImp *SnapImp, metricsCfg *config.MetricsConfig) error {
	metricsHandler, err := metrics.SetupMetrics(metricsCfg, log)
	if err != nil {
		return err
	}

	apiserv := &http.Server{
		Handler: NewHandler(snapImp, metricsHandler),
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Start rpcserver ", lst.Addr())
				if err := apiserv.Serve(lst); err != nil && err != http.ErrServerClosed {
					log.Errorf("Start rpcserver failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return apiserv.Shutdown(ctx)
		},
	})
	return nil
}
