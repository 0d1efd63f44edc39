package bench

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/utils/service"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes a run's registry on /metrics for as long as the
// service runs.
type MetricsServer struct {
	*service.SimpleService
	addr     string
	metrics  *Metrics
	server   *http.Server
	listener net.Listener
	log      *log.Entry
}

func NewMetricsServer(addr string, metrics *Metrics, logger *log.Entry) *MetricsServer {
	s := &MetricsServer{
		addr:    addr,
		metrics: metrics,
		log:     logger.WithField("component", "metrics"),
	}
	s.SimpleService = service.NewSimpleService(s)
	return s
}

func (s *MetricsServer) OnStart(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	s.listener = ln
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("metrics server failed")
		}
	}()
	s.log.WithField("addr", ln.Addr().String()).Info("serving metrics")
	return nil
}

func (s *MetricsServer) OnStop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.WithError(err).Warn("metrics server shutdown")
	}
}

// Addr is the bound address, useful when listening on port 0.
func (s *MetricsServer) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}
