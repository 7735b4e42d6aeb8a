package http

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
	"github.com/Spok95/fuc-warehouse/internal/domain/shipments"
	"github.com/Spok95/fuc-warehouse/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Source данные для выгрузок.
type Source interface {
	ListMaterials() []materials.Record
	ListShipments() []shipments.Record
}

type Server struct {
	srv *http.Server
	src Source
	log *slog.Logger
}

// New gatherer == nil => метрики из prometheus.DefaultGatherer.
func New(addr string, exposeMetrics bool, gatherer prometheus.Gatherer, src Source, log *slog.Logger) *Server {
	s := &Server{src: src, log: log}
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		if gatherer == nil {
			mux.Handle("/metrics", promhttp.Handler())
		} else {
			mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		}
	}

	mux.HandleFunc("/export/shipments.xlsx", s.exportShipments)
	mux.HandleFunc("/export/materials.xlsx", s.exportMaterials)

	s.srv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return s
}

func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) exportShipments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	buf := &bytes.Buffer{}
	if err := report.WriteShipments(buf, s.src.ListShipments()); err != nil {
		s.fail(w, "shipments export failed", err)
		return
	}
	s.sendFile(w, fmt.Sprintf("shipments_%s.xlsx", time.Now().Format("20060102_150405")), buf)
}

func (s *Server) exportMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	buf := &bytes.Buffer{}
	if err := report.WriteMaterials(buf, s.src.ListMaterials()); err != nil {
		s.fail(w, "materials export failed", err)
		return
	}
	s.sendFile(w, fmt.Sprintf("materials_%s.xlsx", time.Now().Format("20060102_150405")), buf)
}

func (s *Server) sendFile(w http.ResponseWriter, name string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	if s.log != nil {
		s.log.Error(msg, "err", err)
	}
	http.Error(w, "export failed", http.StatusInternalServerError)
}
