// Read-only HTTP surface over the backlog: the pending listing, progress
// stats and Prometheus metrics.
package backlogserver

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/function61/casebacklog/pkg/backlog"
	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/net/http/httputils"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Serve(ctx context.Context, allCasesPath string, doneCasesPath string, logger *log.Logger) error {
	srv := &http.Server{
		Addr:    ":8065",
		Handler: newHandler(allCasesPath, doneCasesPath, logex.Prefix("http", logger)),
	}

	// listens until ctx is cancelled, then shuts down gracefully
	return httputils.CancelableServer(ctx, srv, srv.ListenAndServe)
}

func newHandler(allCasesPath string, doneCasesPath string, logger *log.Logger) http.Handler {
	metrics := newMetrics()

	routes := mux.NewRouter()

	routes.HandleFunc("/pending", func(w http.ResponseWriter, r *http.Request) {
		metrics.PendingListings.Inc()

		// buffered so an I/O failure midway doesn't produce a half listing with
		// a 200 status
		listing := &bytes.Buffer{}
		if err := backlog.Pending(listing, allCasesPath, doneCasesPath); err != nil {
			logger.Printf("pending: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.BacklogRefreshes.Inc()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if _, err := listing.WriteTo(w); err != nil {
			logger.Printf("pending write: %v", err)
		}
	}).Methods(http.MethodGet)

	routes.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		metrics.StatsQueries.Inc()

		stats, err := backlog.ComputeStats(allCasesPath, doneCasesPath)
		if err != nil {
			logger.Printf("stats: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.BacklogRefreshes.Inc()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.Printf("stats encode: %v", err)
		}
	}).Methods(http.MethodGet)

	routes.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return routes
}
