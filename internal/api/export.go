package api

import (
	"fmt"
	"net/http"

	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/httputil"
	"github.com/runabh1/stress.report/internal/monitoring"
)

const exportFilename = "ranked_district_stress.csv"

// handleDownloadRankedData serves the per-district mean of every metric as a
// CSV attachment, ordered by mean risk descending. An empty table is a client
// error (there is nothing to rank); a grouping or serialization fault is a
// server error.
func (s *Server) handleDownloadRankedData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	count, err := s.db.CountRecords()
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to count records: %v", err))
		return
	}
	if count == 0 {
		httputil.BadRequest(w, "Dataset is empty")
		return
	}

	export, err := s.db.RankedExport()
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to build ranked data: %v", err))
		return
	}
	if len(export) == 0 {
		httputil.InternalServerError(w, "No ranked data available")
		return
	}

	rows := make([][]string, len(export))
	for i, row := range export {
		rows[i] = row.Fields()
	}
	if err := httputil.WriteCSVAttachment(w, exportFilename, db.ExportHeader, rows); err != nil {
		// Headers are already on the wire; all we can do is log.
		monitoring.Logf("ranked data export failed mid-stream: %v", err)
	}
}
