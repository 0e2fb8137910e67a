package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/httputil"
	"github.com/runabh1/stress.report/internal/model"
	"github.com/runabh1/stress.report/internal/stress"
	"github.com/runabh1/stress.report/internal/version"
)

// riskResponse mirrors the metric columns of one dataset row. Absent values
// serialize as JSON null, never zero.
type riskResponse struct {
	RiskScore       *float64 `json:"risk_score"`
	BioRatio        *float64 `json:"bio_ratio"`
	ChildPressure   *float64 `json:"child_pressure"`
	ElderlyPressure *float64 `json:"elderly_pressure"`
}

// notFoundPayload is the 200-status "no data" envelope used by the lookup
// endpoints; a missing triple is an answer, not a protocol failure.
var notFoundPayload = map[string]string{"error": "No data found"}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	state, district, date := q.Get("state"), q.Get("district"), q.Get("date")
	if state == "" || district == "" || date == "" {
		httputil.BadRequest(w, "state, district and date query parameters are required")
		return
	}

	rec, err := s.db.Lookup(state, district, date)
	if errors.Is(err, db.ErrNotFound) {
		httputil.WriteJSONOK(w, notFoundPayload)
		return
	}
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to look up risk: %v", err))
		return
	}

	httputil.WriteJSONOK(w, riskResponse{
		RiskScore:       rec.RiskScore,
		BioRatio:        rec.BioRatio,
		ChildPressure:   rec.ChildPressure,
		ElderlyPressure: rec.ElderlyPressure,
	})
}

func (s *Server) handleRiskVerdict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/risk-verdict/", 1)
	if !ok {
		httputil.BadRequest(w, "expected /risk-verdict/{risk_score}")
		return
	}
	score, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		httputil.BadRequest(w, "Invalid risk_score value")
		return
	}

	httputil.WriteJSONOK(w, stress.Verdict(score))
}

type percentileResponse struct {
	Percentile float64 `json:"percentile"`
	Comparison string  `json:"comparison"`
}

func (s *Server) handleRiskPercentile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/risk-percentile/", 3)
	if !ok {
		httputil.BadRequest(w, "expected /risk-percentile/{state}/{district}/{date}")
		return
	}
	state, district, date := params[0], params[1], params[2]

	cohort, err := s.db.CohortForDate(date)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to query date cohort: %v", err))
		return
	}
	if cohort.Total == 0 {
		httputil.WriteJSONOK(w, percentileResponse{Percentile: 0, Comparison: "No data available"})
		return
	}

	rec, err := s.db.Lookup(state, district, date)
	if errors.Is(err, db.ErrNotFound) {
		httputil.WriteJSONOK(w, percentileResponse{Percentile: 0, Comparison: "No data for this district"})
		return
	}
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to look up risk: %v", err))
		return
	}
	if rec.RiskScore == nil {
		httputil.WriteJSONOK(w, percentileResponse{Percentile: 0, Comparison: "No data"})
		return
	}

	percentile := stress.Percentile(*rec.RiskScore, cohort.Scores, cohort.Total)
	httputil.WriteJSONOK(w, percentileResponse{
		Percentile: percentile,
		Comparison: fmt.Sprintf("Riskier than %.1f%% of districts", percentile),
	})
}

func (s *Server) handleTopDistricts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	limit, ok := limitParam(r, 10)
	if !ok {
		httputil.BadRequest(w, "Invalid 'limit' parameter")
		return
	}

	ranked, err := s.db.TopDistricts(limit)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to rank districts: %v", err))
		return
	}
	httputil.WriteJSONOK(w, ranked)
}

func (s *Server) handleDistrictHotspots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/district-hotspots/", 1)
	if !ok {
		httputil.BadRequest(w, "expected /district-hotspots/{state}")
		return
	}
	limit, ok := limitParam(r, 5)
	if !ok {
		httputil.BadRequest(w, "Invalid 'limit' parameter")
		return
	}

	ranked, err := s.db.DistrictHotspots(params[0], limit)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to rank districts: %v", err))
		return
	}
	httputil.WriteJSONOK(w, ranked)
}

func (s *Server) handleRiskTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/risk-trend/", 2)
	if !ok {
		httputil.BadRequest(w, "expected /risk-trend/{state}/{district}")
		return
	}

	trend, err := s.db.Trend(params[0], params[1])
	if errors.Is(err, db.ErrNotFound) {
		httputil.WriteJSONOK(w, notFoundPayload)
		return
	}
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to query trend: %v", err))
		return
	}

	httputil.WriteJSONOK(w, map[string][]db.TrendPoint{"data": trend})
}

func (s *Server) handleDateSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/date-summary/", 1)
	if !ok {
		httputil.BadRequest(w, "expected /date-summary/{date}")
		return
	}

	cohort, err := s.db.CohortForDate(params[0])
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to query date cohort: %v", err))
		return
	}

	summary, ok := stress.Summarize(params[0], cohort.Scores)
	if !ok {
		httputil.WriteJSONOK(w, map[string]string{"error": "No risk scores recorded for this date"})
		return
	}
	httputil.WriteJSONOK(w, summary)
}

func (s *Server) handleModelStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, model.TrainingStats())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	records, err := s.db.CountRecords()
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to count records: %v", err))
		return
	}

	httputil.WriteJSONOK(w, map[string]interface{}{
		"status":  "ok",
		"records": records,
		"model":   s.artifact.Path,
		"version": version.Version,
	})
}
