package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/httputil"
	"github.com/runabh1/stress.report/internal/stress"
)

// The policy endpoints never surface protocol-level failures: a fault during
// lookup degrades to best-effort text, matching the contract that the text
// endpoints always answer with prose.

func (s *Server) handlePolicyRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/policy-recommendation/", 3)
	if !ok {
		httputil.BadRequest(w, "expected /policy-recommendation/{state}/{district}/{date}")
		return
	}

	rec, err := s.db.Lookup(params[0], params[1], params[2])
	var text string
	switch {
	case errors.Is(err, db.ErrNotFound):
		text = "No data available for recommendation"
	case err != nil:
		text = fmt.Sprintf("Unable to generate recommendation: %v", err)
	default:
		text = stress.Recommendation(metricsOf(rec))
	}

	httputil.WriteJSONOK(w, map[string]string{"recommendation": text})
}

func (s *Server) handleRiskExplanation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/risk-explanation/", 3)
	if !ok {
		httputil.BadRequest(w, "expected /risk-explanation/{state}/{district}/{date}")
		return
	}
	state, district, date := params[0], params[1], params[2]

	rec, err := s.db.Lookup(state, district, date)
	var text string
	switch {
	case errors.Is(err, db.ErrNotFound):
		text = "No data available"
	case err != nil:
		text = fmt.Sprintf("Unable to generate explanation: %v", err)
	default:
		text = stress.Explanation(district, state, date, metricsOf(rec))
	}

	httputil.WriteJSONOK(w, map[string]string{"explanation": text})
}
