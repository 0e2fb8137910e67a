package api

import (
	"fmt"
	"net/http"

	"github.com/runabh1/stress.report/internal/httputil"
)

func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	states, err := s.db.States()
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to list states: %v", err))
		return
	}
	httputil.WriteJSONOK(w, states)
}

func (s *Server) handleDistricts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/districts/", 1)
	if !ok {
		httputil.BadRequest(w, "expected /districts/{state}")
		return
	}

	districts, err := s.db.Districts(params[0])
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to list districts: %v", err))
		return
	}
	httputil.WriteJSONOK(w, districts)
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/dates/", 2)
	if !ok {
		httputil.BadRequest(w, "expected /dates/{state}/{district}")
		return
	}

	dates, err := s.db.Dates(params[0], params[1])
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to list dates: %v", err))
		return
	}
	httputil.WriteJSONOK(w, dates)
}
