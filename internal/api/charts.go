package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/runabh1/stress.report/internal/db"
	"github.com/runabh1/stress.report/internal/httputil"
)

// handleRiskTrendChart renders a quick line chart (HTML) of a district's risk
// trend using go-echarts. Debugging aid for eyeballing a series without the
// frontend; dates with no recorded score plot as gaps.
func (s *Server) handleRiskTrendChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	params, ok := pathParams(r, "/charts/risk-trend/", 2)
	if !ok {
		httputil.BadRequest(w, "expected /charts/risk-trend/{state}/{district}")
		return
	}
	state, district := params[0], params[1]

	trend, err := s.db.Trend(state, district)
	if errors.Is(err, db.ErrNotFound) {
		httputil.NotFound(w, "no rows for this state/district")
		return
	}
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to query trend: %v", err))
		return
	}

	dates := make([]string, len(trend))
	points := make([]opts.LineData, len(trend))
	for i, p := range trend {
		dates[i] = p.Date
		if p.RiskScore != nil {
			points[i] = opts.LineData{Value: *p.RiskScore}
		} else {
			points[i] = opts.LineData{Value: "-"}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Service Stress Trend", Theme: "dark", Width: "1100px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Service Stress Risk Trend",
			Subtitle: fmt.Sprintf("%s, %s (%d dates)", district, state, len(trend)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).AddSeries("risk_score", points,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
