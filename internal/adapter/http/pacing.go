package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"adpacing/internal/core/domain"
	"adpacing/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

type changeStrategyRequest struct {
	Strategy string `json:"strategy"`
}

// handleSummary returns the current pacing summary of all active campaigns.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		h.fail(w, r, "pacing summary error", err)
		return
	}
	render.JSON(w, r, summary)
}

// handleCheck runs and stores a pacing check, then returns its summary.
func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.RunPacingCheck(r.Context())
	if err != nil {
		h.fail(w, r, "pacing check error", err)
		return
	}
	render.JSON(w, r, summary)
}

// handleRecommendations returns strategy, bid and budget recommendations,
// most urgent first.
func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Recommendations(r.Context())
	if err != nil {
		h.fail(w, r, "recommendations error", err)
		return
	}
	if recs == nil {
		recs = []domain.PacingRecommendation{}
	}
	render.JSON(w, r, recs)
}

func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.AnalyzeCampaign(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.fail(w, r, "analysis error", err)
		return
	}
	render.JSON(w, r, a)
}

// hourlyRow adds the derived utilization and variance to an hourly budget.
type hourlyRow struct {
	domain.HourlyBudget
	Utilization float64 `json:"utilization"`
	Variance    float64 `json:"variance"`
}

func (h *Handler) handleHourly(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.HourlyBudget(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.fail(w, r, "hourly budget error", err)
		return
	}
	out := make([]hourlyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, hourlyRow{HourlyBudget: row, Utilization: row.Utilization(), Variance: row.Variance()})
	}
	render.JSON(w, r, out)
}

func (h *Handler) handleMonthly(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.MonthlyProjection(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.fail(w, r, "monthly projection error", err)
		return
	}
	render.JSON(w, r, p)
}

// handleChangeStrategy switches the pacing strategy of a campaign. The body
// carries the raw strategy name, which is validated here before it reaches
// the usecase. Unknown strategies result in HTTP 400.
func (h *Handler) handleChangeStrategy(w http.ResponseWriter, r *http.Request) {
	var req changeStrategyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid JSON")
		return
	}
	strategy, err := domain.ParsePacingStrategy(req.Strategy)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.svc.ChangeStrategy(r.Context(), chi.URLParam(r, "campaignID"), strategy); err != nil {
		h.fail(w, r, "change strategy error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps usecase errors to HTTP statuses. Unknown campaigns give 404,
// everything else is logged and reported as 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.respondError(w, r, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error(msg, slog.Any("error", err))
	h.respondError(w, r, http.StatusInternalServerError, "internal error")
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}
