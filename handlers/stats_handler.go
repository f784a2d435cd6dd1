package handlers

import (
	"net/http"

	"github.com/yoapunto/yoapunto-api/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Active entity counts
// @Tags stats
// @Produce json
// @Success 200 {object} services.Stats
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Collect(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats, nil)
}
