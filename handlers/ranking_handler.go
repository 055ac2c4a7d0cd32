package handlers

import (
	"net/http"

	"github.com/AldereteMatias1/Asistencia-Futbol/services"
)

type RankingHandler struct {
	rankingService *services.RankingService
}

func NewRankingHandler(rankingService *services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// Attendance godoc
// @Summary Ranking de asistencias
// @Tags stats
// @Produce json
// @Param limit query int false "Máximo de filas (1-500, default 100)"
// @Success 200 {object} map[string]interface{} "Ranking de asistencias"
// @Failure 400 {object} map[string]string "Límite inválido"
// @Router /stats/attendance [get]
func (h *RankingHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.rankingService.Attendance(r.Context(), r.URL.Query().Get("limit"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": ranking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Withdrawals godoc
// @Summary Ranking de bajas
// @Tags stats
// @Produce json
// @Param limit query int false "Máximo de filas (1-500, default 100)"
// @Success 200 {object} map[string]interface{} "Ranking de bajas"
// @Failure 400 {object} map[string]string "Límite inválido"
// @Router /stats/withdrawals [get]
func (h *RankingHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.rankingService.Withdrawals(r.Context(), r.URL.Query().Get("limit"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": ranking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Winners godoc
// @Summary Ranking de ganadores
// @Tags stats
// @Produce json
// @Param limit query int false "Máximo de filas (1-500, default 100)"
// @Param min_matches query int false "Mínimo de partidos jugados (default 1)"
// @Success 200 {object} map[string]interface{} "Ranking de ganadores"
// @Failure 400 {object} map[string]string "Parámetros inválidos"
// @Router /stats/winners [get]
func (h *RankingHandler) Winners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ranking, err := h.rankingService.Winners(r.Context(), q.Get("limit"), q.Get("min_matches"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": ranking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Overview godoc
// @Summary Resumen de rankings para el dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Los tres rankings, acotados"
// @Router /stats/overview [get]
func (h *RankingHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.rankingService.Overview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
