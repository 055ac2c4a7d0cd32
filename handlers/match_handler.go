package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/services"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Create godoc
// @Summary Crear partido
// @Tags matches
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Partido creado en estado SCHEDULED"
// @Failure 400 {object} map[string]string "Datos inválidos"
// @Security ApiKeyAuth
// @Router /matches [post]
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		KickoffAt time.Time `json:"kickoff_at"`
		Venue     string    `json:"venue"`
		TeamAName string    `json:"team_a_name"`
		TeamBName string    `json:"team_b_name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Create(r.Context(), services.CreateMatchInput{
		KickoffAt: input.KickoffAt,
		Venue:     input.Venue,
		TeamAName: input.TeamAName,
		TeamBName: input.TeamBName,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary Listar partidos
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Listado de partidos"
// @Router /matches [get]
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Obtener partido por id, con sus participaciones
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Partido con participaciones"
// @Failure 404 {object} map[string]string "Partido no encontrado"
// @Router /matches/{id} [get]
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetDetail(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Actualizar detalles del partido (parcial)
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param body body models.MatchUpdate true "Campos a actualizar"
// @Success 200 {object} map[string]interface{} "Partido actualizado"
// @Failure 400 {object} map[string]string "Datos inválidos o sin campos"
// @Failure 404 {object} map[string]string "Partido no encontrado"
// @Failure 409 {object} map[string]string "Partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{id} [patch]
func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var update models.MatchUpdate
	if err := readJSON(w, r, &update); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Update(r.Context(), id, update)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Start godoc
// @Summary Iniciar partido
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Partido en juego"
// @Failure 404 {object} map[string]string "Partido no encontrado"
// @Failure 409 {object} map[string]string "Partido finalizado o cancelado"
// @Security ApiKeyAuth
// @Router /matches/{id}/start [post]
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.matchService.Start)
}

// Finish godoc
// @Summary Finalizar partido con un ganador
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Partido finalizado"
// @Failure 400 {object} map[string]string "Ganador inválido"
// @Failure 404 {object} map[string]string "Partido no encontrado"
// @Failure 409 {object} map[string]string "Partido finalizado o cancelado"
// @Security ApiKeyAuth
// @Router /matches/{id}/finish [post]
func (h *MatchHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Winner models.Winner `json:"winner"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Finish(r.Context(), id, input.Winner)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Cancel godoc
// @Summary Cancelar partido
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Partido cancelado"
// @Failure 404 {object} map[string]string "Partido no encontrado"
// @Failure 409 {object} map[string]string "Partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{id}/cancel [post]
func (h *MatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.matchService.Cancel)
}

func (h *MatchHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int) (*models.Match, error)) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := op(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
