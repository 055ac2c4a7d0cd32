package handlers

import (
	"net/http"

	"github.com/AldereteMatias1/Asistencia-Futbol/services"
)

type ParticipationHandler struct {
	participationService *services.ParticipationService
}

func NewParticipationHandler(participationService *services.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{participationService: participationService}
}

// Register godoc
// @Summary Anotar un jugador al partido
// @Tags participations
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.RegisterInput true "Jugador, equipo y comentario opcional"
// @Success 201 {object} map[string]interface{} "Participación creada en estado PRESENT"
// @Failure 400 {object} map[string]string "Equipo inválido o datos faltantes"
// @Failure 404 {object} map[string]string "Partido o jugador no encontrado"
// @Failure 409 {object} map[string]string "Jugador ya anotado, o partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{matchID}/participations [post]
func (h *ParticipationHandler) Register(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RegisterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participation, err := h.participationService.Register(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"participation": participation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Withdraw godoc
// @Summary Dar de baja a un jugador del partido
// @Tags participations
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.WithdrawInput true "Jugador y comentario opcional"
// @Success 200 {object} map[string]interface{} "Participación en estado WITHDRAWN"
// @Failure 404 {object} map[string]string "Partido o participación no encontrada"
// @Failure 409 {object} map[string]string "Partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{matchID}/participations/withdraw [post]
func (h *ParticipationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.WithdrawInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participation, err := h.participationService.Withdraw(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participation": participation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reactivate godoc
// @Summary Reactivar a un jugador dado de baja
// @Tags participations
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.ReactivateInput true "Jugador, equipo opcional y comentario opcional"
// @Success 200 {object} map[string]interface{} "Participación de vuelta en PRESENT"
// @Failure 400 {object} map[string]string "Equipo inválido"
// @Failure 404 {object} map[string]string "Partido o participación no encontrada"
// @Failure 409 {object} map[string]string "Partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{matchID}/participations/reactivate [post]
func (h *ParticipationHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ReactivateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participation, err := h.participationService.Reactivate(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participation": participation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ChangeTeam godoc
// @Summary Cambiar de equipo a un jugador
// @Tags participations
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.ChangeTeamInput true "Jugador y equipo nuevo"
// @Success 200 {object} map[string]interface{} "Participación con el equipo nuevo"
// @Failure 400 {object} map[string]string "Equipo inválido"
// @Failure 404 {object} map[string]string "Partido o participación no encontrada"
// @Failure 409 {object} map[string]string "Partido finalizado"
// @Security ApiKeyAuth
// @Router /matches/{matchID}/participations/team [patch]
func (h *ParticipationHandler) ChangeTeam(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ChangeTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participation, err := h.participationService.ChangeTeam(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participation": participation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
