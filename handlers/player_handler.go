package handlers

import (
	"net/http"

	"github.com/AldereteMatias1/Asistencia-Futbol/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Create godoc
// @Summary Crear jugador
// @Tags players
// @Accept json
// @Produce json
// @Param body body services.CreatePlayerInput true "Datos del jugador"
// @Success 201 {object} map[string]interface{} "Jugador creado"
// @Failure 400 {object} map[string]string "Datos inválidos"
// @Security ApiKeyAuth
// @Router /players [post]
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List godoc
// @Summary Listar jugadores
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{} "Listado de jugadores"
// @Router /players [get]
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Obtener jugador por id
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{} "Jugador encontrado"
// @Failure 404 {object} map[string]string "Jugador no encontrado"
// @Router /players/{id} [get]
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Actualizar jugador (parcial)
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param body body services.PlayerUpdate true "Campos a actualizar"
// @Success 200 {object} map[string]interface{} "Jugador actualizado"
// @Failure 400 {object} map[string]string "Datos inválidos o sin campos"
// @Failure 404 {object} map[string]string "Jugador no encontrado"
// @Security ApiKeyAuth
// @Router /players/{id} [patch]
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var update services.PlayerUpdate
	if err := readJSON(w, r, &update); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Update(r.Context(), id, update)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Deactivate godoc
// @Summary Dar de baja un jugador (borrado lógico)
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{} "Jugador desactivado"
// @Failure 404 {object} map[string]string "Jugador no encontrado"
// @Security ApiKeyAuth
// @Router /players/{id} [delete]
func (h *PlayerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Deactivate(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
