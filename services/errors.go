package services

import "errors"

// Errores comunes compartidos entre servicios y el mapeo HTTP.
var (
	// Recurso no encontrado
	ErrPlayerNotFound        = errors.New("player not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrParticipationNotFound = errors.New("participation not found")

	// Conflictos
	ErrAlreadyRegistered = errors.New("player is already registered for this match")

	// Validación y reglas de negocio
	ErrValidationFailed  = errors.New("validation failed")
	ErrNoFieldsToUpdate  = errors.New("no fields provided to update")
	ErrInvalidTeam       = errors.New("team must be TEAM_A or TEAM_B")
	ErrInvalidWinner     = errors.New("winner must be TEAM_A, TEAM_B or DRAW")
	ErrInvalidLimit      = errors.New("limit must be an integer between 1 and 500")
	ErrInvalidMinMatches = errors.New("min_matches must be an integer greater than or equal to 1")
)
