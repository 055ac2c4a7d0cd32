package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AldereteMatias1/Asistencia-Futbol/db"
	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
)

// PlayerService encapsula la lógica de negocio del padrón de jugadores.
type PlayerService struct {
	txr        db.TxRunner
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(txr db.TxRunner, playerRepo repositories.PlayerRepository) *PlayerService {
	return &PlayerService{txr: txr, playerRepo: playerRepo}
}

type CreatePlayerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PlayerUpdate carries the optional fields of a partial player update.
type PlayerUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (u PlayerUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	first, err := requireText(input.FirstName, "first_name")
	if err != nil {
		return nil, err
	}
	last, err := requireText(input.LastName, "last_name")
	if err != nil {
		return nil, err
	}

	player := &models.Player{FirstName: first, LastName: last, Active: true}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) List(ctx context.Context) ([]*models.Player, error) {
	return s.playerRepo.List(ctx)
}

func (s *PlayerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	var player *models.Player
	err := s.txr.RunInTx(ctx, func(exec db.Executor) error {
		var err error
		player, err = s.playerRepo.GetByID(ctx, exec, id)
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) Update(ctx context.Context, id int, update PlayerUpdate) (*models.Player, error) {
	if update.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if update.FirstName != nil {
		first, err := requireText(*update.FirstName, "first_name")
		if err != nil {
			return nil, err
		}
		update.FirstName = &first
	}
	if update.LastName != nil {
		last, err := requireText(*update.LastName, "last_name")
		if err != nil {
			return nil, err
		}
		update.LastName = &last
	}

	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.FirstName != nil {
		player.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		player.LastName = *update.LastName
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// Deactivate is the soft delete: the row stays, the flag drops. Calling it on
// an already-inactive player simply returns the current state.
func (s *PlayerService) Deactivate(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !player.Active {
		return player, nil
	}
	player.Active = false
	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// requireText rejects values that are empty after trimming and returns the
// trimmed value.
func requireText(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidationFailed, field)
	}
	return trimmed, nil
}
