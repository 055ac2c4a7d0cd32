package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AldereteMatias1/Asistencia-Futbol/db"
	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
	"github.com/jonboulle/clockwork"
)

// ParticipationService encapsula la lógica del registro de participaciones:
// un jugador se anota a un partido, se da de baja, se reactiva o cambia de
// equipo. Cada operación corre dentro de una única transacción que revalida
// el partido.
type ParticipationService struct {
	txr               db.TxRunner
	participationRepo repositories.ParticipationRepository
	matchRepo         repositories.MatchRepository
	playerRepo        repositories.PlayerRepository
	clock             clockwork.Clock
	notifier          LiveNotifier
}

func NewParticipationService(
	txr db.TxRunner,
	participationRepo repositories.ParticipationRepository,
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
	clock clockwork.Clock,
	notifier LiveNotifier,
) *ParticipationService {
	return &ParticipationService{
		txr:               txr,
		participationRepo: participationRepo,
		matchRepo:         matchRepo,
		playerRepo:        playerRepo,
		clock:             clock,
		notifier:          notifier,
	}
}

type RegisterInput struct {
	PlayerID int         `json:"player_id"`
	Team     models.Team `json:"team"`
	Comment  *string     `json:"comment"`
}

type WithdrawInput struct {
	PlayerID int     `json:"player_id"`
	Comment  *string `json:"comment"`
}

type ReactivateInput struct {
	PlayerID int          `json:"player_id"`
	Team     *models.Team `json:"team"`
	Comment  *string      `json:"comment"`
}

type ChangeTeamInput struct {
	PlayerID int         `json:"player_id"`
	Team     models.Team `json:"team"`
}

// Register enrolls a player into a match as PRESENT. A second registration
// for the same (match, player) pair is a conflict, never a duplicate row: the
// existence check runs inside the same transaction as the insert, and the
// unique constraint catches whatever a concurrent writer slips past it.
func (s *ParticipationService) Register(ctx context.Context, matchID int, input RegisterInput) (*models.Participation, error) {
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidationFailed)
	}
	if !input.Team.IsValid() {
		return nil, ErrInvalidTeam
	}

	var participation *models.Participation
	err := s.txr.RunInTx(ctx, func(exec db.Executor) error {
		if err := s.loadMutableMatch(ctx, exec, matchID); err != nil {
			return err
		}
		if _, err := s.playerRepo.GetByID(ctx, exec, input.PlayerID); err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		existing, err := s.participationRepo.FindByMatchAndPlayer(ctx, exec, matchID, input.PlayerID)
		if err != nil && !errors.Is(err, repositories.ErrParticipationNotFound) {
			return err
		}
		if existing != nil {
			return ErrAlreadyRegistered
		}

		participation = models.NewParticipation(input.PlayerID, matchID, input.Team, s.clock.Now().UTC(), input.Comment)
		if err := s.participationRepo.Create(ctx, exec, participation); err != nil {
			if errors.Is(err, repositories.ErrParticipationConflict) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(matchID, participation)
	return participation, nil
}

// Withdraw marks the player's participation as WITHDRAWN and stamps the
// withdrawal time. The row is kept; there is no physical removal.
func (s *ParticipationService) Withdraw(ctx context.Context, matchID int, input WithdrawInput) (*models.Participation, error) {
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidationFailed)
	}

	return s.mutate(ctx, matchID, input.PlayerID, func(p *models.Participation) {
		p.Withdraw(s.clock.Now().UTC(), input.Comment)
	})
}

// Reactivate puts a withdrawn player back as PRESENT, optionally on another
// team. Repeating the call with the same team re-applies the same state.
func (s *ParticipationService) Reactivate(ctx context.Context, matchID int, input ReactivateInput) (*models.Participation, error) {
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidationFailed)
	}
	if input.Team != nil && !input.Team.IsValid() {
		return nil, ErrInvalidTeam
	}

	return s.mutate(ctx, matchID, input.PlayerID, func(p *models.Participation) {
		p.Reactivate(input.Team, input.Comment)
	})
}

// ChangeTeam reassigns the side only; status and timestamps stay untouched.
func (s *ParticipationService) ChangeTeam(ctx context.Context, matchID int, input ChangeTeamInput) (*models.Participation, error) {
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidationFailed)
	}
	if !input.Team.IsValid() {
		return nil, ErrInvalidTeam
	}

	return s.mutate(ctx, matchID, input.PlayerID, func(p *models.Participation) {
		p.ChangeTeam(input.Team)
	})
}

// mutate is the shared write path for everything but registration: inside one
// transaction it revalidates the match, loads the existing participation,
// applies the change and persists it.
func (s *ParticipationService) mutate(ctx context.Context, matchID, playerID int, apply func(*models.Participation)) (*models.Participation, error) {
	var participation *models.Participation
	err := s.txr.RunInTx(ctx, func(exec db.Executor) error {
		if err := s.loadMutableMatch(ctx, exec, matchID); err != nil {
			return err
		}

		var err error
		participation, err = s.participationRepo.FindByMatchAndPlayer(ctx, exec, matchID, playerID)
		if err != nil {
			if errors.Is(err, repositories.ErrParticipationNotFound) {
				return ErrParticipationNotFound
			}
			return err
		}

		apply(participation)
		return s.participationRepo.Update(ctx, exec, participation)
	})
	if err != nil {
		return nil, err
	}
	s.notify(matchID, participation)
	return participation, nil
}

// loadMutableMatch loads the match through the transaction and rejects the
// operation when the match has already finished.
func (s *ParticipationService) loadMutableMatch(ctx context.Context, exec db.Executor, matchID int) error {
	match, err := s.matchRepo.GetByID(ctx, exec, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	return match.EnsureMutable()
}

func (s *ParticipationService) notify(matchID int, p *models.Participation) {
	if s.notifier != nil {
		s.notifier.ParticipationUpdated(matchID, p)
	}
}
