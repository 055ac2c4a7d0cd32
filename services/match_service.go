package services

import (
	"context"
	"errors"
	"time"

	"github.com/AldereteMatias1/Asistencia-Futbol/db"
	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
)

// LiveNotifier pushes committed changes to dashboard clients. Implemented by
// live.Hub; a nil notifier disables the push without touching the services.
type LiveNotifier interface {
	MatchUpdated(match *models.Match)
	ParticipationUpdated(matchID int, p *models.Participation)
}

// MatchService owns the match lifecycle: scheduled, in progress, finished or
// cancelled, with FINISHED immutable. Every transition runs in a transaction
// that re-loads the match before mutating it.
type MatchService struct {
	txr               db.TxRunner
	matchRepo         repositories.MatchRepository
	participationRepo repositories.ParticipationRepository
	notifier          LiveNotifier
}

func NewMatchService(
	txr db.TxRunner,
	matchRepo repositories.MatchRepository,
	participationRepo repositories.ParticipationRepository,
	notifier LiveNotifier,
) *MatchService {
	return &MatchService{
		txr:               txr,
		matchRepo:         matchRepo,
		participationRepo: participationRepo,
		notifier:          notifier,
	}
}

type CreateMatchInput struct {
	KickoffAt time.Time
	Venue     string
	TeamAName string
	TeamBName string
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	venue, err := requireText(input.Venue, "venue")
	if err != nil {
		return nil, err
	}
	teamA, err := requireText(input.TeamAName, "team_a_name")
	if err != nil {
		return nil, err
	}
	teamB, err := requireText(input.TeamBName, "team_b_name")
	if err != nil {
		return nil, err
	}

	match := models.NewMatch(input.KickoffAt, venue, teamA, teamB)
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) List(ctx context.Context) ([]*models.Match, error) {
	return s.matchRepo.List(ctx)
}

// GetDetail returns the match enriched with its participations and the
// players' display names.
func (s *MatchService) GetDetail(ctx context.Context, id int) (*models.Match, error) {
	var match *models.Match
	err := s.txr.RunInTx(ctx, func(exec db.Executor) error {
		var err error
		match, err = s.loadMatch(ctx, exec, id)
		if err != nil {
			return err
		}
		details, err := s.participationRepo.ListDetailByMatch(ctx, exec, id)
		if err != nil {
			return err
		}
		match.Participations = details
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) Update(ctx context.Context, id int, update models.MatchUpdate) (*models.Match, error) {
	if update.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if update.Venue != nil {
		venue, err := requireText(*update.Venue, "venue")
		if err != nil {
			return nil, err
		}
		update.Venue = &venue
	}
	if update.TeamAName != nil {
		teamA, err := requireText(*update.TeamAName, "team_a_name")
		if err != nil {
			return nil, err
		}
		update.TeamAName = &teamA
	}
	if update.TeamBName != nil {
		teamB, err := requireText(*update.TeamBName, "team_b_name")
		if err != nil {
			return nil, err
		}
		update.TeamBName = &teamB
	}

	return s.mutate(ctx, id, func(match *models.Match) error {
		return match.ApplyDetails(update)
	})
}

func (s *MatchService) Start(ctx context.Context, id int) (*models.Match, error) {
	return s.mutate(ctx, id, func(match *models.Match) error {
		return match.Start()
	})
}

func (s *MatchService) Finish(ctx context.Context, id int, winner models.Winner) (*models.Match, error) {
	if !winner.IsValid() {
		return nil, ErrInvalidWinner
	}
	return s.mutate(ctx, id, func(match *models.Match) error {
		return match.Finish(winner)
	})
}

func (s *MatchService) Cancel(ctx context.Context, id int) (*models.Match, error) {
	return s.mutate(ctx, id, func(match *models.Match) error {
		return match.Cancel()
	})
}

// mutate wraps a lifecycle transition: load the match inside a transaction,
// apply the transition, persist. The transition's own guard decides whether
// the current state allows it.
func (s *MatchService) mutate(ctx context.Context, id int, transition func(*models.Match) error) (*models.Match, error) {
	var match *models.Match
	err := s.txr.RunInTx(ctx, func(exec db.Executor) error {
		var err error
		match, err = s.loadMatch(ctx, exec, id)
		if err != nil {
			return err
		}
		if err := transition(match); err != nil {
			return err
		}
		return s.matchRepo.Update(ctx, exec, match)
	})
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.MatchUpdated(match)
	}
	return match, nil
}

func (s *MatchService) loadMatch(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, exec, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}
