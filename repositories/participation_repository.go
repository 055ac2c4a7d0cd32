package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/lib/pq"
)

var (
	ErrParticipationNotFound      = errors.New("participation not found")
	ErrParticipationConflict      = errors.New("participation conflict: player already registered for this match")
	ErrParticipationPlayerInvalid = errors.New("participation player conflict or invalid")
	ErrParticipationMatchInvalid  = errors.New("participation match conflict or invalid")
)

type ParticipationRepository interface {
	Create(ctx context.Context, exec SQLExecutor, p *models.Participation) error
	Update(ctx context.Context, exec SQLExecutor, p *models.Participation) error
	FindByMatchAndPlayer(ctx context.Context, exec SQLExecutor, matchID, playerID int) (*models.Participation, error)
	ListDetailByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]models.ParticipationDetail, error)
}

type postgresParticipationRepository struct {
	db *sql.DB
}

func NewPostgresParticipationRepository(db *sql.DB) ParticipationRepository {
	return &postgresParticipationRepository{db: db}
}

func (r *postgresParticipationRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Participation) error {
	query := `
		INSERT INTO participations (player_id, match_id, team, status, joined_at, withdrawn_at, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := exec.QueryRowContext(ctx, query,
		p.PlayerID,
		p.MatchID,
		p.Team,
		p.Status,
		p.JoinedAt,
		p.WithdrawnAt,
		p.Comment,
	).Scan(&p.ID)

	return r.handleParticipationError(err)
}

func (r *postgresParticipationRepository) Update(ctx context.Context, exec SQLExecutor, p *models.Participation) error {
	query := `
		UPDATE participations
		SET team = $1, status = $2, withdrawn_at = $3, comment = $4
		WHERE id = $5`

	result, err := exec.ExecContext(ctx, query, p.Team, p.Status, p.WithdrawnAt, p.Comment, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update participation %d: %w", p.ID, err)
	}
	return checkAffectedRows(result, ErrParticipationNotFound)
}

// FindByMatchAndPlayer is the check half of check-then-insert: registration
// calls it through the same transaction that performs the insert.
func (r *postgresParticipationRepository) FindByMatchAndPlayer(ctx context.Context, exec SQLExecutor, matchID, playerID int) (*models.Participation, error) {
	query := `
		SELECT id, player_id, match_id, team, status, joined_at, withdrawn_at, comment
		FROM participations
		WHERE match_id = $1 AND player_id = $2`

	var p models.Participation
	err := exec.QueryRowContext(ctx, query, matchID, playerID).Scan(
		&p.ID, &p.PlayerID, &p.MatchID, &p.Team, &p.Status, &p.JoinedAt, &p.WithdrawnAt, &p.Comment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipationNotFound
		}
		return nil, fmt.Errorf("failed to find participation for match %d, player %d: %w", matchID, playerID, err)
	}
	return &p, nil
}

// ListDetailByMatch joins each participation with the player's name for the
// match detail view.
func (r *postgresParticipationRepository) ListDetailByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]models.ParticipationDetail, error) {
	query := `
		SELECT
			p.id, p.player_id, p.match_id, p.team, p.status, p.joined_at, p.withdrawn_at, p.comment,
			j.first_name, j.last_name
		FROM participations p
		INNER JOIN players j ON j.id = p.player_id
		WHERE p.match_id = $1
		ORDER BY p.id ASC`

	rows, err := exec.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations for match %d: %w", matchID, err)
	}
	defer rows.Close()

	details := make([]models.ParticipationDetail, 0)
	for rows.Next() {
		var d models.ParticipationDetail
		if err := rows.Scan(
			&d.ID, &d.PlayerID, &d.MatchID, &d.Team, &d.Status, &d.JoinedAt, &d.WithdrawnAt, &d.Comment,
			&d.PlayerFirstName, &d.PlayerLastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participation detail row: %w", err)
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participation rows: %w", err)
	}
	return details, nil
}

// handleParticipationError maps Postgres constraint violations to sentinel
// errors. The unique index on (match_id, player_id) is the backstop behind
// the in-transaction existence check.
func (r *postgresParticipationRepository) handleParticipationError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "participations_match_id_player_id_key" {
				return ErrParticipationConflict
			}
		case "23503": // foreign_key_violation
			switch pqErr.Constraint {
			case "participations_player_id_fkey":
				return ErrParticipationPlayerInvalid
			case "participations_match_id_fkey":
				return ErrParticipationMatchInvalid
			}
		}
	}
	return fmt.Errorf("failed to create participation: %w", err)
}
