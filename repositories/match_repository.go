package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	List(ctx context.Context) ([]*models.Match, error)
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	Update(ctx context.Context, exec SQLExecutor, match *models.Match) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (kickoff_at, venue, status, winner, team_a_name, team_b_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		match.KickoffAt,
		match.Venue,
		match.Status,
		match.Winner,
		match.TeamAName,
		match.TeamBName,
	).Scan(&match.ID)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]*models.Match, error) {
	query := `
		SELECT id, kickoff_at, venue, status, winner, team_a_name, team_b_name
		FROM matches
		ORDER BY kickoff_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.KickoffAt, &m.Venue, &m.Status, &m.Winner, &m.TeamAName, &m.TeamBName); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

// GetByID loads the match through the given executor so lifecycle transitions
// and participation writes can re-validate it inside their transaction.
func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `
		SELECT id, kickoff_at, venue, status, winner, team_a_name, team_b_name
		FROM matches
		WHERE id = $1`

	var m models.Match
	err := exec.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.KickoffAt, &m.Venue, &m.Status, &m.Winner, &m.TeamAName, &m.TeamBName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return &m, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		UPDATE matches
		SET kickoff_at = $1, venue = $2, status = $3, winner = $4, team_a_name = $5, team_b_name = $6
		WHERE id = $7`

	result, err := exec.ExecContext(ctx, query,
		match.KickoffAt,
		match.Venue,
		match.Status,
		match.Winner,
		match.TeamAName,
		match.TeamBName,
		match.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %d: %w", match.ID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
