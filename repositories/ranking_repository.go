package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
)

type RankingRepository interface {
	AttendanceRanking(ctx context.Context, limit int) ([]models.AttendanceRanking, error)
	WithdrawalRanking(ctx context.Context, limit int) ([]models.WithdrawalRanking, error)
	WinnerRanking(ctx context.Context, limit, minMatches int) ([]models.WinnerRanking, error)
}

type postgresRankingRepository struct {
	db *sql.DB
}

func NewPostgresRankingRepository(db *sql.DB) RankingRepository {
	return &postgresRankingRepository{db: db}
}

// AttendanceRanking counts PRESENT participations in FINISHED matches.
func (r *postgresRankingRepository) AttendanceRanking(ctx context.Context, limit int) ([]models.AttendanceRanking, error) {
	query := `
		SELECT
			j.id, j.first_name, j.last_name,
			COUNT(*) AS attendances
		FROM participations p
		INNER JOIN matches m ON m.id = p.match_id
		INNER JOIN players j ON j.id = p.player_id
		WHERE p.status = 'PRESENT'
		  AND m.status = 'FINISHED'
		GROUP BY j.id, j.first_name, j.last_name
		ORDER BY attendances DESC, j.last_name ASC, j.first_name ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]models.AttendanceRanking, 0)
	for rows.Next() {
		var row models.AttendanceRanking
		if err := rows.Scan(&row.PlayerID, &row.FirstName, &row.LastName, &row.Attendances); err != nil {
			return nil, fmt.Errorf("failed to scan attendance ranking row: %w", err)
		}
		ranking = append(ranking, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance ranking rows: %w", err)
	}
	return ranking, nil
}

// WithdrawalRanking counts WITHDRAWN participations with no match-state
// filter: a withdrawal from a later-cancelled match still counts.
func (r *postgresRankingRepository) WithdrawalRanking(ctx context.Context, limit int) ([]models.WithdrawalRanking, error) {
	query := `
		SELECT
			j.id, j.first_name, j.last_name,
			COUNT(*) AS withdrawals
		FROM participations p
		INNER JOIN players j ON j.id = p.player_id
		WHERE p.status = 'WITHDRAWN'
		GROUP BY j.id, j.first_name, j.last_name
		ORDER BY withdrawals DESC, j.last_name ASC, j.first_name ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]models.WithdrawalRanking, 0)
	for rows.Next() {
		var row models.WithdrawalRanking
		if err := rows.Scan(&row.PlayerID, &row.FirstName, &row.LastName, &row.Withdrawals); err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal ranking row: %w", err)
		}
		ranking = append(ranking, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating withdrawal ranking rows: %w", err)
	}
	return ranking, nil
}

// WinnerRanking looks only at decided matches (TEAM_A or TEAM_B won; draws
// and pending outcomes are excluded from both counts).
func (r *postgresRankingRepository) WinnerRanking(ctx context.Context, limit, minMatches int) ([]models.WinnerRanking, error) {
	query := `
		SELECT
			j.id, j.first_name, j.last_name,
			COUNT(*) AS matches_played,
			COUNT(*) FILTER (WHERE p.team::text = m.winner::text) AS victories,
			ROUND(
				(COUNT(*) FILTER (WHERE p.team::text = m.winner::text)::numeric
					/ NULLIF(COUNT(*)::numeric, 0)) * 100,
				2
			) AS winrate
		FROM participations p
		INNER JOIN matches m ON m.id = p.match_id
		INNER JOIN players j ON j.id = p.player_id
		WHERE p.status = 'PRESENT'
		  AND m.status = 'FINISHED'
		  AND m.winner IN ('TEAM_A', 'TEAM_B')
		GROUP BY j.id, j.first_name, j.last_name
		HAVING COUNT(*) >= $2
		ORDER BY victories DESC, winrate DESC, j.last_name ASC, j.first_name ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit, minMatches)
	if err != nil {
		return nil, fmt.Errorf("failed to query winner ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]models.WinnerRanking, 0)
	for rows.Next() {
		var row models.WinnerRanking
		if err := rows.Scan(&row.PlayerID, &row.FirstName, &row.LastName, &row.MatchesPlayed, &row.Victories, &row.WinRate); err != nil {
			return nil, fmt.Errorf("failed to scan winner ranking row: %w", err)
		}
		ranking = append(ranking, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating winner ranking rows: %w", err)
	}
	return ranking, nil
}
