package services

import (
	"context"
	"strconv"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRankingLimit = 100
	maxRankingLimit     = 500
	defaultMinMatches   = 1
	overviewLimit       = 10
)

// RankingService serves the read-only leaderboards. It owns no state beyond
// parameter parsing: the store computes the aggregates.
type RankingService struct {
	rankingRepo repositories.RankingRepository
}

func NewRankingService(rankingRepo repositories.RankingRepository) *RankingService {
	return &RankingService{rankingRepo: rankingRepo}
}

// Attendance ranks players by PRESENT participations in finished matches.
// limit is the raw query value; empty means the default.
func (s *RankingService) Attendance(ctx context.Context, limit string) ([]models.AttendanceRanking, error) {
	n, err := parseLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.rankingRepo.AttendanceRanking(ctx, n)
}

// Withdrawals ranks players by WITHDRAWN participations across all matches.
func (s *RankingService) Withdrawals(ctx context.Context, limit string) ([]models.WithdrawalRanking, error) {
	n, err := parseLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.rankingRepo.WithdrawalRanking(ctx, n)
}

// Winners ranks players by victories in decided finished matches, filtered to
// those with at least minMatches appearances.
func (s *RankingService) Winners(ctx context.Context, limit, minMatches string) ([]models.WinnerRanking, error) {
	n, err := parseLimit(limit)
	if err != nil {
		return nil, err
	}
	min, err := parseMinMatches(minMatches)
	if err != nil {
		return nil, err
	}
	return s.rankingRepo.WinnerRanking(ctx, n, min)
}

// Overview bundles the top of each leaderboard for the dashboard landing
// page. The three aggregations are independent, so they run concurrently.
func (s *RankingService) Overview(ctx context.Context) (*models.StatsOverview, error) {
	var overview models.StatsOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.rankingRepo.AttendanceRanking(gctx, overviewLimit)
		if err != nil {
			return err
		}
		overview.Attendance = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.rankingRepo.WithdrawalRanking(gctx, overviewLimit)
		if err != nil {
			return err
		}
		overview.Withdrawals = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.rankingRepo.WinnerRanking(gctx, overviewLimit, defaultMinMatches)
		if err != nil {
			return err
		}
		overview.Winners = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

func parseLimit(value string) (int, error) {
	if value == "" {
		return defaultRankingLimit, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidLimit
	}
	if n < 1 || n > maxRankingLimit {
		return 0, ErrInvalidLimit
	}
	return n, nil
}

func parseMinMatches(value string) (int, error) {
	if value == "" {
		return defaultMinMatches, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidMinMatches
	}
	if n < 1 {
		return 0, ErrInvalidMinMatches
	}
	return n, nil
}
