package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yoapunto/yoapunto-api/repositories"
)

type Stats struct {
	ActiveClubs    int `json:"active_clubs"`
	ActiveGames    int `json:"active_games"`
	ActiveAccounts int `json:"active_accounts"`
}

type StatsService interface {
	Collect(ctx context.Context) (*Stats, error)
}

type statsService struct {
	clubRepo    repositories.ClubRepository
	gameRepo    repositories.GameRepository
	accountRepo repositories.AccountRepository
}

func NewStatsService(
	clubRepo repositories.ClubRepository,
	gameRepo repositories.GameRepository,
	accountRepo repositories.AccountRepository,
) StatsService {
	return &statsService{
		clubRepo:    clubRepo,
		gameRepo:    gameRepo,
		accountRepo: accountRepo,
	}
}

// Collect runs the three counts in parallel; the first failure cancels the
// rest.
func (s *statsService) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.clubRepo.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count clubs: %w", err)
		}
		stats.ActiveClubs = count
		return nil
	})
	g.Go(func() error {
		count, err := s.gameRepo.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count games: %w", err)
		}
		stats.ActiveGames = count
		return nil
	})
	g.Go(func() error {
		count, err := s.accountRepo.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count accounts: %w", err)
		}
		stats.ActiveAccounts = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
