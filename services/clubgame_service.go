package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yoapunto/yoapunto-api/events"
	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

type ClubGameService interface {
	Add(ctx context.Context, clubID, gameID int) (*models.ClubGame, error)
	Remove(ctx context.Context, clubID, gameID int) error
	ListForClub(ctx context.Context, clubID int) ([]models.Game, error)
	GetForClub(ctx context.Context, clubID, gameID int) (*models.Game, error)
}

type clubGameService struct {
	clubGameRepo repositories.ClubGameRepository
	clubRepo     repositories.ClubRepository
	gameRepo     repositories.GameRepository
	hub          *events.Hub
}

func NewClubGameService(
	clubGameRepo repositories.ClubGameRepository,
	clubRepo repositories.ClubRepository,
	gameRepo repositories.GameRepository,
	hub *events.Hub,
) ClubGameService {
	return &clubGameService{
		clubGameRepo: clubGameRepo,
		clubRepo:     clubRepo,
		gameRepo:     gameRepo,
		hub:          hub,
	}
}

func (s *clubGameService) Add(ctx context.Context, clubID, gameID int) (*models.ClubGame, error) {
	if err := s.checkPair(ctx, clubID, gameID); err != nil {
		return nil, err
	}

	link, err := s.clubGameRepo.Add(ctx, clubID, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrClubGameConflict) {
			return nil, ErrAlreadyAssociated
		}
		return nil, fmt.Errorf("failed to associate game %d with club %d: %w", gameID, clubID, err)
	}

	s.hub.Publish(events.TypeClubGameAdded, link)
	return link, nil
}

func (s *clubGameService) Remove(ctx context.Context, clubID, gameID int) error {
	if err := s.checkPair(ctx, clubID, gameID); err != nil {
		return err
	}

	err := s.clubGameRepo.Remove(ctx, clubID, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrClubGameNotFound) {
			return ErrNotAssociated
		}
		return fmt.Errorf("failed to remove game %d from club %d: %w", gameID, clubID, err)
	}

	s.hub.Publish(events.TypeClubGameRemoved, models.ClubGame{ClubID: clubID, GameID: gameID})
	return nil
}

func (s *clubGameService) ListForClub(ctx context.Context, clubID int) ([]models.Game, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to check club %d: %w", clubID, err)
	}

	games, err := s.clubGameRepo.ListGamesByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for club %d: %w", clubID, err)
	}
	return games, nil
}

func (s *clubGameService) GetForClub(ctx context.Context, clubID, gameID int) (*models.Game, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to check club %d: %w", clubID, err)
	}

	game, err := s.clubGameRepo.GetGameForClub(ctx, clubID, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrClubGameNotFound) {
			return nil, ErrNotAssociated
		}
		return nil, fmt.Errorf("failed to get game %d for club %d: %w", gameID, clubID, err)
	}
	return game, nil
}

// checkPair verifies both sides of the association exist and are active.
func (s *clubGameService) checkPair(ctx context.Context, clubID, gameID int) error {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return ErrClubNotFound
		}
		return fmt.Errorf("failed to check club %d: %w", clubID, err)
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to check game %d: %w", gameID, err)
	}
	return nil
}
