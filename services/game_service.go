package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yoapunto/yoapunto-api/events"
	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

type GameService interface {
	Create(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context, skip, limit int) ([]models.Game, error)
	Update(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error)
	Deactivate(ctx context.Context, id int) (*models.Game, error)
	SetThumbnail(ctx context.Context, id int, url string) (*models.Game, error)
}

type CreateGameInput struct {
	Name                       string  `json:"name"`
	Description                *string `json:"description"`
	GameComposition            string  `json:"game_composition"`
	MinNumberOfTeams           *int    `json:"min_number_of_teams"`
	MaxNumberOfTeams           *int    `json:"max_number_of_teams"`
	MinNumberOfPlayers         int     `json:"min_number_of_players"`
	MaxNumberOfPlayers         *int    `json:"max_number_of_players"`
	MinNumberOfPlayersPerTeams *int    `json:"min_number_of_players_per_teams"`
	MaxNumberOfPlayersPerTeams *int    `json:"max_number_of_players_per_teams"`
	Thumbnail                  *string `json:"thumbnail"`
}

// UpdateGameInput carries true partial-update semantics: nil fields are
// left untouched.
type UpdateGameInput struct {
	Name                       *string `json:"name"`
	Description                *string `json:"description"`
	GameComposition            *string `json:"game_composition"`
	MinNumberOfTeams           *int    `json:"min_number_of_teams"`
	MaxNumberOfTeams           *int    `json:"max_number_of_teams"`
	MinNumberOfPlayers         *int    `json:"min_number_of_players"`
	MaxNumberOfPlayers         *int    `json:"max_number_of_players"`
	MinNumberOfPlayersPerTeams *int    `json:"min_number_of_players_per_teams"`
	MaxNumberOfPlayersPerTeams *int    `json:"max_number_of_players_per_teams"`
	Thumbnail                  *string `json:"thumbnail"`
}

type gameService struct {
	gameRepo repositories.GameRepository
	hub      *events.Hub
}

func NewGameService(gameRepo repositories.GameRepository, hub *events.Hub) GameService {
	return &gameService{
		gameRepo: gameRepo,
		hub:      hub,
	}
}

func (s *gameService) Create(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	name := strings.TrimSpace(input.Name)
	composition := strings.TrimSpace(input.GameComposition)

	fields := fieldErrors{}
	fields.check(lengthBetween(name, 1, 100), "name", "must be 1-100 characters")
	fields.check(lengthBetween(composition, 1, 50), "game_composition", "must be 1-50 characters")
	fields.check(input.Description == nil || len(*input.Description) <= 500,
		"description", "must be at most 500 characters")
	fields.check(input.MinNumberOfPlayers >= 1, "min_number_of_players", "must be at least 1")
	fields.check(positiveOrNil(input.MaxNumberOfPlayers), "max_number_of_players", "must be at least 1")
	fields.check(positiveOrNil(input.MinNumberOfTeams), "min_number_of_teams", "must be at least 1")
	fields.check(positiveOrNil(input.MaxNumberOfTeams), "max_number_of_teams", "must be at least 1")
	fields.check(positiveOrNil(input.MinNumberOfPlayersPerTeams), "min_number_of_players_per_teams", "must be at least 1")
	fields.check(positiveOrNil(input.MaxNumberOfPlayersPerTeams), "max_number_of_players_per_teams", "must be at least 1")
	if err := fields.toError(); err != nil {
		return nil, err
	}

	game := &models.Game{
		Name:                       name,
		Description:                input.Description,
		GameComposition:            composition,
		MinNumberOfTeams:           input.MinNumberOfTeams,
		MaxNumberOfTeams:           input.MaxNumberOfTeams,
		MinNumberOfPlayers:         input.MinNumberOfPlayers,
		MaxNumberOfPlayers:         input.MaxNumberOfPlayers,
		MinNumberOfPlayersPerTeams: input.MinNumberOfPlayersPerTeams,
		MaxNumberOfPlayersPerTeams: input.MaxNumberOfPlayersPerTeams,
		Thumbnail:                  input.Thumbnail,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.hub.Publish(events.TypeGameCreated, game)
	return game, nil
}

func (s *gameService) GetByID(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %d: %w", id, err)
	}
	return game, nil
}

func (s *gameService) List(ctx context.Context, skip, limit int) ([]models.Game, error) {
	games, err := s.gameRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *gameService) Update(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game %d for update: %w", id, err)
	}

	fields := fieldErrors{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		fields.check(lengthBetween(name, 1, 100), "name", "must be 1-100 characters")
		game.Name = name
	}
	if input.Description != nil {
		fields.check(len(*input.Description) <= 500, "description", "must be at most 500 characters")
		game.Description = input.Description
	}
	if input.GameComposition != nil {
		composition := strings.TrimSpace(*input.GameComposition)
		fields.check(lengthBetween(composition, 1, 50), "game_composition", "must be 1-50 characters")
		game.GameComposition = composition
	}
	if input.MinNumberOfTeams != nil {
		fields.check(*input.MinNumberOfTeams >= 1, "min_number_of_teams", "must be at least 1")
		game.MinNumberOfTeams = input.MinNumberOfTeams
	}
	if input.MaxNumberOfTeams != nil {
		fields.check(*input.MaxNumberOfTeams >= 1, "max_number_of_teams", "must be at least 1")
		game.MaxNumberOfTeams = input.MaxNumberOfTeams
	}
	if input.MinNumberOfPlayers != nil {
		fields.check(*input.MinNumberOfPlayers >= 1, "min_number_of_players", "must be at least 1")
		game.MinNumberOfPlayers = *input.MinNumberOfPlayers
	}
	if input.MaxNumberOfPlayers != nil {
		fields.check(*input.MaxNumberOfPlayers >= 1, "max_number_of_players", "must be at least 1")
		game.MaxNumberOfPlayers = input.MaxNumberOfPlayers
	}
	if input.MinNumberOfPlayersPerTeams != nil {
		fields.check(*input.MinNumberOfPlayersPerTeams >= 1, "min_number_of_players_per_teams", "must be at least 1")
		game.MinNumberOfPlayersPerTeams = input.MinNumberOfPlayersPerTeams
	}
	if input.MaxNumberOfPlayersPerTeams != nil {
		fields.check(*input.MaxNumberOfPlayersPerTeams >= 1, "max_number_of_players_per_teams", "must be at least 1")
		game.MaxNumberOfPlayersPerTeams = input.MaxNumberOfPlayersPerTeams
	}
	if input.Thumbnail != nil {
		game.Thumbnail = input.Thumbnail
	}
	if err := fields.toError(); err != nil {
		return nil, err
	}

	now := time.Now()
	game.UpdatedAt = &now

	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game %d: %w", id, err)
	}

	s.hub.Publish(events.TypeGameUpdated, game)
	return game, nil
}

func (s *gameService) Deactivate(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.Deactivate(ctx, id, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			// Already inactive or missing; both read as not found.
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to deactivate game %d: %w", id, err)
	}

	s.hub.Publish(events.TypeGameDeactivated, game)
	return game, nil
}

func (s *gameService) SetThumbnail(ctx context.Context, id int, url string) (*models.Game, error) {
	return s.Update(ctx, id, UpdateGameInput{Thumbnail: &url})
}
